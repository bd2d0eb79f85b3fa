package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	overPanelW = 440.0
	overPanelH = 520.0
)

// GameOverScene 结算画面：结束原因、最终分数和违规报告
type GameOverScene struct {
	session *game.Session
	road    *RoadRenderer
}

// NewGameOverScene 创建结算场景
func NewGameOverScene(session *game.Session, road *RoadRenderer) *GameOverScene {
	return &GameOverScene{session: session, road: road}
}

// Update 回车/点击重新开始，Esc 返回开始界面，L 登出
func (s *GameOverScene) Update(deltaTime float64) {
	switch {
	case utils.IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace):
		s.restart()
	case utils.IsAnyKeyJustPressed(ebiten.KeyEscape):
		if err := s.session.ReturnToStart(); err != nil {
			log.Printf("[GameOverScene] %v", err)
		}
	case utils.IsAnyKeyJustPressed(ebiten.KeyL):
		s.session.Logout()
	}

	if clicked, _, _ := utils.IsJustTouchedOrClicked(); clicked {
		s.restart()
	}
}

func (s *GameOverScene) restart() {
	if err := s.session.Start(); err != nil {
		log.Printf("[GameOverScene] %v", err)
	}
}

// headlineColor 胜利为绿色，其余为红色
func headlineColor(r *game.GameOverReport) color.RGBA {
	if r != nil && r.Reason == game.ReasonWin {
		return colorGreen
	}
	return colorRed
}

// Draw 绘制冻结的最后一帧和结算面板
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	s.road.Draw(screen, snap, false)

	w := float64(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)
	report := snap.Report

	overlay := colorDefeat
	if report != nil && report.Reason == game.ReasonWin {
		overlay = colorOverlay
	}
	fillRect(screen, 0, 0, w, h, overlay)

	px := (w - overPanelW) / 2
	py := (h - overPanelH) / 2
	cx := w / 2
	fillRect(screen, px, py, overPanelW, overPanelH, colorWhite)
	strokeRect(screen, px, py, overPanelW, overPanelH, 4, headlineColor(report))

	if report == nil {
		drawText(screen, "GAME OVER", cx, py+50, 3, colorRed, text.AlignCenter)
		return
	}

	drawText(screen, report.Headline, cx, py+50, 3, headlineColor(report), text.AlignCenter)
	drawText(screen, fmt.Sprintf("%d", int(math.Floor(report.Score))), cx, py+110, 5, colorHousing, text.AlignCenter)
	drawText(screen, "FINAL SCORE", cx, py+150, 1.2, colorSlate, text.AlignCenter)
	drawText(screen, fmt.Sprintf("Distance %dm", int(math.Floor(report.Distance))), cx, py+176, 1.2, colorSlate, text.AlignCenter)

	for i, line := range report.Lines() {
		y := py + 220 + float64(i)*30
		clr := colorHousing
		if line.Count > 0 {
			clr = colorRed
		}
		drawText(screen, line.Label, px+60, y, 1.5, clr, text.AlignStart)
		drawText(screen, fmt.Sprintf("%d", line.Count), px+overPanelW-60, y, 1.5, clr, text.AlignEnd)
	}

	drawButton(screen, "DRIVE AGAIN", px+30, py+overPanelH-90, overPanelW-60, 52, colorHousing)
	drawText(screen, "ESC: menu   L: switch driver", cx, py+overPanelH-22, 1, colorSlate, text.AlignCenter)
}
