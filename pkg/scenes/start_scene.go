package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	startPanelW  = 440.0
	startPanelH  = 380.0
	startButtonH = 56.0
)

// StartScene 开始界面：规则说明 + 开始按钮
type StartScene struct {
	session *game.Session
	road    *RoadRenderer
}

// NewStartScene 创建开始场景
func NewStartScene(session *game.Session, road *RoadRenderer) *StartScene {
	return &StartScene{session: session, road: road}
}

// Update 回车/空格/点击按钮开始，L 登出
func (s *StartScene) Update(deltaTime float64) {
	switch {
	case utils.IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace):
		s.start()
	case utils.IsAnyKeyJustPressed(ebiten.KeyL):
		s.session.Logout()
	}

	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked && inStartButton(float64(x), float64(y)) {
		s.start()
	}
}

func (s *StartScene) start() {
	if err := s.session.Start(); err != nil {
		log.Printf("[StartScene] %v", err)
	}
}

func startPanelRect() (x, y, w, h float64) {
	x = (float64(config.GameWindowWidth) - startPanelW) / 2
	y = (float64(config.GameWindowHeight) - startPanelH) / 2
	return x, y, startPanelW, startPanelH
}

func startButtonRect() (x, y, w, h float64) {
	px, py, pw, ph := startPanelRect()
	return px + 30, py + ph - startButtonH - 30, pw - 60, startButtonH
}

func inStartButton(x, y float64) bool {
	bx, by, bw, bh := startButtonRect()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

// bestScoreFor 驾驶员的历史最高分，没有记录时返回 0
func bestScoreFor(users []game.UserRecord, name string) int {
	for _, u := range users {
		if u.Name == name {
			return u.HighScore
		}
	}
	return 0
}

// Draw 绘制开始界面
func (s *StartScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	s.road.Draw(screen, snap, false)
	fillRect(screen, 0, 0, float64(config.GameWindowWidth), float64(config.GameWindowHeight), colorOverlay)

	px, py, pw, _ := startPanelRect()
	cx := px + pw/2
	fillRect(screen, px, py, pw, startPanelH, colorWhite)

	drawText(screen, "TRAFFIC RUNNER", cx, py+44, 3, colorHousing, text.AlignCenter)
	best := bestScoreFor(s.session.Scoreboard().Users(), snap.PlayerName)
	drawText(screen, fmt.Sprintf("Driver: %s   Best: %d", snap.PlayerName, best), cx, py+82, 1.2, colorSlate, text.AlignCenter)

	rules := []struct {
		tag  string
		bg   color.RGBA
		desc string
	}{
		{"STOP", colorRed, "at Red Lights & Stop Signs"},
		{"GO", colorGreen, "on Green Lights"},
		{"YIELD", colorAmber, "to Pedestrians on Crossings"},
		{"KEYS", colorBlue, "UP Accel  DOWN Brake  LEFT/RIGHT Lane"},
	}
	if utils.IsMobile() {
		rules[len(rules)-1].desc = "Tap sides: Lane  Top: Accel  Bottom: Brake"
	}
	for i, r := range rules {
		y := py + 120 + float64(i)*34
		fillRect(screen, px+30, y-10, 56, 20, r.bg)
		drawText(screen, r.tag, px+58, y, 1, colorWhite, text.AlignCenter)
		drawText(screen, r.desc, px+98, y, 1, colorHousing, text.AlignStart)
	}

	bx, by, bw, bh := startButtonRect()
	drawButton(screen, "START DRIVING", bx, by, bw, bh, colorBlue)
	drawText(screen, "L: switch driver", cx, by+bh+16, 1, colorSlate, text.AlignCenter)
}
