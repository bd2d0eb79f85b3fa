package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	hudPanelW = 150.0
	hudPanelH = 64.0

	gaugeRadius = 60.0
	// gaugeWarnKmh 速度表变红的阈值（km/h）
	gaugeWarnKmh = 120.0

	// messageFadeFrames 提示消息在最后多少帧内淡出
	messageFadeFrames = 20
)

// drawHUD 分数、距离、限速、速度表和提示消息
func drawHUD(screen *ebiten.Image, snap game.Snapshot, maxSpeedKmh float64) {
	m := config.HUDMargin
	w := float64(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)

	drawPanel(screen, m, m, hudPanelW, hudPanelH)
	drawText(screen, "SCORE", m+12, m+14, 1, colorMuted, text.AlignStart)
	drawText(screen, fmt.Sprintf("%d", int(math.Floor(snap.Metrics.Score))), m+12, m+40, 2.5, colorScore, text.AlignStart)

	right := w - m - hudPanelW
	drawPanel(screen, right, m, hudPanelW, hudPanelH)
	drawText(screen, "DISTANCE", right+12, m+14, 1, colorMuted, text.AlignStart)
	drawText(screen, fmt.Sprintf("%dm", int(math.Floor(snap.Metrics.Distance))), right+12, m+40, 2.5, colorWhite, text.AlignStart)

	drawText(screen, fmt.Sprintf("LIMIT %.0f", snap.ZoneLimitDisplay), right+hudPanelW, m+hudPanelH+14, 1, colorWhite, text.AlignEnd)

	drawSpeedometer(screen, w-m-gaugeRadius, h-m-gaugeRadius, snap.SpeedDisplay, maxSpeedKmh)

	if msg := snap.Metrics.Message; msg.Text != "" {
		alpha := utils.FadeOut(msg.Timer, messageFadeFrames)
		drawMessage(screen, msg.Text, messageColor(msg.Type), alpha)
	}
}

// drawSpeedometer 圆形速度表，外圈弧长与速度成正比
func drawSpeedometer(screen *ebiten.Image, cx, cy, kmh, maxKmh float64) {
	fillCircle(screen, cx, cy, gaugeRadius, colorPanel)
	strokeCircle(screen, cx, cy, gaugeRadius, 4, colorPanelEdge)

	if maxKmh > 0 && kmh > 0 {
		frac := math.Min(kmh/maxKmh, 1)
		clr := speedColor(kmh, gaugeWarnKmh)
		// 从正上方顺时针画弧
		const segments = 48
		n := int(math.Ceil(frac * segments))
		for i := 0; i < n; i++ {
			a0 := -math.Pi/2 + 2*math.Pi*frac*float64(i)/float64(n)
			a1 := -math.Pi/2 + 2*math.Pi*frac*float64(i+1)/float64(n)
			r := gaugeRadius - 6
			strokeLine(screen, cx+r*math.Cos(a0), cy+r*math.Sin(a0), cx+r*math.Cos(a1), cy+r*math.Sin(a1), 6, clr)
		}
	}

	drawText(screen, fmt.Sprintf("%d", int(math.Floor(kmh))), cx, cy-6, 3, colorWhite, text.AlignCenter)
	drawText(screen, "KM/H", cx, cy+22, 1, colorMuted, text.AlignCenter)
}

// drawMessage 屏幕上方的居中提示
func drawMessage(screen *ebiten.Image, msg string, bg color.RGBA, alpha float64) {
	const scale = 2.0
	w := textWidth(msg, scale) + 40
	h := 44.0
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.MessageY)

	fillRect(screen, cx-w/2, cy-h/2, w, h, fade(bg, alpha))
	strokeRect(screen, cx-w/2, cy-h/2, w, h, 2, fade(colorWhite, alpha))
	drawText(screen, msg, cx, cy, scale, fade(colorWhite, alpha), text.AlignCenter)
}
