package scenes

import (
	"image/color"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 调色板
var (
	colorGrass      = color.RGBA{0x4a, 0xde, 0x80, 0xff}
	colorRoad       = color.RGBA{0x37, 0x41, 0x51, 0xff}
	colorMarking    = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
	colorWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorBlack      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorTire       = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorPanel      = color.RGBA{0x0f, 0x17, 0x2a, 0xcc}
	colorPanelEdge  = color.RGBA{0x33, 0x41, 0x55, 0xff}
	colorMuted      = color.RGBA{0x94, 0xa3, 0xb8, 0xff}
	colorScore      = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	colorRed        = color.RGBA{0xef, 0x44, 0x44, 0xff}
	colorDarkRed    = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	colorYellow     = color.RGBA{0xea, 0xb3, 0x08, 0xff}
	colorGreen      = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	colorBlue       = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorAmber      = color.RGBA{0xf5, 0x9e, 0x0b, 0xff}
	colorSlate      = color.RGBA{0x64, 0x74, 0x8b, 0xff}
	colorLightOff   = color.RGBA{0x33, 0x41, 0x55, 0xff}
	colorHousing    = color.RGBA{0x1e, 0x29, 0x3b, 0xff}
	colorHeadlight  = color.RGBA{0xfe, 0xf0, 0x8a, 0xff}
	colorWindshield = color.RGBA{0x93, 0xc5, 0xfd, 0xff}
	colorCabin      = color.RGBA{0x7f, 0x1d, 0x1d, 0xff}
	colorTrunk      = color.RGBA{0x5d, 0x40, 0x37, 0xff}
	colorLeafDark   = color.RGBA{0x15, 0x80, 0x3d, 0xff}
	colorLeafLight  = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
	colorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xb3}
	colorShade      = color.RGBA{0x00, 0x00, 0x00, 0x33}
	colorDefeat     = color.RGBA{0x7f, 0x1d, 0x1d, 0xcc}
)

// uiFace 界面字体，无需外部字体资源
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// messageColor 提示消息背景色
func messageColor(t components.MessageType) color.RGBA {
	switch t {
	case components.MessageGood:
		return colorGreen
	case components.MessageBad:
		return colorRed
	default:
		return colorBlue
	}
}

// speedColor 速度表颜色，超过阈值变红
func speedColor(speed, threshold float64) color.RGBA {
	if speed > threshold {
		return colorRed
	}
	return colorBlue
}

// drawText 绘制文本
//
// 参数：
//   - x, y: 锚点坐标（align 决定锚点是左端、中心还是右端）
//   - scale: 相对基础字号（13px）的缩放
func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, uiFace, op)
}

// textWidth 缩放后的文本宽度
func textWidth(s string, scale float64) float64 {
	w, _ := text.Measure(s, uiFace, 0)
	return w * scale
}

// fade 按不透明度缩放颜色（预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func strokeRect(screen *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(width), clr, true)
}

func fillCircle(screen *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircle(screen *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func strokeLine(screen *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// fillTriangle 填充三角形（树冠）
func fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.Close()

	op := &vector.DrawPathOptions{}
	op.AntiAlias = true
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, nil, op)
}

// drawPanel 半透明圆角面板的简化版：填充 + 描边
func drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	fillRect(screen, x, y, w, h, colorPanel)
	strokeRect(screen, x, y, w, h, 2, colorPanelEdge)
}

// drawButton 带文字的按钮
func drawButton(screen *ebiten.Image, label string, x, y, w, h float64, bg color.Color) {
	fillRect(screen, x, y, w, h, bg)
	drawText(screen, label, x+w/2, y+h/2, 2, colorWhite, text.AlignCenter)
}
