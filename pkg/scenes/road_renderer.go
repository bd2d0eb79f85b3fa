package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	dashLength = 40.0
	dashPeriod = 80.0

	stopLineHeight  = 10.0
	bumpHeight      = 30.0
	bumpStripeWidth = 40.0
	zebraStripe     = 30.0
	zebraGap        = 20.0
	signOffsetX     = 40.0

	lightBoxW = 120.0
	lightBoxH = 40.0
	// lightBoxRise 信号灯箱在停止线上方的距离
	lightBoxRise = 150.0

	// 停车倒计时牌的显示范围（相对车头）
	countdownAhead  = 500.0
	countdownBehind = -200.0
)

// RoadRenderer 根据快照绘制道路、交通物体和玩家车辆
// 只读取快照，不持有任何模拟状态
type RoadRenderer struct {
	road        config.RoadConfig
	rules       config.RulesConfig
	distScale   float64
	ticksPerSec int
}

// NewRoadRenderer 创建道路渲染器
func NewRoadRenderer(cfg *config.GameConfig) *RoadRenderer {
	return &RoadRenderer{
		road:        cfg.Road,
		rules:       cfg.Rules,
		distScale:   cfg.Physics.DistanceScale,
		ticksPerSec: cfg.Session.TicksPerSecond,
	}
}

// Draw 按图层顺序绘制：草地与树 → 路面 → 地面标线类物体 → 车辆 → 玩家 → 信号灯
//
// 参数：
//   - snap: 当前帧快照
//   - braking: 是否点亮刹车灯
func (r *RoadRenderer) Draw(screen *ebiten.Image, snap game.Snapshot, braking bool) {
	fillRect(screen, 0, 0, r.road.CanvasWidth, r.road.CanvasHeight, colorGrass)

	for _, obj := range snap.Objects {
		if tree, ok := obj.(*components.Tree); ok {
			r.drawTree(screen, tree)
		}
	}

	r.drawRoad(screen, snap.Metrics.Distance)

	for _, obj := range snap.Objects {
		switch o := obj.(type) {
		case *components.StopSign:
			r.drawStopSign(screen, o, snap.Player)
		case *components.ZebraCrossing:
			r.drawZebra(screen, o)
		case *components.SpeedBump:
			r.drawBump(screen, o)
		case *components.SpeedLimitSign:
			r.drawSpeedLimit(screen, o)
		}
	}

	for _, obj := range snap.Objects {
		if car, ok := obj.(*components.ObstacleCar); ok {
			x := r.road.LaneX(int(car.Lane))
			r.drawCar(screen, x, car.Y, car.Color, false)
		}
	}

	r.drawPlayer(screen, snap.Player, braking)

	for _, obj := range snap.Objects {
		if light, ok := obj.(*components.TrafficLight); ok {
			r.drawTrafficLight(screen, light)
		}
	}
}

// DashOffset 车道虚线的滚动偏移，由行驶距离换算，取值 [0, dashPeriod)
func DashOffset(distance, distanceScale float64) float64 {
	if distanceScale <= 0 {
		return 0
	}
	return math.Mod(distance/distanceScale, dashPeriod)
}

func (r *RoadRenderer) drawRoad(screen *ebiten.Image, distance float64) {
	roadX := r.road.RoadX()
	roadW := r.road.RoadWidth()
	h := r.road.CanvasHeight

	fillRect(screen, roadX, 0, roadW, h, colorRoad)

	offset := DashOffset(distance, r.distScale)
	for lane := 1; lane < components.LaneCount; lane++ {
		x := roadX + float64(lane)*r.road.LaneWidth
		for y := -dashPeriod + offset; y < h; y += dashPeriod {
			strokeLine(screen, x, y, x, y+dashLength, 4, colorMarking)
		}
	}

	strokeLine(screen, roadX, 0, roadX, h, 6, colorWhite)
	strokeLine(screen, roadX+roadW, 0, roadX+roadW, h, 6, colorWhite)
}

func (r *RoadRenderer) drawTree(screen *ebiten.Image, t *components.Tree) {
	size := r.road.TreeWidth
	x, y := t.X, t.Y

	fillRect(screen, x+size/2-5, y+size-15, 10, 15, colorTrunk)
	fillTriangle(screen, x, y+size-10, x+size, y+size-10, x+size/2, y+20, colorLeafDark)
	fillTriangle(screen, x+5, y+40, x+size-5, y+40, x+size/2, y, colorLeafLight)
}

func (r *RoadRenderer) drawStopSign(screen *ebiten.Image, s *components.StopSign, player components.PlayerComponent) {
	roadX := r.road.RoadX()
	roadW := r.road.RoadWidth()
	lineY := s.Y + r.rules.StopSign.LineOffset

	fillRect(screen, roadX, lineY, roadW, stopLineHeight, colorWhite)

	signX := roadX + roadW + signOffsetX
	fillCircle(screen, signX, lineY, 30, colorRed)
	drawText(screen, "STOP", signX, lineY, 1, colorWhite, text.AlignCenter)

	if s.HasStopped || s.Y <= 0 || s.Y >= r.road.CanvasHeight {
		return
	}
	dist := s.Y - player.Y
	if dist >= countdownAhead || dist <= countdownBehind {
		return
	}

	cx, cy := roadX+roadW/2, lineY-40
	stopped := player.Speed < r.rules.StopSign.SpeedThreshold
	ring := colorRed
	if stopped {
		ring = colorGreen
	}
	fillCircle(screen, cx, cy, 40, colorOverlay)
	strokeCircle(screen, cx, cy, 40, 4, ring)

	if !stopped {
		drawText(screen, "STOP", cx, cy-10, 1.5, colorRed, text.AlignCenter)
		drawText(screen, "HERE", cx, cy+12, 1.5, colorRed, text.AlignCenter)
		return
	}
	seconds := s.SecondsLeft(r.ticksPerSec)
	drawText(screen, fmt.Sprintf("%d", seconds), cx, cy, 3, colorWhite, text.AlignCenter)
}

func (r *RoadRenderer) drawZebra(screen *ebiten.Image, z *components.ZebraCrossing) {
	roadX := r.road.RoadX()
	roadW := r.road.RoadWidth()
	h := r.rules.Zebra.Height

	for x := roadX + 10; x < roadX+roadW; x += zebraStripe + zebraGap {
		w := math.Min(zebraStripe, roadX+roadW-x)
		fillRect(screen, x, z.Y, w, h, colorWhite)
	}

	for _, p := range z.Pedestrians {
		drawPedestrian(screen, p.X, z.Y+15, math.Sin(p.WalkingPhase))
	}
}

// drawPedestrian 火柴人，phase 控制四肢摆动
func drawPedestrian(screen *ebiten.Image, x, y, phase float64) {
	fillCircle(screen, x, y, 8, colorWhite)
	strokeCircle(screen, x, y, 8, 3, colorBlack)

	strokeLine(screen, x, y+12, x, y+30, 3, colorBlack)

	strokeLine(screen, x, y+30, x-5*phase, y+45, 3, colorBlack)
	strokeLine(screen, x, y+30, x+5*phase, y+45, 3, colorBlack)

	strokeLine(screen, x, y+18, x+5*phase, y+26, 3, colorBlack)
	strokeLine(screen, x, y+18, x-5*phase, y+26, 3, colorBlack)
}

func (r *RoadRenderer) drawBump(screen *ebiten.Image, b *components.SpeedBump) {
	roadX := r.road.RoadX()
	roadW := r.road.RoadWidth()

	fillRect(screen, roadX, b.Y, roadW, bumpHeight, colorAmber)
	for i := 0; float64(i)*bumpStripeWidth < roadW; i += 2 {
		x := roadX + float64(i)*bumpStripeWidth
		fillRect(screen, x, b.Y, math.Min(bumpStripeWidth, roadX+roadW-x), bumpHeight, colorHousing)
	}
	strokeLine(screen, roadX, b.Y, roadX+roadW, b.Y, 2, colorMarking)
}

func (r *RoadRenderer) drawSpeedLimit(screen *ebiten.Image, s *components.SpeedLimitSign) {
	x := r.road.RoadX() + r.road.RoadWidth() + signOffsetX
	y := s.Y + r.rules.SpeedLimit.LineOffset

	fillRect(screen, x-5, y, 10, 60, colorSlate)
	fillCircle(screen, x, y, 30, colorWhite)
	strokeCircle(screen, x, y, 30, 5, colorRed)
	drawText(screen, fmt.Sprintf("%.0f", s.Limit*10), x, y, 1.5, colorBlack, text.AlignCenter)
}

func (r *RoadRenderer) drawCar(screen *ebiten.Image, x, y float64, body color.Color, headlightsUp bool) {
	w, h := r.road.PlayerWidth, r.road.PlayerHeight

	for _, ty := range []float64{y + 10, y + h - 25} {
		fillRect(screen, x-4, ty, 8, 15, colorTire)
		fillRect(screen, x+w-4, ty, 8, 15, colorTire)
	}

	fillRect(screen, x, y, w, h, body)
	fillRect(screen, x+4, y+20, w-8, h-30, colorShade)

	lightY := y + h - 5
	if headlightsUp {
		lightY = y
	}
	fillRect(screen, x+2, lightY, 10, 5, colorHeadlight)
	fillRect(screen, x+w-12, lightY, 10, 5, colorHeadlight)
}

func (r *RoadRenderer) drawPlayer(screen *ebiten.Image, p components.PlayerComponent, braking bool) {
	w, h := r.road.PlayerWidth, r.road.PlayerHeight
	x, y := p.X, p.Y

	r.drawCar(screen, x, y, colorDarkRed, true)
	fillRect(screen, x+4, y+20, w-8, h-30, colorCabin)
	fillRect(screen, x+6, y+25, w-12, 15, colorWindshield)
	fillRect(screen, x+6, y+55, w-12, 10, colorWindshield)

	if braking {
		fillRect(screen, x+2, y+h-5, 10, 5, colorRed)
		fillRect(screen, x+w-12, y+h-5, 10, 5, colorRed)
	}
}

func (r *RoadRenderer) drawTrafficLight(screen *ebiten.Image, l *components.TrafficLight) {
	cw := r.road.CanvasWidth
	roadX := r.road.RoadX()
	lineY := l.Y + r.rules.TrafficLight.LineOffset

	fillRect(screen, roadX, lineY, r.road.RoadWidth(), stopLineHeight, colorWhite)

	boxX := (cw - lightBoxW) / 2
	boxY := lineY - lightBoxRise
	poleX := cw - 50
	strokeLine(screen, cw, lineY, poleX, lineY, 8, colorSlate)
	strokeLine(screen, poleX, lineY, poleX, boxY+20, 8, colorSlate)
	strokeLine(screen, poleX, boxY+20, boxX+lightBoxW, boxY+20, 8, colorSlate)

	fillRect(screen, boxX, boxY, lightBoxW, lightBoxH, colorHousing)

	lamps := []struct {
		state components.LightState
		on    color.Color
		dx    float64
	}{
		{components.LightRed, colorRed, 30},
		{components.LightYellow, colorYellow, 60},
		{components.LightGreen, colorGreen, 90},
	}
	for _, lamp := range lamps {
		var c color.Color = colorLightOff
		if l.State == lamp.state {
			c = lamp.on
		}
		fillCircle(screen, boxX+lamp.dx, boxY+lightBoxH/2, 12, c)
	}
}
