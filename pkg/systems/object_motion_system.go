package systems

import (
	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
)

// ObjectMotionSystem 推进交通物体的位置和内部计时器
// 包括道路滚动、红绿灯循环和斑马线行人移动
type ObjectMotionSystem struct {
	light  config.TrafficLightRules
	zebra  config.ZebraRules
	height float64
}

// NewObjectMotionSystem 创建物体运动系统
func NewObjectMotionSystem(cfg *config.GameConfig) *ObjectMotionSystem {
	return &ObjectMotionSystem{
		light:  cfg.Rules.TrafficLight,
		zebra:  cfg.Rules.Zebra,
		height: cfg.Road.CanvasHeight,
	}
}

// Advance 推进单个物体一帧
func (ms *ObjectMotionSystem) Advance(obj components.TrafficObject, playerSpeed float64) {
	base := obj.Base()

	switch o := obj.(type) {
	case *components.ObstacleCar:
		// 接近速度为两车速度之差，玩家较慢时障碍车会远离
		base.Y += playerSpeed - o.Speed
	case *components.TrafficLight:
		base.Y += playerSpeed
		ms.cycleLight(o)
	case *components.ZebraCrossing:
		base.Y += playerSpeed
		ms.walkPedestrians(o)
	default:
		base.Y += playerSpeed
	}
}

// cycleLight 红绿灯状态机
func (ms *ObjectMotionSystem) cycleLight(l *components.TrafficLight) {
	if l.Timer <= 0 {
		return
	}
	l.Timer--
	if l.Timer > 0 {
		return
	}

	switch l.State {
	case components.LightRed:
		l.State = components.LightYellow
		l.NextState = components.LightGreen
		l.Timer = ms.light.YellowToGreenTicks
	case components.LightYellow:
		if l.NextState == components.LightGreen {
			l.State = components.LightGreen
			l.NextState = components.LightYellow
			l.Timer = ms.light.GreenTicks
		} else {
			l.State = components.LightRed
			l.NextState = components.LightGreen
			l.Timer = ms.light.RedTicks
		}
	case components.LightGreen:
		l.State = components.LightYellow
		l.NextState = components.LightRed
		l.Timer = ms.light.YellowToRedTicks
	}
}

// walkPedestrians 斑马线接近可见区域时行人才开始横穿
func (ms *ObjectMotionSystem) walkPedestrians(z *components.ZebraCrossing) {
	if z.Y <= ms.zebra.ActiveAbove || z.Y >= ms.height {
		return
	}
	for i := range z.Pedestrians {
		p := &z.Pedestrians[i]
		p.X += p.Speed * float64(p.Direction)
		p.WalkingPhase += ms.zebra.WalkPhaseStep
	}
}
