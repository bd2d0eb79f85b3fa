// Package autopilot 提供一个遵守交通规则的简单自动驾驶策略
//
// 只读取快照，不访问模拟内部状态，供无界面模拟和回归测试使用。
package autopilot

import (
	"math"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
)

const (
	// speedMargin 目标速度低于限速的余量
	speedMargin = 0.5
	// stopMargin 停车时在停止线前预留的距离
	stopMargin = 30.0
	// carLookahead 前方多远的同车道车辆需要避让
	carLookahead = 320.0
)

// Driver 自动驾驶策略
type Driver struct {
	cfg *config.GameConfig
}

// New 创建自动驾驶策略
func New(cfg *config.GameConfig) *Driver {
	return &Driver{cfg: cfg}
}

// Decide 根据快照决定本帧输入
func (d *Driver) Decide(snap game.Snapshot) components.InputIntent {
	p := snap.Player
	target := math.Min(snap.ZoneLimit, p.MaxSpeed) - speedMargin
	mustStop := false

	for _, obj := range snap.Objects {
		switch o := obj.(type) {
		case *components.TrafficLight:
			ahead := p.Y - (o.Y + d.cfg.Rules.TrafficLight.LineOffset)
			if (o.IsEffectivelyRed() || o.IsYellowToRed()) && ahead > 0 && d.needsBrake(p.Speed, ahead) {
				mustStop = true
			}
		case *components.StopSign:
			ahead := p.Y - (o.Y + d.cfg.Rules.StopSign.LineOffset)
			if !o.HasStopped && ahead > 0 && d.needsBrake(p.Speed, ahead) {
				mustStop = true
			}
		case *components.SpeedBump:
			ahead := p.Y - (o.Y + d.cfg.Rules.SpeedBump.LineOffset)
			if ahead > -d.cfg.Road.PlayerHeight && ahead < d.cfg.Rules.SpeedBump.WarningDistance {
				target = math.Min(target, o.Limit-speedMargin)
			}
		case *components.ZebraCrossing:
			ahead := p.Y - (o.Y + d.cfg.Rules.Zebra.Height + d.cfg.Rules.Zebra.DangerMargin)
			if d.pedestriansOnRoad(o) && ahead > 0 && d.needsBrake(p.Speed, ahead) {
				mustStop = true
			}
		}
	}

	intent := components.InputIntent{}
	if lane, blocked := d.avoidCar(snap); blocked {
		switch {
		case lane < p.Lane:
			intent.Left = true
		case lane > p.Lane:
			intent.Right = true
		default:
			mustStop = true
		}
	}

	switch {
	case mustStop:
		intent.Brake = p.Speed > 0
	case p.Speed > target+speedMargin:
		intent.Brake = true
	case p.Speed < target:
		intent.Accelerate = true
	}
	return intent
}

// stoppingDistance 以当前速度全力刹车到停下所行驶的距离
func (d *Driver) stoppingDistance(speed float64) float64 {
	b := d.cfg.Physics.Braking
	if b <= 0 || speed <= 0 {
		return 0
	}
	n := math.Ceil(speed / b)
	return n*speed - b*n*(n-1)/2
}

func (d *Driver) needsBrake(speed, ahead float64) bool {
	return ahead <= d.stoppingDistance(speed)+speed+stopMargin
}

func (d *Driver) pedestriansOnRoad(z *components.ZebraCrossing) bool {
	margin := d.cfg.Rules.Zebra.NearRoadMargin
	left := d.cfg.Road.RoadX() - margin
	right := d.cfg.Road.RoadX() + d.cfg.Road.RoadWidth() + margin
	for _, ped := range z.Pedestrians {
		if ped.X > left && ped.X < right {
			return true
		}
	}
	return false
}

// avoidCar 当前车道前方有车时返回应该换到的车道；无处可换时返回当前车道
func (d *Driver) avoidCar(snap game.Snapshot) (components.Lane, bool) {
	p := snap.Player
	occupied := make([]bool, components.LaneCount)
	for _, obj := range snap.Objects {
		car, ok := obj.(*components.ObstacleCar)
		if !ok {
			continue
		}
		rearGap := p.Y - (car.Y + d.cfg.Road.PlayerHeight)
		if rearGap < carLookahead && car.Y < p.Y+d.cfg.Road.PlayerHeight {
			occupied[car.Lane] = true
		}
	}
	if !occupied[p.Lane] {
		return p.Lane, false
	}

	for _, delta := range []components.Lane{-1, 1} {
		lane := p.Lane + delta
		if lane >= 0 && int(lane) < components.LaneCount && !occupied[lane] {
			return lane, true
		}
	}
	return p.Lane, true
}
