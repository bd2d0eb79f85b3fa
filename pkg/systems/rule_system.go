package systems

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
)

// FatalEvent 规则判定产生的致命事件，出现即结束本局
type FatalEvent int

const (
	FatalNone FatalEvent = iota
	FatalPedestrianStrike
	FatalCrash
)

// String 返回事件名
func (e FatalEvent) String() string {
	switch e {
	case FatalPedestrianStrike:
		return "PEDESTRIAN_STRIKE"
	case FatalCrash:
		return "CRASH"
	default:
		return "NONE"
	}
}

// RuleSystem 按物体类型判定玩家行为，修改分数与违规统计
//
// 当前区域限速和超速计时由本系统持有，每局开始时通过 Reset 清零。
type RuleSystem struct {
	rules    config.RulesConfig
	road     config.RoadConfig
	session  config.SessionConfig
	maxSpeed float64
	feedback *FeedbackSystem

	zoneLimit      float64 // 最近通过的限速牌设置的限速
	overspeedTimer int     // 连续超速的帧数
}

// NewRuleSystem 创建规则系统
func NewRuleSystem(cfg *config.GameConfig, feedback *FeedbackSystem) *RuleSystem {
	rs := &RuleSystem{
		rules:    cfg.Rules,
		road:     cfg.Road,
		session:  cfg.Session,
		maxSpeed: cfg.Physics.MaxSpeed,
		feedback: feedback,
	}
	rs.Reset()
	return rs
}

// Reset 恢复初始限速并清空超速计时
func (rs *RuleSystem) Reset() {
	rs.zoneLimit = rs.maxSpeed
	rs.overspeedTimer = 0
}

// ZoneLimit 返回当前区域限速
func (rs *RuleSystem) ZoneLimit() float64 {
	return rs.zoneLimit
}

// OverspeedTicks 返回当前连续超速帧数
func (rs *RuleSystem) OverspeedTicks() int {
	return rs.overspeedTimer
}

// Evaluate 对单个物体执行规则判定
//
// 参数:
//   - obj: 已推进过位置的交通物体
//   - player: 玩家状态（减速带可能直接降低速度）
//   - metrics: 本局计分数据
//
// 返回:
//   - FatalEvent: 非 FatalNone 时会话必须立即结束
func (rs *RuleSystem) Evaluate(obj components.TrafficObject, player *components.PlayerComponent, metrics *components.GameMetrics) FatalEvent {
	switch o := obj.(type) {
	case *components.TrafficLight:
		rs.evaluateTrafficLight(o, player, metrics)
	case *components.StopSign:
		rs.evaluateStopSign(o, player, metrics)
	case *components.SpeedLimitSign:
		rs.evaluateSpeedLimit(o, player, metrics)
	case *components.SpeedBump:
		rs.evaluateSpeedBump(o, player, metrics)
	case *components.ZebraCrossing:
		return rs.evaluateZebraCrossing(o, player, metrics)
	case *components.ObstacleCar:
		return rs.evaluateObstacleCar(o, player, metrics)
	case *components.Tree:
		// 装饰物，不参与判定
	}
	return FatalNone
}

// UpdateSpeeding 与具体物体无关的持续限速检查，每帧调用一次
//
// 超过限速加容差并持续 SustainTicks 帧后扣分并重新计时，
// 因此持续超速会按固定节奏反复扣分；一旦回到限速内计时立即归零。
func (rs *RuleSystem) UpdateSpeeding(player *components.PlayerComponent, metrics *components.GameMetrics) {
	speeding := rs.rules.Speeding

	if player.Speed > rs.zoneLimit+speeding.Tolerance {
		rs.overspeedTimer++
		if rs.overspeedTimer > speeding.SustainTicks {
			metrics.Score -= speeding.Penalty
			metrics.Infractions.Speeding++
			rs.feedback.Show(metrics,
				fmt.Sprintf("SLOW DOWN! Limit %.0f", rs.zoneLimit*rs.session.SpeedDisplayFactor),
				components.MessageBad)
			rs.overspeedTimer = 0
		}
	} else {
		rs.overspeedTimer = 0
	}

	if player.Speed > speeding.MinCompliantSpeed && player.Speed <= rs.zoneLimit {
		metrics.Score += speeding.CompliantBonus
	}
}

// playerRear 车尾Y坐标
func (rs *RuleSystem) playerRear(player *components.PlayerComponent) float64 {
	return player.Y + rs.road.PlayerHeight
}
