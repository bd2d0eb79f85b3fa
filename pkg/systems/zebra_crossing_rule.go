package systems

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

// evaluateZebraCrossing 斑马线判定
//
// 两项独立检查：
//  1. 行人碰撞：任何时刻撞到行人立即结束本局，优先于其他判定
//  2. 让行：车尾越过斑马线时仍有行人在路上视为未让行；
//     否则若之前检测到停车礼让则给予奖励
func (rs *RuleSystem) evaluateZebraCrossing(z *components.ZebraCrossing, player *components.PlayerComponent, metrics *components.GameMetrics) FatalEvent {
	rules := rs.rules.Zebra

	if rs.hitsPedestrian(z, player) {
		metrics.Score = rules.PedestrianSentinel
		metrics.Infractions.Pedestrians++
		rs.feedback.Show(metrics, "HIT PEDESTRIAN! LICENSE REVOKED", components.MessageBad)
		return FatalPedestrianStrike
	}

	if z.Processed {
		return FatalNone
	}

	if rs.playerRear(player) < z.Y {
		if rs.anyPedestrianWithin(z, 0) {
			metrics.Score -= rules.FailPenalty
			metrics.Infractions.Pedestrians++
			rs.feedback.Show(metrics, fmt.Sprintf("FAILED TO YIELD! -%.0f", rules.FailPenalty), components.MessageBad)
		} else if z.Yielded {
			metrics.Score += rules.YieldBonus
			rs.feedback.Show(metrics, fmt.Sprintf("Yielded to Pedestrians +%.0f", rules.YieldBonus), components.MessageGood)
		}
		z.Processed = true
		return FatalNone
	}

	// 礼让检测区从斑马线边缘开始，向前延伸 DangerMargin+YieldZone；不标记 Processed
	stripeEdge := z.Y + rules.Height
	ahead := player.Y - stripeEdge
	if ahead > 0 && ahead < rules.DangerMargin+rules.YieldZone {
		if player.Speed < rules.YieldSpeed && rs.anyPedestrianWithin(z, rules.NearRoadMargin) {
			z.Yielded = true
			rs.feedback.ShowOnce(metrics, "Yielding...", components.MessageGood)
		}
	}

	return FatalNone
}

// hitsPedestrian 行人碰撞点是否落在玩家碰撞盒内（左右放宽 HitMargin）
func (rs *RuleSystem) hitsPedestrian(z *components.ZebraCrossing, player *components.PlayerComponent) bool {
	rules := rs.rules.Zebra
	hitY := z.Y + rules.HitOffset
	if hitY <= player.Y || hitY >= rs.playerRear(player) {
		return false
	}

	left := player.X - rules.HitMargin
	right := player.X + rs.road.PlayerWidth + rules.HitMargin
	for _, p := range z.Pedestrians {
		if p.X > left && p.X < right {
			return true
		}
	}
	return false
}

// anyPedestrianWithin 是否有行人位于道路范围内（两侧放宽 margin）
func (rs *RuleSystem) anyPedestrianWithin(z *components.ZebraCrossing, margin float64) bool {
	left := rs.road.RoadX() - margin
	right := rs.road.RoadX() + rs.road.RoadWidth() + margin
	for _, p := range z.Pedestrians {
		if p.X > left && p.X < right {
			return true
		}
	}
	return false
}
