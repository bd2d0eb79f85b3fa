package systems

import (
	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

// evaluateObstacleCar 障碍车碰撞检测（AABB）
// 使用玩家的平滑渲染X坐标以获得精确的碰撞判定
func (rs *RuleSystem) evaluateObstacleCar(c *components.ObstacleCar, player *components.PlayerComponent, metrics *components.GameMetrics) FatalEvent {
	carX := rs.road.LaneX(int(c.Lane))
	width := rs.road.PlayerWidth
	height := rs.road.PlayerHeight

	overlap := player.X < carX+width &&
		player.X+width > carX &&
		player.Y < c.Y+height &&
		player.Y+height > c.Y
	if !overlap {
		return FatalNone
	}

	metrics.Score -= rs.rules.Crash.Penalty
	metrics.Infractions.Crashes++
	rs.feedback.Show(metrics, "CRASHED!", components.MessageBad)
	return FatalCrash
}
