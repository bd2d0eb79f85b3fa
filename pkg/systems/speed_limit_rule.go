package systems

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

// evaluateSpeedLimit 车尾越过限速牌时切换当前区域限速，本身不计分
func (rs *RuleSystem) evaluateSpeedLimit(s *components.SpeedLimitSign, player *components.PlayerComponent, metrics *components.GameMetrics) {
	if s.Processed {
		return
	}

	line := s.Y + rs.rules.SpeedLimit.LineOffset
	if rs.playerRear(player) < line {
		rs.zoneLimit = s.Limit
		rs.feedback.Show(metrics,
			fmt.Sprintf("LIMIT SET TO %.0f", s.Limit*rs.session.SpeedDisplayFactor),
			components.MessageNeutral)
		s.Processed = true
	}
}
