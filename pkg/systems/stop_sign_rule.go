package systems

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

// evaluateStopSign 停车标志判定
//
// 停车区内速度低于阈值时倒计时递减；重新起步时倒计时暂停，不会重置。
// 车尾越过停止线时结算。
func (rs *RuleSystem) evaluateStopSign(s *components.StopSign, player *components.PlayerComponent, metrics *components.GameMetrics) {
	if s.Processed {
		return
	}

	rules := rs.rules.StopSign
	line := s.Y + rules.LineOffset
	ahead := player.Y - line
	dwellSeconds := rules.DwellTicks / rs.session.TicksPerSecond

	if ahead > -rules.ZoneOvershoot && ahead < rules.ZoneLength {
		if player.Speed < rules.SpeedThreshold {
			if s.StopTimer > 0 {
				s.StopTimer--
			}
			if s.StopTimer <= 0 {
				s.HasStopped = true
				rs.feedback.ShowOnce(metrics, "GO!", components.MessageGood)
			}
		} else if !s.HasStopped && metrics.Message.Type != components.MessageBad {
			rs.feedback.ShowOnce(metrics, fmt.Sprintf("STOP FOR %ds", dwellSeconds), components.MessageNeutral)
		}
	}

	if rs.playerRear(player) < line {
		if !s.HasStopped {
			metrics.Score -= rules.Penalty
			metrics.Infractions.StopSigns++
			rs.feedback.Show(metrics, fmt.Sprintf("DID NOT WAIT %ds! -%.0f", dwellSeconds, rules.Penalty), components.MessageBad)
		} else {
			metrics.Score += rules.Bonus
			rs.feedback.Show(metrics, fmt.Sprintf("Perfect Stop +%.0f", rules.Bonus), components.MessageGood)
		}
		s.Processed = true
	}
}
