package systems

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

// evaluateSpeedBump 减速带判定
// 超速压过时扣分并直接按比例削减玩家速度
func (rs *RuleSystem) evaluateSpeedBump(b *components.SpeedBump, player *components.PlayerComponent, metrics *components.GameMetrics) {
	if b.Processed {
		return
	}

	rules := rs.rules.SpeedBump
	line := b.Y + rules.LineOffset
	ahead := player.Y - line

	if ahead > 0 && ahead < rules.WarningDistance && player.Speed > rules.WarningSpeed {
		if metrics.Message.Text == "" || metrics.Message.Type == components.MessageGood {
			rs.feedback.Show(metrics, fmt.Sprintf("BUMP AHEAD! SLOW TO %.0f", b.Limit), components.MessageNeutral)
		}
	}

	if ahead < rules.CrossWindow && line <= rs.playerRear(player) {
		if player.Speed > b.Limit {
			metrics.Score -= rules.Penalty
			metrics.Infractions.Bumps++
			rs.feedback.Show(metrics, fmt.Sprintf("HIT BUMP TOO FAST! -%.0f", rules.Penalty), components.MessageBad)
			player.Speed *= rules.Damping
		} else {
			metrics.Score += rules.Bonus
			rs.feedback.Show(metrics, fmt.Sprintf("Good Bump Speed +%.0f", rules.Bonus), components.MessageGood)
		}
		b.Processed = true
	}
}
