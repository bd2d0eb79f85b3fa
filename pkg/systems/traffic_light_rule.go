package systems

import (
	"fmt"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

// evaluateTrafficLight 红绿灯判定
//
// 以停止线到车头的距离 ahead（停止线在车头前方时为正）划分区域：
//   - 0 < ahead < WarningDistance 且仍在行驶：提醒
//   - 停止线位于车身下方：通过事件，只判定一次
//   - 0 <= ahead < WaitWindow 且静止：等待奖励
func (rs *RuleSystem) evaluateTrafficLight(l *components.TrafficLight, player *components.PlayerComponent, metrics *components.GameMetrics) {
	if l.Processed {
		return
	}

	rules := rs.rules.TrafficLight
	line := l.Y + rules.LineOffset
	ahead := player.Y - line
	effectivelyRed := l.IsEffectivelyRed()
	// 在等待窗口内停车等红灯时由等待提示接管
	waiting := ahead >= 0 && ahead < rules.WaitWindow && player.Speed == 0 && effectivelyRed

	if ahead > 0 && ahead < rules.WarningDistance && !waiting {
		if effectivelyRed {
			rs.feedback.ShowOnce(metrics, "STOP!", components.MessageNeutral)
		} else if l.IsYellowToRed() {
			rs.feedback.ShowOnce(metrics, "PREPARE TO STOP", components.MessageNeutral)
		}
	}

	if ahead < 0 && line <= rs.playerRear(player) {
		switch {
		case effectivelyRed:
			metrics.Score -= rules.RedPenalty
			metrics.Infractions.RedLights++
			rs.feedback.Show(metrics, fmt.Sprintf("RAN RED LIGHT! -%.0f", rules.RedPenalty), components.MessageBad)
		case l.IsYellowToRed():
			metrics.Score -= rules.YellowPenalty
			rs.feedback.Show(metrics, fmt.Sprintf("RISKY YELLOW! -%.0f", rules.YellowPenalty), components.MessageNeutral)
		default:
			metrics.Score += rules.GreenBonus
			rs.feedback.Show(metrics, fmt.Sprintf("Good Crossing! +%.0f", rules.GreenBonus), components.MessageGood)
		}
		l.Processed = true
		l.WaitTicks = 0
		return
	}

	// 等待奖励按自身计时发放，与提示消息是否相同无关
	if waiting {
		if l.WaitTicks%rules.WaitBonusInterval == 0 {
			metrics.Score += rules.WaitBonus
			rs.feedback.Show(metrics, "WAITING...", components.MessageGood)
		}
		l.WaitTicks++
		return
	}
	l.WaitTicks = 0
}
