package game

import (
	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/google/uuid"
)

// GameOverReport 结算画面数据
type GameOverReport struct {
	RunID       uuid.UUID
	PlayerName  string
	Reason      GameOverReason
	Headline    string
	Score       float64
	Distance    float64
	Perfect     bool // 完成赛道且零违规
	Infractions components.Infractions
}

// ReportLine 违规报告中的一行
type ReportLine struct {
	Label string
	Count int
}

func newGameOverReport(runID uuid.UUID, playerName string, reason GameOverReason, metrics components.GameMetrics) *GameOverReport {
	perfect := reason == ReasonWin && metrics.Infractions.Total() == 0
	return &GameOverReport{
		RunID:       runID,
		PlayerName:  playerName,
		Reason:      reason,
		Headline:    headlineFor(reason, perfect),
		Score:       metrics.Score,
		Distance:    metrics.Distance,
		Perfect:     perfect,
		Infractions: metrics.Infractions,
	}
}

func headlineFor(reason GameOverReason, perfect bool) string {
	switch reason {
	case ReasonWin:
		if perfect {
			return "PERFECT RUN!"
		}
		return "COURSE COMPLETED!"
	case ReasonCrash:
		return "CRASHED!"
	case ReasonPedestrianStrike:
		return "LICENSE REVOKED!"
	case ReasonScoreFloor:
		return "TOO MANY VIOLATIONS"
	default:
		return "GAME OVER"
	}
}

// Lines 按固定顺序列出各类违规次数
func (r *GameOverReport) Lines() []ReportLine {
	in := r.Infractions
	return []ReportLine{
		{"Red lights", in.RedLights},
		{"Stop signs", in.StopSigns},
		{"Speeding", in.Speeding},
		{"Speed bumps", in.Bumps},
		{"Pedestrians", in.Pedestrians},
		{"Crashes", in.Crashes},
	}
}
