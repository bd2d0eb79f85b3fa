package game

import (
	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/google/uuid"
)

// Snapshot 展示层使用的一帧只读状态
// 物体均为深拷贝，修改不会影响模拟
type Snapshot struct {
	RunID      uuid.UUID
	State      SessionState
	Reason     GameOverReason
	PlayerName string
	Tick       int

	Player    components.PlayerComponent
	Objects   []components.TrafficObject
	Metrics   components.GameMetrics
	ZoneLimit float64

	// SpeedDisplay 速度表显示值（km/h）
	SpeedDisplay float64
	// ZoneLimitDisplay 当前限速显示值（km/h）
	ZoneLimitDisplay float64

	Report *GameOverReport
}

// refreshSnapshot 根据当前状态生成快照
func (s *Session) refreshSnapshot() {
	live := s.entityManager.Entities()
	objects := make([]components.TrafficObject, len(live))
	for i, obj := range live {
		objects[i] = obj.Clone()
	}

	factor := s.cfg.Session.SpeedDisplayFactor
	snap := Snapshot{
		RunID:            s.runID,
		State:            s.state,
		Reason:           s.reason,
		PlayerName:       s.identityName(),
		Tick:             s.ticks,
		Player:           s.player,
		Objects:          objects,
		Metrics:          s.metrics,
		ZoneLimit:        s.rules.ZoneLimit(),
		SpeedDisplay:     s.player.Speed * factor,
		ZoneLimitDisplay: s.rules.ZoneLimit() * factor,
	}
	if s.report != nil {
		report := *s.report
		snap.Report = &report
	}
	s.snapshot = snap
}
