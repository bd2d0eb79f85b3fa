package game

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/ecs"
	"github.com/Akhipbm/Traffic-runner/pkg/systems"
	"github.com/google/uuid"
)

// SessionState 会话状态
type SessionState int

const (
	StateLogin SessionState = iota
	StateStart
	StatePlaying
	StateGameOver
)

// String 返回状态名
func (s SessionState) String() string {
	switch s {
	case StateStart:
		return "START"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "LOGIN"
	}
}

// GameOverReason 结束原因
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonWin
	ReasonCrash
	ReasonPedestrianStrike
	ReasonScoreFloor
)

// String 返回原因名
func (r GameOverReason) String() string {
	switch r {
	case ReasonWin:
		return "WIN"
	case ReasonCrash:
		return "CRASH"
	case ReasonPedestrianStrike:
		return "PEDESTRIAN_STRIKE"
	case ReasonScoreFloor:
		return "SCORE_FLOOR"
	default:
		return "NONE"
	}
}

// Session 一名驾驶员的游戏会话：状态机 + 帧驱动
//
// 状态流转：LOGIN → START → PLAYING → GAME_OVER，
// GAME_OVER 可重新开始或返回 START，START/GAME_OVER 可登出回到 LOGIN。
// 所有可变状态只由 Tick 修改，展示层通过 Snapshot 读取只读副本。
type Session struct {
	cfg        *config.GameConfig
	scoreboard Scoreboard
	newRunID   func() uuid.UUID

	entityManager *ecs.EntityManager[components.TrafficObject]
	kinematics    *systems.KinematicsSystem
	spawner       *systems.SpawnSystem
	motion        *systems.ObjectMotionSystem
	rules         *systems.RuleSystem
	feedback      *systems.FeedbackSystem

	state    SessionState
	reason   GameOverReason
	identity *PlayerIdentity
	player   components.PlayerComponent
	metrics  components.GameMetrics
	runID    uuid.UUID
	ticks    int
	report   *GameOverReport

	snapshot Snapshot
}

// NewSession 创建会话，初始处于 LOGIN 状态
//
// 参数：
//   - cfg: 已校验的游戏配置
//   - scoreboard: 驾驶员记录存储
//   - rng: 生成系统使用的随机数源
func NewSession(cfg *config.GameConfig, scoreboard Scoreboard, rng *rand.Rand) *Session {
	em := ecs.NewEntityManager[components.TrafficObject]()
	feedback := systems.NewFeedbackSystem(cfg.Session.MessageDuration)

	s := &Session{
		cfg:           cfg,
		scoreboard:    scoreboard,
		newRunID:      uuid.New,
		entityManager: em,
		kinematics:    systems.NewKinematicsSystem(cfg),
		spawner:       systems.NewSpawnSystem(em, cfg, rng),
		motion:        systems.NewObjectMotionSystem(cfg),
		rules:         systems.NewRuleSystem(cfg, feedback),
		feedback:      feedback,
		state:         StateLogin,
	}
	s.resetWorld()
	s.refreshSnapshot()
	return s
}

// State 当前状态
func (s *Session) State() SessionState { return s.state }

// Identity 当前驾驶员，未登录时返回 nil
func (s *Session) Identity() *PlayerIdentity { return s.identity }

// Scoreboard 返回记录存储（供登录界面显示排行榜）
func (s *Session) Scoreboard() Scoreboard { return s.scoreboard }

// Report 最近一局的结算报告，尚未结束过则为 nil
func (s *Session) Report() *GameOverReport { return s.report }

// Snapshot 返回最近一帧生成的只读快照
func (s *Session) Snapshot() Snapshot { return s.snapshot }

// Login 以指定名称登录，成功后进入 START
func (s *Session) Login(name string) error {
	if s.state != StateLogin {
		return fmt.Errorf("cannot log in from state %s", s.state)
	}
	if err := ValidatePlayerName(name); err != nil {
		return err
	}

	id, err := s.scoreboard.Identify(name)
	if err != nil {
		log.Printf("[Session] Warning: failed to persist login for %q: %v", id.Name, err)
	}
	s.identity = &id
	s.state = StateStart
	log.Printf("[Session] %q logged in", id.Name)

	s.refreshSnapshot()
	return nil
}

// Logout 从任意状态回到 LOGIN，丢弃进行中的一局
func (s *Session) Logout() {
	if s.identity != nil {
		log.Printf("[Session] %q logged out", s.identity.Name)
	}
	s.identity = nil
	s.state = StateLogin
	s.report = nil
	s.resetWorld()
	s.refreshSnapshot()
}

// DeleteUser 删除驾驶员记录；删除的是当前驾驶员时立即登出
func (s *Session) DeleteUser(name string) {
	name = strings.TrimSpace(name)
	if _, err := s.scoreboard.Remove(PlayerIdentity{Name: name}); err != nil {
		log.Printf("[Session] Warning: failed to persist removal of %q: %v", name, err)
	}
	if s.identity != nil && s.identity.Name == name {
		s.Logout()
	}
}

// Start 开始新的一局（也用于 GAME_OVER 后的重新开始）
//
// 分数、距离、违规统计、物体、限速区和生成节奏全部重置，
// 并在前方放置第一个红绿灯。
func (s *Session) Start() error {
	if s.state != StateStart && s.state != StateGameOver {
		return fmt.Errorf("cannot start a run from state %s", s.state)
	}

	s.resetWorld()
	s.report = nil
	s.runID = s.newRunID()
	s.state = StatePlaying
	s.spawner.SpawnObject(components.ObjectTrafficLight, s.cfg.Session.InitialLightOffset)
	s.feedback.Show(&s.metrics, s.cfg.Session.StartMessage, components.MessageNeutral)

	log.Printf("[Session] Run %s started for %q", s.runID, s.identityName())
	s.refreshSnapshot()
	return nil
}

// ReturnToStart 结束画面返回开始界面
func (s *Session) ReturnToStart() error {
	if s.state != StateGameOver {
		return fmt.Errorf("cannot return to start from state %s", s.state)
	}
	s.state = StateStart
	s.resetWorld()
	s.refreshSnapshot()
	return nil
}

// Tick 推进一帧模拟，只在 PLAYING 状态下生效
//
// 顺序固定：运动学 → 终点判定 → 持续限速检查 → 消息倒计时 →
// 生成 → 物体推进与规则判定 → 清理 → 分数下限判定 → 快照。
// 一帧内最先出现的结束原因生效，之后不再判定。
func (s *Session) Tick(input components.InputIntent) {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	s.metrics.Distance += s.kinematics.Update(&s.player, input)
	if s.metrics.Distance >= s.cfg.Session.GoalDistance {
		s.feedback.Show(&s.metrics, "COURSE COMPLETED!", components.MessageGood)
		s.finish(ReasonWin)
		return
	}

	s.rules.UpdateSpeeding(&s.player, &s.metrics)
	s.feedback.Update(&s.metrics)
	s.spawner.Update()

	for _, obj := range s.entityManager.Entities() {
		s.motion.Advance(obj, s.player.Speed)

		switch s.rules.Evaluate(obj, &s.player, &s.metrics) {
		case systems.FatalPedestrianStrike:
			s.finish(ReasonPedestrianStrike)
			return
		case systems.FatalCrash:
			s.finish(ReasonCrash)
			return
		}
	}

	s.cleanup()

	if s.metrics.Score < s.cfg.Session.ScoreFloor {
		s.finish(ReasonScoreFloor)
		return
	}

	s.refreshSnapshot()
}

// cleanup 移除已滚出画布底部足够远的物体
func (s *Session) cleanup() {
	limit := s.cfg.Road.CanvasHeight + s.cfg.Session.CleanupMargin
	for _, obj := range s.entityManager.Entities() {
		if obj.Base().Y >= limit {
			s.entityManager.DestroyEntity(obj.Base().ID)
		}
	}
	s.entityManager.RemoveMarkedEntities()
}

// finish 进入 GAME_OVER 并记录一次分数
func (s *Session) finish(reason GameOverReason) {
	if s.state != StatePlaying {
		return
	}
	s.state = StateGameOver
	s.reason = reason
	s.report = newGameOverReport(s.runID, s.identityName(), reason, s.metrics)

	log.Printf("[Session] Run %s over: %s score=%.1f distance=%.1f infractions=%d",
		s.runID, reason, s.metrics.Score, s.metrics.Distance, s.metrics.Infractions.Total())

	if s.identity != nil {
		if _, err := s.scoreboard.RecordScore(*s.identity, s.metrics.Score, s.runID); err != nil {
			log.Printf("[Session] Warning: failed to persist score: %v", err)
		}
	}

	s.refreshSnapshot()
}

// resetWorld 丢弃一局的全部状态
func (s *Session) resetWorld() {
	s.entityManager.Clear()
	s.spawner.Reset()
	s.rules.Reset()
	s.player = s.kinematics.NewPlayer()
	s.metrics = components.GameMetrics{}
	s.reason = ReasonNone
	s.runID = uuid.Nil
	s.ticks = 0
}

func (s *Session) identityName() string {
	if s.identity == nil {
		return ""
	}
	return s.identity.Name
}
