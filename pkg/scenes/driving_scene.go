package scenes

import (
	"log"

	"github.com/Akhipbm/Traffic-runner/internal/audio"
	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// DrivingScene 驾驶画面：每帧读取输入推进一次模拟，然后绘制快照
type DrivingScene struct {
	session     *game.Session
	road        *RoadRenderer
	bindings    utils.KeyBindings
	maxSpeedKmh float64
	lastInput   components.InputIntent

	settings *game.SettingsManager
	cues     *audio.CuePlayer
	muted    bool
	messages audio.MessageWatcher
}

// NewDrivingScene 创建驾驶场景
// settings 和 cues 可为 nil
func NewDrivingScene(session *game.Session, cfg *config.GameConfig, road *RoadRenderer, settings *game.SettingsManager, cues *audio.CuePlayer) *DrivingScene {
	muted := settings != nil && settings.GetSettings().Muted
	cues.SetMuted(muted)
	return &DrivingScene{
		session:     session,
		road:        road,
		bindings:    utils.DefaultKeyBindings(),
		maxSpeedKmh: cfg.Physics.MaxSpeed * cfg.Session.SpeedDisplayFactor,
		settings:    settings,
		cues:        cues,
		muted:       muted,
	}
}

// Update 每个 ebiten 帧对应一次模拟 Tick
func (s *DrivingScene) Update(deltaTime float64) {
	if utils.IsAnyKeyJustPressed(ebiten.KeyM) {
		s.toggleMute()
	}

	s.lastInput = utils.ReadDrivingInput(s.bindings, config.GameWindowWidth, config.GameWindowHeight)
	s.session.Tick(s.lastInput)
	s.playCue(s.session.Snapshot().Metrics.Message)
}

// playCue 新提示消息出现时播放对应的提示音
func (s *DrivingScene) playCue(msg components.FeedbackMessage) bool {
	if !s.messages.Observe(msg) {
		return false
	}
	s.cues.Play(msg.Type)
	return true
}

// toggleMute 切换静音并保存到设置
func (s *DrivingScene) toggleMute() {
	s.muted = !s.muted
	s.cues.SetMuted(s.muted)
	if s.settings == nil {
		return
	}
	s.settings.SetMuted(s.muted)
	if err := s.settings.Save(); err != nil {
		log.Printf("[DrivingScene] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制道路与 HUD
func (s *DrivingScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	s.road.Draw(screen, snap, s.lastInput.Brake)
	drawHUD(screen, snap, s.maxSpeedKmh)
}
