package scenes

import (
	"github.com/Akhipbm/Traffic-runner/internal/audio"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// NewSceneFactory 返回按会话状态创建场景的工厂函数
//
// 每次状态变化都会创建新的场景实例，场景只通过 session 的操作和快照与模拟交互。
// settings 用于登录界面预填最近的驾驶员和保存静音开关，cues 播放提示音，二者都可为 nil。
func NewSceneFactory(session *game.Session, cfg *config.GameConfig, settings *game.SettingsManager, cues *audio.CuePlayer) game.SceneFactory {
	road := NewRoadRenderer(cfg)
	return func(state game.SessionState) game.Scene {
		switch state {
		case game.StateLogin:
			lastDriver := ""
			if settings != nil {
				lastDriver = settings.GetSettings().LastDriver
			}
			return NewLoginScene(session, lastDriver)
		case game.StateStart:
			return NewStartScene(session, road)
		case game.StatePlaying:
			return NewDrivingScene(session, cfg, road, settings, cues)
		case game.StateGameOver:
			return NewGameOverScene(session, road)
		default:
			return nil
		}
	}
}
