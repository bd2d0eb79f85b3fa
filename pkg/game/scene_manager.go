package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据会话状态创建对应场景，避免 game 包依赖 scenes 包
type SceneFactory func(state SessionState) Scene

// SceneManager controls which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentState SessionState
	synced       bool
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Sync to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Sync 会话状态变化时切换到对应场景
// 状态未变化时保持当前场景实例（场景内的输入缓冲等不会丢失）
func (sm *SceneManager) Sync(state SessionState) {
	if sm.synced && sm.currentState == state {
		return
	}

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(state)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", state)
		return
	}

	sm.SwitchTo(newScene)
	sm.currentState = state
	sm.synced = true
	log.Printf("[SceneManager] 切换到场景: %s", state)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
