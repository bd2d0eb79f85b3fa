package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局设置，不绑定到特定驾驶员
type GameSettings struct {
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
	// LastDriver 最近一次登录的驾驶员，登录界面预填
	LastDriver string `yaml:"lastDriver"`
	// Muted 关闭提示音
	Muted bool `yaml:"muted"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	settings     *GameSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或文件不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded GameSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetMuted 设置提示音静音
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetMuted(muted bool) {
	sm.settings.Muted = muted
}

// RememberDriver 记录最近登录的驾驶员并立即保存
// 名称未变化时不写盘
func (sm *SettingsManager) RememberDriver(name string) error {
	if sm.settings.LastDriver == name {
		return nil
	}
	sm.settings.LastDriver = name
	return sm.Save()
}
