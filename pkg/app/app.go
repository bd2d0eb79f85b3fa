// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/Akhipbm/Traffic-runner/internal/audio"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/embedded"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/Akhipbm/Traffic-runner/pkg/scenes"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// EmbeddedConfigPath 内置配置文件路径
const EmbeddedConfigPath = "data/traffic_config.yaml"

// storageAppName gdata 存储目录名
const storageAppName = "traffic_runner"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件，为空则使用内置配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	session                  *game.Session
	settings                 *game.SettingsManager
	sceneManager             *game.SceneManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 配置加载失败返回错误；本地存储不可用时以内存模式继续运行。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	a := newApp(cfg, gameConfig, openStorage(), audio.NewCuePlayer())
	if a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

func newApp(cfg Config, gameConfig *config.GameConfig, storage *gdata.Manager, cues *audio.CuePlayer) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	scoreboard := game.NewGdataScoreboard(storage)
	settings := game.NewSettingsManager(storage)
	session := game.NewSession(gameConfig, scoreboard, rand.New(rand.NewSource(seed)))

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(session, gameConfig, settings, cues))
	sceneManager.Sync(session.State())

	return &App{
		session:      session,
		settings:     settings,
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}
}

// LoadGameConfig 加载游戏配置
//
// 优先级：path 指定的磁盘文件 > 内置 data/traffic_config.yaml > 默认值。
// 内置资源未初始化时（例如移动端或测试）直接使用默认值。
func LoadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		log.Printf("[Config] Loaded game config from %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not available, using defaults")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(EmbeddedConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded config: %w", err)
	}
	log.Printf("[Config] Loaded embedded game config")
	return cfg, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（记录只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: local storage unavailable: %v (records will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次），驾驶场景中一次 Update 对应一次模拟 Tick
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Sync(a.session.State())
	a.sceneManager.Update(deltaTime)
	// 状态在本帧发生变化时，让 Draw 使用新场景
	a.sceneManager.Sync(a.session.State())
	a.rememberDriver()
	return nil
}

// rememberDriver 登录成功后记住驾驶员名称
func (a *App) rememberDriver() {
	id := a.session.Identity()
	if id == nil {
		return
	}
	if err := a.settings.RememberDriver(id.Name); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Session 返回游戏会话
func (a *App) Session() *game.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
