package config

// 窗口布局常量
// 逻辑分辨率与道路画布一致，Ebitengine 负责缩放到实际窗口
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 600

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 800

	// HUDMargin HUD 面板距屏幕边缘的距离
	HUDMargin = 16.0

	// MessageY 提示消息的中心Y坐标（屏幕上方四分之一处）
	MessageY = GameWindowHeight / 4

	// LeaderboardRows 登录界面排行榜最多显示的行数
	LeaderboardRows = 8
)
