package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏模拟的全部可调参数
// 所有计时单位均为帧（60 帧 = 1 秒），距离单位为像素
type GameConfig struct {
	Road    RoadConfig    `yaml:"road"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Rules   RulesConfig   `yaml:"rules"`
	Session SessionConfig `yaml:"session"`
}

// RoadConfig 道路与车辆几何尺寸
type RoadConfig struct {
	CanvasWidth  float64 `yaml:"canvasWidth"`
	CanvasHeight float64 `yaml:"canvasHeight"`
	LaneWidth    float64 `yaml:"laneWidth"`
	PlayerWidth  float64 `yaml:"playerWidth"`
	PlayerHeight float64 `yaml:"playerHeight"`
	// PlayerOffsetBottom 车头距画布底部的距离
	PlayerOffsetBottom float64 `yaml:"playerOffsetBottom"`
	TreeWidth          float64 `yaml:"treeWidth"`
}

// RoadWidth 三条车道总宽
func (r RoadConfig) RoadWidth() float64 {
	return r.LaneWidth * 3
}

// RoadX 道路左边缘X坐标（道路水平居中）
func (r RoadConfig) RoadX() float64 {
	return (r.CanvasWidth - r.RoadWidth()) / 2
}

// PlayerY 车头的固定Y坐标
func (r RoadConfig) PlayerY() float64 {
	return r.CanvasHeight - r.PlayerOffsetBottom
}

// LaneX 车辆在指定车道内居中时的左边缘X坐标
func (r RoadConfig) LaneX(lane int) float64 {
	return r.RoadX() + float64(lane)*r.LaneWidth + (r.LaneWidth-r.PlayerWidth)/2
}

// PhysicsConfig 玩家运动学参数
type PhysicsConfig struct {
	MaxSpeed     float64 `yaml:"maxSpeed"`
	Acceleration float64 `yaml:"acceleration"` // 按住加速时每帧增加
	Braking      float64 `yaml:"braking"`      // 按住刹车时每帧减少
	Friction     float64 `yaml:"friction"`     // 滑行时每帧减少
	// LaneEase 每帧渲染X向目标车道靠拢的比例
	LaneEase float64 `yaml:"laneEase"`
	// DistanceScale 速度到行驶距离（米）的换算系数
	DistanceScale float64 `yaml:"distanceScale"`
}

// SpawnWeight 生成权重表中的一项
type SpawnWeight struct {
	Type   string `yaml:"type"`
	Weight int    `yaml:"weight"`
}

// SpawnConfig 物体生成参数
type SpawnConfig struct {
	TreeInterval   int     `yaml:"treeInterval"`   // 装饰树生成间隔（帧）
	ObjectInterval int     `yaml:"objectInterval"` // 交通物体生成间隔（帧）
	MinGap         float64 `yaml:"minGap"`         // 上一个交通物体至少滚动到的Y坐标
	TreeOffset     float64 `yaml:"treeOffset"`
	ObjectOffset   float64 `yaml:"objectOffset"`
	CarOffset      float64 `yaml:"carOffset"`

	Weights []SpawnWeight `yaml:"weights"`

	SpeedLimitValues []float64 `yaml:"speedLimitValues"`
	BumpLimit        float64   `yaml:"bumpLimit"`

	StationaryCarChance float64  `yaml:"stationaryCarChance"`
	CarMinSpeed         float64  `yaml:"carMinSpeed"`
	CarMaxSpeed         float64  `yaml:"carMaxSpeed"`
	CarColors           []string `yaml:"carColors"` // 十六进制颜色，如 "#3b82f6"

	MinPedestrians     int     `yaml:"minPedestrians"`
	MaxPedestrians     int     `yaml:"maxPedestrians"`
	PedestrianMinSpeed float64 `yaml:"pedestrianMinSpeed"`
	PedestrianMaxSpeed float64 `yaml:"pedestrianMaxSpeed"`
	// PedestrianStartGap 行人起点距路边的最小距离，外加 PedestrianStartSpread 的随机量
	PedestrianStartGap    float64 `yaml:"pedestrianStartGap"`
	PedestrianStartSpread float64 `yaml:"pedestrianStartSpread"`
}

// RulesConfig 规则引擎的区域、阈值与分值
type RulesConfig struct {
	TrafficLight TrafficLightRules `yaml:"trafficLight"`
	StopSign     StopSignRules     `yaml:"stopSign"`
	SpeedLimit   SpeedLimitRules   `yaml:"speedLimit"`
	Speeding     SpeedingRules     `yaml:"speeding"`
	SpeedBump    SpeedBumpRules    `yaml:"speedBump"`
	Zebra        ZebraRules        `yaml:"zebra"`
	Crash        CrashRules        `yaml:"crash"`
}

// TrafficLightRules 红绿灯
type TrafficLightRules struct {
	RedTicks           int     `yaml:"redTicks"`
	YellowToGreenTicks int     `yaml:"yellowToGreenTicks"`
	GreenTicks         int     `yaml:"greenTicks"`
	YellowToRedTicks   int     `yaml:"yellowToRedTicks"`
	LineOffset         float64 `yaml:"lineOffset"`      // 停止线相对物体Y的偏移
	WarningDistance    float64 `yaml:"warningDistance"` // 停止线前的提醒距离
	WaitWindow         float64 `yaml:"waitWindow"`      // 停止线前可获得等待奖励的距离
	RedPenalty         float64 `yaml:"redPenalty"`
	YellowPenalty      float64 `yaml:"yellowPenalty"`
	GreenBonus         float64 `yaml:"greenBonus"`
	WaitBonus          float64 `yaml:"waitBonus"`
	// WaitBonusInterval 持续等待时每隔多少帧再发放一次等待奖励
	WaitBonusInterval int `yaml:"waitBonusInterval"`
}

// StopSignRules 停车标志
type StopSignRules struct {
	LineOffset     float64 `yaml:"lineOffset"`
	ZoneLength     float64 `yaml:"zoneLength"`     // 停止线前的停车区长度
	ZoneOvershoot  float64 `yaml:"zoneOvershoot"`  // 停止线后仍算作停车区的距离
	SpeedThreshold float64 `yaml:"speedThreshold"` // 低于该速度视为停车
	DwellTicks     int     `yaml:"dwellTicks"`
	Penalty        float64 `yaml:"penalty"`
	Bonus          float64 `yaml:"bonus"`
}

// SpeedLimitRules 限速牌
type SpeedLimitRules struct {
	LineOffset float64 `yaml:"lineOffset"`
}

// SpeedingRules 区域限速的持续检查
type SpeedingRules struct {
	Tolerance         float64 `yaml:"tolerance"`
	SustainTicks      int     `yaml:"sustainTicks"`
	Penalty           float64 `yaml:"penalty"`
	CompliantBonus    float64 `yaml:"compliantBonus"`
	MinCompliantSpeed float64 `yaml:"minCompliantSpeed"`
}

// SpeedBumpRules 减速带
type SpeedBumpRules struct {
	LineOffset      float64 `yaml:"lineOffset"`
	WarningDistance float64 `yaml:"warningDistance"`
	WarningSpeed    float64 `yaml:"warningSpeed"`
	CrossWindow     float64 `yaml:"crossWindow"` // 车头前多少像素开始算作压上减速带
	Penalty         float64 `yaml:"penalty"`
	Bonus           float64 `yaml:"bonus"`
	Damping         float64 `yaml:"damping"` // 超速压过时速度乘以该系数
}

// ZebraRules 斑马线
type ZebraRules struct {
	Height             float64 `yaml:"height"`
	ActiveAbove        float64 `yaml:"activeAbove"` // 斑马线Y大于该值时行人开始移动
	WalkPhaseStep      float64 `yaml:"walkPhaseStep"`
	HitOffset          float64 `yaml:"hitOffset"` // 行人碰撞点相对斑马线Y的偏移
	HitMargin          float64 `yaml:"hitMargin"` // 玩家碰撞盒左右放宽
	DangerMargin       float64 `yaml:"dangerMargin"`
	YieldZone          float64 `yaml:"yieldZone"`      // 危险区前的礼让检测长度
	YieldSpeed         float64 `yaml:"yieldSpeed"`     // 低于该速度视为礼让停车
	NearRoadMargin     float64 `yaml:"nearRoadMargin"` // 行人在路边该范围内也算"在路上"
	PedestrianSentinel float64 `yaml:"pedestrianSentinel"`
	FailPenalty        float64 `yaml:"failPenalty"`
	YieldBonus         float64 `yaml:"yieldBonus"`
}

// CrashRules 车辆碰撞
type CrashRules struct {
	Penalty float64 `yaml:"penalty"`
}

// SessionConfig 会话与帧驱动参数
type SessionConfig struct {
	TicksPerSecond     int     `yaml:"ticksPerSecond"`
	GoalDistance       float64 `yaml:"goalDistance"`
	ScoreFloor         float64 `yaml:"scoreFloor"`
	MessageDuration    int     `yaml:"messageDuration"`
	CleanupMargin      float64 `yaml:"cleanupMargin"` // 物体超出画布底部该距离后移除
	InitialLightOffset float64 `yaml:"initialLightOffset"`
	StartMessage       string  `yaml:"startMessage"`
	SpeedDisplayFactor float64 `yaml:"speedDisplayFactor"` // 速度到 km/h 显示值的换算
}

// DefaultGameConfig 返回默认配置（与 data/traffic_config.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Road: RoadConfig{
			CanvasWidth:        600,
			CanvasHeight:       800,
			LaneWidth:          120,
			PlayerWidth:        50,
			PlayerHeight:       90,
			PlayerOffsetBottom: 150,
			TreeWidth:          60,
		},
		Physics: PhysicsConfig{
			MaxSpeed:      15,
			Acceleration:  0.05,
			Braking:       1.0,
			Friction:      0.02,
			LaneEase:      0.15,
			DistanceScale: 0.01,
		},
		Spawn: SpawnConfig{
			TreeInterval:   20,
			ObjectInterval: 350,
			MinGap:         50,
			TreeOffset:     -200,
			ObjectOffset:   -200,
			CarOffset:      -300,
			Weights: []SpawnWeight{
				{Type: "TRAFFIC_LIGHT", Weight: 15},
				{Type: "STOP_SIGN", Weight: 10},
				{Type: "SPEED_LIMIT", Weight: 10},
				{Type: "ZEBRA_CROSSING", Weight: 10},
				{Type: "SPEED_BUMP", Weight: 10},
				{Type: "OBSTACLE_CAR", Weight: 45},
			},
			SpeedLimitValues:      []float64{8, 12},
			BumpLimit:             5,
			StationaryCarChance:   0.2,
			CarMinSpeed:           4,
			CarMaxSpeed:           8,
			CarColors:             []string{"#3b82f6", "#22c55e"},
			MinPedestrians:        1,
			MaxPedestrians:        3,
			PedestrianMinSpeed:    0.5,
			PedestrianMaxSpeed:    1.0,
			PedestrianStartGap:    30,
			PedestrianStartSpread: 50,
		},
		Rules: RulesConfig{
			TrafficLight: TrafficLightRules{
				RedTicks:           300,
				YellowToGreenTicks: 90,
				GreenTicks:         400,
				YellowToRedTicks:   120,
				LineOffset:         100,
				WarningDistance:    200,
				WaitWindow:         150,
				RedPenalty:         50,
				YellowPenalty:      10,
				GreenBonus:         20,
				WaitBonus:          0.5,
				WaitBonusInterval:  120,
			},
			StopSign: StopSignRules{
				LineOffset:     50,
				ZoneLength:     300,
				ZoneOvershoot:  20,
				SpeedThreshold: 1.0,
				DwellTicks:     300,
				Penalty:        50,
				Bonus:          50,
			},
			SpeedLimit: SpeedLimitRules{
				LineOffset: 50,
			},
			Speeding: SpeedingRules{
				Tolerance:         1,
				SustainTicks:      60,
				Penalty:           10,
				CompliantBonus:    0.05,
				MinCompliantSpeed: 2,
			},
			SpeedBump: SpeedBumpRules{
				LineOffset:      20,
				WarningDistance: 400,
				WarningSpeed:    5,
				CrossWindow:     20,
				Penalty:         30,
				Bonus:           15,
				Damping:         0.8,
			},
			Zebra: ZebraRules{
				Height:             60,
				ActiveAbove:        -200,
				WalkPhaseStep:      0.2,
				HitOffset:          10,
				HitMargin:          10,
				DangerMargin:       10,
				YieldZone:          100,
				YieldSpeed:         0.5,
				NearRoadMargin:     20,
				PedestrianSentinel: -999,
				FailPenalty:        50,
				YieldBonus:         20,
			},
			Crash: CrashRules{
				Penalty: 50,
			},
		},
		Session: SessionConfig{
			TicksPerSecond:     60,
			GoalDistance:       2000,
			ScoreFloor:         -100,
			MessageDuration:    120,
			CleanupMargin:      200,
			InitialLightOffset: -600,
			StartMessage:       "Drive Safely! Reach 2000m",
			SpeedDisplayFactor: 10,
		},
	}
}

// ParseGameConfig 从 YAML 数据解析配置
// 未出现在 YAML 中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从 YAML 文件加载配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	// 道路
	if cfg.Road.LaneWidth <= 0 || cfg.Road.PlayerWidth <= 0 || cfg.Road.PlayerHeight <= 0 {
		return fmt.Errorf("road dimensions must be positive")
	}
	if cfg.Road.RoadWidth() > cfg.Road.CanvasWidth {
		return fmt.Errorf("road width %.0f exceeds canvas width %.0f", cfg.Road.RoadWidth(), cfg.Road.CanvasWidth)
	}
	if cfg.Road.PlayerWidth > cfg.Road.LaneWidth {
		return fmt.Errorf("player width %.0f exceeds lane width %.0f", cfg.Road.PlayerWidth, cfg.Road.LaneWidth)
	}

	// 物理
	if cfg.Physics.MaxSpeed <= 0 {
		return fmt.Errorf("physics.maxSpeed must be > 0, got %v", cfg.Physics.MaxSpeed)
	}
	if cfg.Physics.Acceleration <= 0 || cfg.Physics.Braking <= 0 || cfg.Physics.Friction < 0 {
		return fmt.Errorf("physics acceleration/braking must be > 0 and friction >= 0")
	}
	if cfg.Physics.LaneEase <= 0 || cfg.Physics.LaneEase > 1 {
		return fmt.Errorf("physics.laneEase must be in (0, 1], got %v", cfg.Physics.LaneEase)
	}

	// 生成
	if cfg.Spawn.TreeInterval < 1 || cfg.Spawn.ObjectInterval < 1 {
		return fmt.Errorf("spawn intervals must be >= 1")
	}
	if len(cfg.Spawn.Weights) == 0 {
		return fmt.Errorf("spawn.weights cannot be empty")
	}
	total := 0
	for _, w := range cfg.Spawn.Weights {
		if !isSpawnableType(w.Type) {
			return fmt.Errorf("spawn.weights: unsupported object type %q", w.Type)
		}
		if w.Weight < 0 {
			return fmt.Errorf("spawn.weights: weight for %s must be >= 0, got %d", w.Type, w.Weight)
		}
		total += w.Weight
	}
	if total == 0 {
		return fmt.Errorf("spawn.weights must contain at least one positive weight")
	}
	if len(cfg.Spawn.SpeedLimitValues) == 0 {
		return fmt.Errorf("spawn.speedLimitValues cannot be empty")
	}
	for _, v := range cfg.Spawn.SpeedLimitValues {
		if v <= 0 || v > cfg.Physics.MaxSpeed {
			return fmt.Errorf("spawn.speedLimitValues: %v out of range (0, %v]", v, cfg.Physics.MaxSpeed)
		}
	}
	if cfg.Spawn.StationaryCarChance < 0 || cfg.Spawn.StationaryCarChance > 1 {
		return fmt.Errorf("spawn.stationaryCarChance must be in [0, 1], got %v", cfg.Spawn.StationaryCarChance)
	}
	if cfg.Spawn.CarMinSpeed < 0 || cfg.Spawn.CarMaxSpeed < cfg.Spawn.CarMinSpeed {
		return fmt.Errorf("spawn car speed range invalid: [%v, %v]", cfg.Spawn.CarMinSpeed, cfg.Spawn.CarMaxSpeed)
	}
	if len(cfg.Spawn.CarColors) == 0 {
		return fmt.Errorf("spawn.carColors cannot be empty")
	}
	for _, c := range cfg.Spawn.CarColors {
		if _, err := ParseHexColor(c); err != nil {
			return fmt.Errorf("spawn.carColors: %w", err)
		}
	}
	if cfg.Spawn.MinPedestrians < 1 || cfg.Spawn.MaxPedestrians < cfg.Spawn.MinPedestrians {
		return fmt.Errorf("spawn pedestrian count range invalid: [%d, %d]", cfg.Spawn.MinPedestrians, cfg.Spawn.MaxPedestrians)
	}
	if cfg.Spawn.PedestrianMinSpeed <= 0 || cfg.Spawn.PedestrianMaxSpeed < cfg.Spawn.PedestrianMinSpeed {
		return fmt.Errorf("spawn pedestrian speed range invalid: [%v, %v]", cfg.Spawn.PedestrianMinSpeed, cfg.Spawn.PedestrianMaxSpeed)
	}

	// 规则
	light := cfg.Rules.TrafficLight
	if light.RedTicks < 1 || light.YellowToGreenTicks < 1 || light.GreenTicks < 1 || light.YellowToRedTicks < 1 {
		return fmt.Errorf("rules.trafficLight dwell ticks must be >= 1")
	}
	if light.WaitBonusInterval < 1 {
		return fmt.Errorf("rules.trafficLight.waitBonusInterval must be >= 1, got %d", light.WaitBonusInterval)
	}
	if cfg.Rules.StopSign.DwellTicks < 1 {
		return fmt.Errorf("rules.stopSign.dwellTicks must be >= 1, got %d", cfg.Rules.StopSign.DwellTicks)
	}
	if cfg.Rules.Speeding.SustainTicks < 1 {
		return fmt.Errorf("rules.speeding.sustainTicks must be >= 1, got %d", cfg.Rules.Speeding.SustainTicks)
	}
	if cfg.Rules.SpeedBump.Damping < 0 || cfg.Rules.SpeedBump.Damping > 1 {
		return fmt.Errorf("rules.speedBump.damping must be in [0, 1], got %v", cfg.Rules.SpeedBump.Damping)
	}

	// 会话
	if cfg.Session.TicksPerSecond < 1 {
		return fmt.Errorf("session.ticksPerSecond must be >= 1, got %d", cfg.Session.TicksPerSecond)
	}
	if cfg.Session.GoalDistance <= 0 {
		return fmt.Errorf("session.goalDistance must be > 0, got %v", cfg.Session.GoalDistance)
	}
	if cfg.Session.ScoreFloor >= 0 {
		return fmt.Errorf("session.scoreFloor must be < 0, got %v", cfg.Session.ScoreFloor)
	}
	if cfg.Session.MessageDuration < 1 {
		return fmt.Errorf("session.messageDuration must be >= 1, got %d", cfg.Session.MessageDuration)
	}

	return nil
}

// isSpawnableType 装饰树由独立节奏生成，不能出现在权重表中
func isSpawnableType(name string) bool {
	switch name {
	case "TRAFFIC_LIGHT", "STOP_SIGN", "SPEED_LIMIT", "ZEBRA_CROSSING", "SPEED_BUMP", "OBSTACLE_CAR":
		return true
	}
	return false
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
