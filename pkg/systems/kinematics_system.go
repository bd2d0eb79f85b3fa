package systems

import (
	"math"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
)

// KinematicsSystem 根据驾驶输入推进玩家的速度和横向位置
type KinematicsSystem struct {
	physics config.PhysicsConfig
	road    config.RoadConfig
}

// NewKinematicsSystem 创建运动学系统
func NewKinematicsSystem(cfg *config.GameConfig) *KinematicsSystem {
	return &KinematicsSystem{
		physics: cfg.Physics,
		road:    cfg.Road,
	}
}

// NewPlayer 返回停在中间车道起点的玩家状态
func (ks *KinematicsSystem) NewPlayer() components.PlayerComponent {
	return components.PlayerComponent{
		Lane:     components.LaneCenter,
		Speed:    0,
		MaxSpeed: ks.physics.MaxSpeed,
		X:        ks.TargetX(components.LaneCenter),
		Y:        ks.road.PlayerY(),
	}
}

// TargetX 车道对应的目标渲染X坐标
func (ks *KinematicsSystem) TargetX(lane components.Lane) float64 {
	return ks.road.LaneX(int(lane))
}

// Update 推进一帧
//
// 参数:
//   - player: 玩家状态（原地修改）
//   - input: 本帧驾驶输入
//
// 返回:
//   - float64: 本帧行驶的距离（米）
func (ks *KinematicsSystem) Update(player *components.PlayerComponent, input components.InputIntent) float64 {
	// 变道是离散的：每次按键只移动一条车道
	if input.Left && player.Lane > components.LaneLeft {
		player.Lane--
	}
	if input.Right && player.Lane < components.LaneRight {
		player.Lane++
	}

	switch {
	case input.Accelerate:
		player.Speed = math.Min(player.Speed+ks.physics.Acceleration, player.MaxSpeed)
	case input.Brake:
		player.Speed = math.Max(player.Speed-ks.physics.Braking, 0)
	case player.Speed > 0:
		player.Speed = math.Max(player.Speed-ks.physics.Friction, 0)
	}

	// 渲染X按固定比例靠近目标，不会越过目标
	targetX := ks.TargetX(player.Lane)
	player.X += (targetX - player.X) * ks.physics.LaneEase

	return player.Speed * ks.physics.DistanceScale
}
