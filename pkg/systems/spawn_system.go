package systems

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/ecs"
)

// spawnBand 权重表展开后的累计区间
type spawnBand struct {
	objectType components.ObjectType
	upper      int // 累计权重上界（不含）
}

// SpawnSystem 在玩家前方程序化生成交通物体和路边装饰树
//
// 两个独立节奏：
//   - 装饰树：固定间隔，随机左右侧
//   - 交通物体：较长间隔，且上一个物体必须已滚动到足够远，避免强制区域重叠
type SpawnSystem struct {
	entityManager *ecs.EntityManager[components.TrafficObject]
	spawn         config.SpawnConfig
	road          config.RoadConfig
	light         config.TrafficLightRules
	stopSign      config.StopSignRules
	rng           *rand.Rand

	bands       []spawnBand
	totalWeight int
	carColors   []color.RGBA

	spawnTimer int // 距上次生成交通物体的帧数
	treeTimer  int // 距上次生成装饰树的帧数
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - em: 交通物体实体管理器
//   - cfg: 已校验的游戏配置
//   - rng: 随机数源（测试中使用固定种子）
func NewSpawnSystem(em *ecs.EntityManager[components.TrafficObject], cfg *config.GameConfig, rng *rand.Rand) *SpawnSystem {
	s := &SpawnSystem{
		entityManager: em,
		spawn:         cfg.Spawn,
		road:          cfg.Road,
		light:         cfg.Rules.TrafficLight,
		stopSign:      cfg.Rules.StopSign,
		rng:           rng,
	}

	for _, w := range cfg.Spawn.Weights {
		objectType, ok := components.ParseObjectType(w.Type)
		if !ok || w.Weight <= 0 {
			continue
		}
		s.totalWeight += w.Weight
		s.bands = append(s.bands, spawnBand{objectType: objectType, upper: s.totalWeight})
	}

	for _, hex := range cfg.Spawn.CarColors {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			log.Printf("[SpawnSystem] Warning: skipping car color %q: %v", hex, err)
			continue
		}
		s.carColors = append(s.carColors, c)
	}
	if len(s.carColors) == 0 {
		s.carColors = []color.RGBA{{R: 0x3b, G: 0x82, B: 0xf6, A: 255}}
	}

	return s
}

// Reset 重置两个生成节奏（新一局开始时调用）
func (s *SpawnSystem) Reset() {
	s.spawnTimer = 0
	s.treeTimer = 0
}

// Update 每帧调用一次，决定是否生成新物体
func (s *SpawnSystem) Update() {
	s.spawnTimer++
	s.treeTimer++

	if s.treeTimer > s.spawn.TreeInterval {
		s.SpawnTree()
		s.treeTimer = 0
	}

	if s.spawnTimer <= s.spawn.ObjectInterval {
		return
	}

	// 上一个交通物体尚未离开生成线附近时推迟到下一帧，计时器不重置
	last, found := s.entityManager.Last(func(o components.TrafficObject) bool {
		return o.Type() != components.ObjectTree
	})
	if found && last.Base().Y <= s.spawn.MinGap {
		return
	}

	objectType := s.pickType()
	offset := s.spawn.ObjectOffset
	if objectType == components.ObjectObstacleCar {
		offset = s.spawn.CarOffset
	}
	s.SpawnObject(objectType, offset)
	s.spawnTimer = 0
}

// pickType 按权重表随机选择物体类型
func (s *SpawnSystem) pickType() components.ObjectType {
	roll := s.rng.Intn(s.totalWeight)
	for _, band := range s.bands {
		if roll < band.upper {
			return band.objectType
		}
	}
	return s.bands[len(s.bands)-1].objectType
}

// SpawnObject 创建指定类型的交通物体并登记到实体管理器
//
// 参数:
//   - objectType: 物体类型（不含装饰树）
//   - offset: 初始Y坐标（负值表示在画布上方）
//
// 返回:
//   - components.TrafficObject: 新创建的物体
func (s *SpawnSystem) SpawnObject(objectType components.ObjectType, offset float64) components.TrafficObject {
	id := s.entityManager.CreateEntity()
	base := components.ObjectBase{ID: id, Y: offset}

	var obj components.TrafficObject
	switch objectType {
	case components.ObjectTrafficLight:
		obj = &components.TrafficLight{
			ObjectBase: base,
			State:      components.LightRed,
			NextState:  components.LightGreen,
			Timer:      s.light.RedTicks,
		}
	case components.ObjectStopSign:
		obj = &components.StopSign{
			ObjectBase: base,
			StopTimer:  s.stopSign.DwellTicks,
			HasStopped: false,
		}
	case components.ObjectSpeedLimit:
		values := s.spawn.SpeedLimitValues
		obj = &components.SpeedLimitSign{
			ObjectBase: base,
			Limit:      values[s.rng.Intn(len(values))],
		}
	case components.ObjectSpeedBump:
		obj = &components.SpeedBump{
			ObjectBase: base,
			Limit:      s.spawn.BumpLimit,
		}
	case components.ObjectZebraCrossing:
		obj = &components.ZebraCrossing{
			ObjectBase:  base,
			Pedestrians: s.newPedestrians(id),
		}
	case components.ObjectObstacleCar:
		obj = s.newObstacleCar(base)
	default:
		obj = &components.Tree{ObjectBase: base, X: s.treeX()}
	}

	s.entityManager.AddEntity(id, obj)
	log.Printf("[SpawnSystem] Spawned %s id=%d at y=%.0f", objectType, id, offset)
	return obj
}

// SpawnTree 在道路左侧或右侧生成一棵装饰树
func (s *SpawnSystem) SpawnTree() *components.Tree {
	id := s.entityManager.CreateEntity()
	tree := &components.Tree{
		ObjectBase: components.ObjectBase{ID: id, Y: s.spawn.TreeOffset},
		X:          s.treeX(),
	}
	s.entityManager.AddEntity(id, tree)
	return tree
}

// treeX 随机选择路边一侧的X坐标，保证整棵树落在草地上
func (s *SpawnSystem) treeX() float64 {
	roadX := s.road.RoadX()
	roadRight := roadX + s.road.RoadWidth()
	if s.rng.Float64() > 0.5 {
		return s.rng.Float64() * (roadX - s.road.TreeWidth)
	}
	return roadRight + s.rng.Float64()*(s.road.CanvasWidth-roadRight-s.road.TreeWidth)
}

// newPedestrians 生成斑马线上的行人，每人从道路某一侧的路外出发
func (s *SpawnSystem) newPedestrians(crossingID ecs.EntityID) []components.Pedestrian {
	count := s.spawn.MinPedestrians + s.rng.Intn(s.spawn.MaxPedestrians-s.spawn.MinPedestrians+1)
	roadX := s.road.RoadX()
	roadRight := roadX + s.road.RoadWidth()

	peds := make([]components.Pedestrian, 0, count)
	for i := 0; i < count; i++ {
		direction := -1
		if s.rng.Float64() > 0.5 {
			direction = 1
		}

		startGap := s.spawn.PedestrianStartGap + s.rng.Float64()*s.spawn.PedestrianStartSpread
		x := roadRight + startGap
		if direction == 1 {
			x = roadX - startGap
		}

		peds = append(peds, components.Pedestrian{
			ID:           components.PedestrianID(crossingID, i),
			X:            x,
			Speed:        s.spawn.PedestrianMinSpeed + s.rng.Float64()*(s.spawn.PedestrianMaxSpeed-s.spawn.PedestrianMinSpeed),
			Direction:    direction,
			WalkingPhase: 0,
		})
	}
	return peds
}

// newObstacleCar 随机车道、随机静止或慢速行驶、随机颜色
func (s *SpawnSystem) newObstacleCar(base components.ObjectBase) *components.ObstacleCar {
	lane := components.Lane(s.rng.Intn(components.LaneCount))

	speed := 0.0
	if s.rng.Float64() >= s.spawn.StationaryCarChance {
		speed = s.spawn.CarMinSpeed + s.rng.Float64()*(s.spawn.CarMaxSpeed-s.spawn.CarMinSpeed)
	}

	return &components.ObstacleCar{
		ObjectBase: base,
		Lane:       lane,
		Speed:      speed,
		Color:      s.carColors[s.rng.Intn(len(s.carColors))],
	}
}
