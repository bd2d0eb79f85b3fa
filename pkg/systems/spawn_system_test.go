package systems

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/ecs"
)

func newTestSpawner(cfg *config.GameConfig, seed int64) (*SpawnSystem, *ecs.EntityManager[components.TrafficObject]) {
	em := ecs.NewEntityManager[components.TrafficObject]()
	return NewSpawnSystem(em, cfg, rand.New(rand.NewSource(seed))), em
}

func countObjects(em *ecs.EntityManager[components.TrafficObject]) (trees, others int) {
	for _, o := range em.Entities() {
		if o.Type() == components.ObjectTree {
			trees++
		} else {
			others++
		}
	}
	return trees, others
}

func TestSpawnTreeCadence(t *testing.T) {
	s, em := newTestSpawner(config.DefaultGameConfig(), 1)

	for i := 0; i < 20; i++ {
		s.Update()
	}
	if trees, _ := countObjects(em); trees != 0 {
		t.Fatalf("trees after 20 ticks: got %d, want 0", trees)
	}

	s.Update()
	if trees, _ := countObjects(em); trees != 1 {
		t.Fatalf("trees after 21 ticks: got %d, want 1", trees)
	}

	for i := 0; i < 21; i++ {
		s.Update()
	}
	if trees, _ := countObjects(em); trees != 2 {
		t.Errorf("trees after 42 ticks: got %d, want 2", trees)
	}
}

func TestSpawnObjectCadence(t *testing.T) {
	s, em := newTestSpawner(config.DefaultGameConfig(), 1)

	for i := 0; i < 350; i++ {
		s.Update()
	}
	if _, others := countObjects(em); others != 0 {
		t.Fatalf("objects after 350 ticks: got %d, want 0", others)
	}

	s.Update()
	if _, others := countObjects(em); others != 1 {
		t.Fatalf("objects after 351 ticks: got %d, want 1", others)
	}

	last, _ := em.Last(func(o components.TrafficObject) bool { return o.Type() != components.ObjectTree })
	wantY := -200.0
	if last.Type() == components.ObjectObstacleCar {
		wantY = -300
	}
	if last.Base().Y != wantY {
		t.Errorf("spawn Y for %v: got %v, want %v", last.Type(), last.Base().Y, wantY)
	}
}

func TestSpawnDeferredUntilGap(t *testing.T) {
	s, em := newTestSpawner(config.DefaultGameConfig(), 1)
	blocker := s.SpawnObject(components.ObjectStopSign, 0)

	for i := 0; i < 400; i++ {
		s.Update()
	}
	if _, others := countObjects(em); others != 1 {
		t.Fatalf("spawn must wait while last object is near the top: got %d objects", others)
	}

	// 间距满足后下一帧立即生成，计时器未被重置
	blocker.Base().Y = 51
	s.Update()
	if _, others := countObjects(em); others != 2 {
		t.Errorf("objects after gap cleared: got %d, want 2", others)
	}
}

func TestSpawnIgnoresTreesForGap(t *testing.T) {
	s, em := newTestSpawner(config.DefaultGameConfig(), 1)
	s.SpawnObject(components.ObjectStopSign, 100)
	s.SpawnTree()

	for i := 0; i < 351; i++ {
		s.Update()
	}
	if _, others := countObjects(em); others != 2 {
		t.Errorf("tree must not block spawning: got %d objects, want 2", others)
	}
}

func TestPickTypeSingleWeight(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Spawn.Weights = []config.SpawnWeight{
		{Type: "STOP_SIGN", Weight: 1},
		{Type: "OBSTACLE_CAR", Weight: 0},
	}
	s, _ := newTestSpawner(cfg, 7)

	for i := 0; i < 100; i++ {
		if got := s.pickType(); got != components.ObjectStopSign {
			t.Fatalf("pick %d: got %v, want STOP_SIGN", i, got)
		}
	}
}

func TestPickTypeDistribution(t *testing.T) {
	s, _ := newTestSpawner(config.DefaultGameConfig(), 42)

	const n = 20000
	counts := make(map[components.ObjectType]int)
	for i := 0; i < n; i++ {
		counts[s.pickType()]++
	}

	want := map[components.ObjectType]float64{
		components.ObjectTrafficLight:  0.15,
		components.ObjectStopSign:      0.10,
		components.ObjectSpeedLimit:    0.10,
		components.ObjectZebraCrossing: 0.10,
		components.ObjectSpeedBump:     0.10,
		components.ObjectObstacleCar:   0.45,
	}
	for objectType, p := range want {
		got := float64(counts[objectType]) / n
		if got < p-0.02 || got > p+0.02 {
			t.Errorf("%v frequency: got %.3f, want %.2f±0.02", objectType, got, p)
		}
	}
	if counts[components.ObjectTree] != 0 {
		t.Errorf("trees must never be picked, got %d", counts[components.ObjectTree])
	}
}

func TestSpawnObjectInitialState(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, em := newTestSpawner(cfg, 3)

	light := s.SpawnObject(components.ObjectTrafficLight, -600).(*components.TrafficLight)
	if light.State != components.LightRed || light.NextState != components.LightGreen || light.Timer != 300 {
		t.Errorf("light: got %v->%v timer %d, want RED->GREEN timer 300", light.State, light.NextState, light.Timer)
	}
	if light.Y != -600 {
		t.Errorf("light Y: got %v, want -600", light.Y)
	}

	stop := s.SpawnObject(components.ObjectStopSign, -200).(*components.StopSign)
	if stop.StopTimer != 300 || stop.HasStopped {
		t.Errorf("stop sign: got timer %d stopped %v, want 300 false", stop.StopTimer, stop.HasStopped)
	}

	for i := 0; i < 50; i++ {
		limit := s.SpawnObject(components.ObjectSpeedLimit, -200).(*components.SpeedLimitSign)
		if limit.Limit != 8 && limit.Limit != 12 {
			t.Fatalf("speed limit: got %v, want 8 or 12", limit.Limit)
		}
	}

	bump := s.SpawnObject(components.ObjectSpeedBump, -200).(*components.SpeedBump)
	if bump.Limit != 5 {
		t.Errorf("bump limit: got %v, want 5", bump.Limit)
	}

	if em.Count() != 53 {
		t.Errorf("Count: got %d, want 53", em.Count())
	}
}

func TestSpawnZebraPedestrians(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, _ := newTestSpawner(cfg, 5)
	roadX := cfg.Road.RoadX()
	roadRight := roadX + cfg.Road.RoadWidth()

	for i := 0; i < 50; i++ {
		z := s.SpawnObject(components.ObjectZebraCrossing, -200).(*components.ZebraCrossing)
		if n := len(z.Pedestrians); n < 1 || n > 3 {
			t.Fatalf("pedestrian count: got %d, want 1..3", n)
		}
		for j, p := range z.Pedestrians {
			if p.ID != components.PedestrianID(z.ID, j) {
				t.Errorf("pedestrian ID: got %q, want %q", p.ID, components.PedestrianID(z.ID, j))
			}
			if p.Speed < 0.5 || p.Speed > 1.0 {
				t.Errorf("pedestrian speed: got %v, want 0.5..1.0", p.Speed)
			}
			switch p.Direction {
			case 1:
				if p.X >= roadX {
					t.Errorf("eastbound pedestrian must start left of road: got %v", p.X)
				}
			case -1:
				if p.X <= roadRight {
					t.Errorf("westbound pedestrian must start right of road: got %v", p.X)
				}
			default:
				t.Errorf("Direction: got %d, want ±1", p.Direction)
			}
		}
	}
}

func TestSpawnObstacleCar(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, _ := newTestSpawner(cfg, 9)

	blue := color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 255}
	green := color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 255}

	stationary := 0
	for i := 0; i < 500; i++ {
		car := s.SpawnObject(components.ObjectObstacleCar, -300).(*components.ObstacleCar)
		if car.Lane < components.LaneLeft || car.Lane > components.LaneRight {
			t.Fatalf("lane out of range: %v", car.Lane)
		}
		if car.Speed == 0 {
			stationary++
		} else if car.Speed < 4 || car.Speed > 8 {
			t.Fatalf("car speed: got %v, want 0 or 4..8", car.Speed)
		}
		if car.Color != blue && car.Color != green {
			t.Fatalf("car color: got %v", car.Color)
		}
	}
	if stationary < 50 || stationary > 150 {
		t.Errorf("stationary cars: got %d of 500, want about 100", stationary)
	}
}

func TestSpawnTreeOnGrass(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s, _ := newTestSpawner(cfg, 11)
	roadX := cfg.Road.RoadX()
	roadRight := roadX + cfg.Road.RoadWidth()

	for i := 0; i < 200; i++ {
		tree := s.SpawnTree()
		left := tree.X >= 0 && tree.X+cfg.Road.TreeWidth <= roadX
		right := tree.X >= roadRight && tree.X+cfg.Road.TreeWidth <= cfg.Road.CanvasWidth
		if !left && !right {
			t.Fatalf("tree X %v overlaps the road", tree.X)
		}
		if tree.Y != -200 {
			t.Fatalf("tree Y: got %v, want -200", tree.Y)
		}
	}
}

func TestSpawnReset(t *testing.T) {
	s, em := newTestSpawner(config.DefaultGameConfig(), 1)
	for i := 0; i < 340; i++ {
		s.Update()
	}
	s.Reset()
	em.Clear()
	for i := 0; i < 20; i++ {
		s.Update()
	}
	if em.Count() != 0 {
		t.Errorf("Count after reset: got %d, want 0", em.Count())
	}
}
