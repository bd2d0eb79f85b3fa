package systems

import (
	"math"
	"testing"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"pgregory.net/rapid"
)

const floatEpsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEpsilon
}

func TestNewPlayer(t *testing.T) {
	ks := NewKinematicsSystem(config.DefaultGameConfig())
	p := ks.NewPlayer()

	if p.Lane != components.LaneCenter {
		t.Errorf("Lane: got %v, want %v", p.Lane, components.LaneCenter)
	}
	if p.Speed != 0 {
		t.Errorf("Speed: got %v, want 0", p.Speed)
	}
	if p.X != 275 {
		t.Errorf("X: got %v, want 275", p.X)
	}
	if p.Y != 650 {
		t.Errorf("Y: got %v, want 650", p.Y)
	}
	if p.MaxSpeed != 15 {
		t.Errorf("MaxSpeed: got %v, want 15", p.MaxSpeed)
	}
}

func TestKinematicsSpeed(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		input components.InputIntent
		want  float64
	}{
		{"accelerate from rest", 0, components.InputIntent{Accelerate: true}, 0.05},
		{"accelerate capped at max", 14.98, components.InputIntent{Accelerate: true}, 15},
		{"brake", 5, components.InputIntent{Brake: true}, 4},
		{"brake floors at zero", 0.5, components.InputIntent{Brake: true}, 0},
		{"friction", 1, components.InputIntent{}, 0.98},
		{"friction floors at zero", 0.01, components.InputIntent{}, 0},
		{"rest stays at rest", 0, components.InputIntent{}, 0},
		{"accelerate wins over brake", 1, components.InputIntent{Accelerate: true, Brake: true}, 1.05},
	}

	ks := NewKinematicsSystem(config.DefaultGameConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ks.NewPlayer()
			p.Speed = tt.speed
			ks.Update(&p, tt.input)
			if !almostEqual(p.Speed, tt.want) {
				t.Errorf("Speed: got %v, want %v", p.Speed, tt.want)
			}
		})
	}
}

func TestAccelerateFromRestReachesCap(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ks := NewKinematicsSystem(cfg)
	// 默认 0.05/帧，300 帧恰好达到上限 15
	const tolerance = 1e-9

	for _, n := range []int{1, 20, 150, 299, 300, 301, 600} {
		p := ks.NewPlayer()
		for i := 0; i < n; i++ {
			ks.Update(&p, components.InputIntent{Accelerate: true})
		}
		want := math.Min(cfg.Physics.MaxSpeed, float64(n)*cfg.Physics.Acceleration)
		if math.Abs(p.Speed-want) > tolerance {
			t.Errorf("after %d ticks: got %v, want %v", n, p.Speed, want)
		}
	}
}

func TestAccelerateFromRestProperty(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ks := NewKinematicsSystem(cfg)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 1000).Draw(t, "ticks")
		p := ks.NewPlayer()
		for i := 0; i < n; i++ {
			ks.Update(&p, components.InputIntent{Accelerate: true})
		}
		want := math.Min(cfg.Physics.MaxSpeed, float64(n)*cfg.Physics.Acceleration)
		if math.Abs(p.Speed-want) > 1e-9 {
			t.Fatalf("after %d ticks: got %v, want %v", n, p.Speed, want)
		}
	})
}

func TestKinematicsDistance(t *testing.T) {
	ks := NewKinematicsSystem(config.DefaultGameConfig())
	p := ks.NewPlayer()
	p.Speed = 10

	got := ks.Update(&p, components.InputIntent{Accelerate: true})
	if !almostEqual(got, 0.1005) {
		t.Errorf("distance: got %v, want 0.1005", got)
	}
}

func TestKinematicsLaneChange(t *testing.T) {
	tests := []struct {
		name  string
		start components.Lane
		input components.InputIntent
		want  components.Lane
	}{
		{"left", components.LaneCenter, components.InputIntent{Left: true}, components.LaneLeft},
		{"right", components.LaneCenter, components.InputIntent{Right: true}, components.LaneRight},
		{"left at edge", components.LaneLeft, components.InputIntent{Left: true}, components.LaneLeft},
		{"right at edge", components.LaneRight, components.InputIntent{Right: true}, components.LaneRight},
		{"both cancel", components.LaneCenter, components.InputIntent{Left: true, Right: true}, components.LaneCenter},
		{"both at left edge", components.LaneLeft, components.InputIntent{Left: true, Right: true}, components.LaneCenter},
	}

	ks := NewKinematicsSystem(config.DefaultGameConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ks.NewPlayer()
			p.Lane = tt.start
			ks.Update(&p, tt.input)
			if p.Lane != tt.want {
				t.Errorf("Lane: got %v, want %v", p.Lane, tt.want)
			}
		})
	}
}

func TestKinematicsEasing(t *testing.T) {
	ks := NewKinematicsSystem(config.DefaultGameConfig())
	p := ks.NewPlayer()

	ks.Update(&p, components.InputIntent{Left: true})
	// 275 + (155 - 275) * 0.15
	if !almostEqual(p.X, 257) {
		t.Fatalf("X after one frame: got %v, want 257", p.X)
	}

	target := ks.TargetX(components.LaneLeft)
	prev := p.X
	for i := 0; i < 300; i++ {
		ks.Update(&p, components.InputIntent{})
		if p.X < target {
			t.Fatalf("frame %d: X overshot target: got %v, target %v", i, p.X, target)
		}
		if p.X > prev {
			t.Fatalf("frame %d: X moved away from target: %v -> %v", i, prev, p.X)
		}
		prev = p.X
	}
	if math.Abs(p.X-target) > 0.01 {
		t.Errorf("X after settling: got %v, want ~%v", p.X, target)
	}
}

func TestKinematicsBoundsProperty(t *testing.T) {
	ks := NewKinematicsSystem(config.DefaultGameConfig())
	minX := ks.TargetX(components.LaneLeft)
	maxX := ks.TargetX(components.LaneRight)

	rapid.Check(t, func(t *rapid.T) {
		inputs := rapid.SliceOfN(rapid.IntRange(0, 15), 1, 400).Draw(t, "inputs")
		p := ks.NewPlayer()
		for i, bits := range inputs {
			in := components.InputIntent{
				Left:       bits&1 != 0,
				Right:      bits&2 != 0,
				Accelerate: bits&4 != 0,
				Brake:      bits&8 != 0,
			}
			dist := ks.Update(&p, in)
			if p.Speed < 0 || p.Speed > p.MaxSpeed {
				t.Fatalf("frame %d: speed out of range: %v", i, p.Speed)
			}
			if dist < 0 {
				t.Fatalf("frame %d: negative distance %v", i, dist)
			}
			if p.Lane < components.LaneLeft || p.Lane > components.LaneRight {
				t.Fatalf("frame %d: lane out of range: %v", i, p.Lane)
			}
			if p.X < minX-floatEpsilon || p.X > maxX+floatEpsilon {
				t.Fatalf("frame %d: X out of road: %v", i, p.X)
			}
		}
	})
}
