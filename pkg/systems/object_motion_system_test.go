package systems

import (
	"testing"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
)

func TestAdvanceScrollsWithPlayer(t *testing.T) {
	ms := NewObjectMotionSystem(config.DefaultGameConfig())

	sign := &components.StopSign{ObjectBase: components.ObjectBase{Y: -200}}
	ms.Advance(sign, 7.5)
	if sign.Y != -192.5 {
		t.Errorf("stop sign Y: got %v, want -192.5", sign.Y)
	}

	tree := &components.Tree{ObjectBase: components.ObjectBase{Y: 10}}
	ms.Advance(tree, 0)
	if tree.Y != 10 {
		t.Errorf("tree Y at rest: got %v, want 10", tree.Y)
	}
}

func TestAdvanceObstacleCarRelativeSpeed(t *testing.T) {
	tests := []struct {
		name        string
		playerSpeed float64
		carSpeed    float64
		wantY       float64
	}{
		{"stationary car", 10, 0, -290},
		{"slower car approaches", 10, 4, -294},
		{"faster car pulls away", 2, 6, -304},
		{"same speed", 5, 5, -300},
	}

	ms := NewObjectMotionSystem(config.DefaultGameConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := &components.ObstacleCar{ObjectBase: components.ObjectBase{Y: -300}, Speed: tt.carSpeed}
			ms.Advance(car, tt.playerSpeed)
			if car.Y != tt.wantY {
				t.Errorf("Y: got %v, want %v", car.Y, tt.wantY)
			}
		})
	}
}

func TestTrafficLightCycle(t *testing.T) {
	ms := NewObjectMotionSystem(config.DefaultGameConfig())
	light := &components.TrafficLight{
		State:     components.LightRed,
		NextState: components.LightGreen,
		Timer:     300,
	}

	steps := []struct {
		ticks     int
		wantState components.LightState
		wantNext  components.LightState
		wantTimer int
	}{
		{300, components.LightYellow, components.LightGreen, 90},
		{90, components.LightGreen, components.LightYellow, 400},
		{400, components.LightYellow, components.LightRed, 120},
		{120, components.LightRed, components.LightGreen, 300},
	}

	for i, step := range steps {
		for tick := 0; tick < step.ticks-1; tick++ {
			ms.Advance(light, 0)
		}
		if light.Timer != 1 {
			t.Fatalf("step %d: timer before transition: got %d, want 1", i, light.Timer)
		}
		ms.Advance(light, 0)

		if light.State != step.wantState {
			t.Errorf("step %d State: got %v, want %v", i, light.State, step.wantState)
		}
		if light.NextState != step.wantNext {
			t.Errorf("step %d NextState: got %v, want %v", i, light.NextState, step.wantNext)
		}
		if light.Timer != step.wantTimer {
			t.Errorf("step %d Timer: got %d, want %d", i, light.Timer, step.wantTimer)
		}
	}
}

func TestPedestriansWalkOnlyNearScreen(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		speed    float64
		wantWalk bool
	}{
		{"far above", -400, 0, false},
		{"at activation edge", -200, 0, false},
		{"scrolls into range", -250, 100, true},
		{"on screen", 300, 0, true},
		{"past bottom", 800, 0, false},
	}

	ms := NewObjectMotionSystem(config.DefaultGameConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := &components.ZebraCrossing{
				ObjectBase: components.ObjectBase{Y: tt.startY},
				Pedestrians: []components.Pedestrian{
					{X: 100, Speed: 0.5, Direction: 1},
					{X: 500, Speed: 1, Direction: -1},
				},
			}
			ms.Advance(z, tt.speed)

			want0, want1, wantPhase := 100.0, 500.0, 0.0
			if tt.wantWalk {
				want0, want1, wantPhase = 100.5, 499, 0.2
			}
			if z.Pedestrians[0].X != want0 {
				t.Errorf("pedestrian 0 X: got %v, want %v", z.Pedestrians[0].X, want0)
			}
			if z.Pedestrians[1].X != want1 {
				t.Errorf("pedestrian 1 X: got %v, want %v", z.Pedestrians[1].X, want1)
			}
			if z.Pedestrians[0].WalkingPhase != wantPhase {
				t.Errorf("WalkingPhase: got %v, want %v", z.Pedestrians[0].WalkingPhase, wantPhase)
			}
		})
	}
}
