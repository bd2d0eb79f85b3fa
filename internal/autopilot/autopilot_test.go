package autopilot

import (
	"math/rand"
	"testing"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
)

func baseSnapshot(cfg *config.GameConfig, speed float64) game.Snapshot {
	return game.Snapshot{
		Player: components.PlayerComponent{
			Lane:     components.LaneCenter,
			Speed:    speed,
			MaxSpeed: cfg.Physics.MaxSpeed,
			X:        cfg.Road.LaneX(int(components.LaneCenter)),
			Y:        cfg.Road.PlayerY(),
		},
		ZoneLimit: cfg.Physics.MaxSpeed,
	}
}

func TestDecideCruise(t *testing.T) {
	cfg := config.DefaultGameConfig()
	d := New(cfg)

	if got := d.Decide(baseSnapshot(cfg, 0)); !got.Accelerate || got.Brake {
		t.Errorf("from rest: got %+v, want accelerate", got)
	}

	snap := baseSnapshot(cfg, 10)
	snap.ZoneLimit = 8
	if got := d.Decide(snap); !got.Brake {
		t.Errorf("above zone limit: got %+v, want brake", got)
	}
}

func TestDecideStopsForRedLight(t *testing.T) {
	cfg := config.DefaultGameConfig()
	d := New(cfg)

	snap := baseSnapshot(cfg, 10)
	// 停止线在车头前 60 像素
	lineY := snap.Player.Y - 60
	snap.Objects = []components.TrafficObject{
		&components.TrafficLight{ObjectBase: components.ObjectBase{Y: lineY - cfg.Rules.TrafficLight.LineOffset}, State: components.LightRed},
	}

	if got := d.Decide(snap); !got.Brake {
		t.Errorf("red light ahead: got %+v, want brake", got)
	}

	snap.Objects[0].(*components.TrafficLight).State = components.LightGreen
	if got := d.Decide(snap); got.Brake {
		t.Errorf("green light ahead: got %+v, want no brake", got)
	}
}

func TestDecideStopSign(t *testing.T) {
	cfg := config.DefaultGameConfig()
	d := New(cfg)

	snap := baseSnapshot(cfg, 0)
	sign := &components.StopSign{ObjectBase: components.ObjectBase{Y: snap.Player.Y - 20 - cfg.Rules.StopSign.LineOffset}}
	snap.Objects = []components.TrafficObject{sign}

	if got := d.Decide(snap); got.Accelerate || got.Brake {
		t.Errorf("waiting at stop sign: got %+v, want idle", got)
	}

	sign.HasStopped = true
	if got := d.Decide(snap); !got.Accelerate {
		t.Errorf("after full stop: got %+v, want accelerate", got)
	}
}

func TestDecideSlowsForBump(t *testing.T) {
	cfg := config.DefaultGameConfig()
	d := New(cfg)

	snap := baseSnapshot(cfg, 8)
	snap.Objects = []components.TrafficObject{
		&components.SpeedBump{ObjectBase: components.ObjectBase{Y: snap.Player.Y - 200}, Limit: 5},
	}
	if got := d.Decide(snap); !got.Brake {
		t.Errorf("bump ahead at speed 8: got %+v, want brake", got)
	}
}

func TestDecideYieldsToPedestrians(t *testing.T) {
	cfg := config.DefaultGameConfig()
	d := New(cfg)

	snap := baseSnapshot(cfg, 5)
	dangerEnd := snap.Player.Y - 40
	crossing := &components.ZebraCrossing{
		ObjectBase:  components.ObjectBase{Y: dangerEnd - cfg.Rules.Zebra.Height - cfg.Rules.Zebra.DangerMargin},
		Pedestrians: []components.Pedestrian{{X: cfg.Road.RoadX() + 100}},
	}
	snap.Objects = []components.TrafficObject{crossing}

	if got := d.Decide(snap); !got.Brake {
		t.Errorf("pedestrian on road: got %+v, want brake", got)
	}

	crossing.Pedestrians[0].X = -999
	if got := d.Decide(snap); got.Brake {
		t.Errorf("crossing clear: got %+v, want no brake", got)
	}
}

func TestDecideAvoidsCarAhead(t *testing.T) {
	cfg := config.DefaultGameConfig()
	d := New(cfg)

	snap := baseSnapshot(cfg, 10)
	ahead := snap.Player.Y - cfg.Road.PlayerHeight - 100
	snap.Objects = []components.TrafficObject{
		&components.ObstacleCar{ObjectBase: components.ObjectBase{Y: ahead}, Lane: components.LaneCenter},
	}
	if got := d.Decide(snap); !got.Left {
		t.Errorf("car ahead in center lane: got %+v, want left", got)
	}

	snap.Objects = append(snap.Objects,
		&components.ObstacleCar{ObjectBase: components.ObjectBase{Y: ahead}, Lane: components.LaneLeft})
	if got := d.Decide(snap); !got.Right {
		t.Errorf("left lane blocked too: got %+v, want right", got)
	}

	snap.Objects = append(snap.Objects,
		&components.ObstacleCar{ObjectBase: components.ObjectBase{Y: ahead}, Lane: components.LaneRight})
	if got := d.Decide(snap); !got.Brake || got.Left || got.Right {
		t.Errorf("all lanes blocked: got %+v, want brake only", got)
	}
}

func TestStoppingDistance(t *testing.T) {
	d := New(config.DefaultGameConfig())

	tests := []struct {
		speed, want float64
	}{
		{0, 0},
		{1, 1},
		{3, 6}, // 3 + 2 + 1
		{15, 120},
	}
	for _, tt := range tests {
		if got := d.stoppingDistance(tt.speed); got != tt.want {
			t.Errorf("stoppingDistance(%v) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

// TestAutopilotRunEnds 自动驾驶跑完一局必定进入结束状态且只记录一次
func TestAutopilotRunEnds(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Session.GoalDistance = 40

	board := game.NewGdataScoreboard(nil)
	session := game.NewSession(cfg, board, rand.New(rand.NewSource(3)))
	if err := session.Login("robot"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := session.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	d := New(cfg)
	for i := 0; i < 60*60*5 && session.State() == game.StatePlaying; i++ {
		session.Tick(d.Decide(session.Snapshot()))
	}

	if session.State() != game.StateGameOver {
		t.Fatalf("run did not finish, state %s", session.State())
	}
	if session.Report() == nil {
		t.Fatal("finished run should have a report")
	}
	if users := board.Users(); len(users) != 1 || users[0].Name != "robot" {
		t.Errorf("scoreboard: got %+v", users)
	}
}
