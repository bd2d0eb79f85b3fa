package game

import (
	"testing"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
	"github.com/google/uuid"
)

func TestGameOverHeadline(t *testing.T) {
	tests := []struct {
		name        string
		reason      GameOverReason
		infractions components.Infractions
		want        string
		perfect     bool
	}{
		{"clean win", ReasonWin, components.Infractions{}, "PERFECT RUN!", true},
		{"win with violations", ReasonWin, components.Infractions{Speeding: 1}, "COURSE COMPLETED!", false},
		{"crash", ReasonCrash, components.Infractions{Crashes: 1}, "CRASHED!", false},
		{"pedestrian", ReasonPedestrianStrike, components.Infractions{Pedestrians: 1}, "LICENSE REVOKED!", false},
		{"score floor", ReasonScoreFloor, components.Infractions{RedLights: 3}, "TOO MANY VIOLATIONS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := components.GameMetrics{Score: 42, Distance: 2000, Infractions: tt.infractions}
			r := newGameOverReport(uuid.New(), "Alice", tt.reason, metrics)
			if r.Headline != tt.want {
				t.Errorf("Headline: got %q, want %q", r.Headline, tt.want)
			}
			if r.Perfect != tt.perfect {
				t.Errorf("Perfect: got %v, want %v", r.Perfect, tt.perfect)
			}
			if r.Score != 42 || r.PlayerName != "Alice" {
				t.Errorf("report: got %+v", r)
			}
		})
	}
}

func TestGameOverReportLines(t *testing.T) {
	r := newGameOverReport(uuid.Nil, "", ReasonScoreFloor, components.GameMetrics{
		Infractions: components.Infractions{RedLights: 1, StopSigns: 2, Speeding: 3, Bumps: 4, Pedestrians: 5, Crashes: 6},
	})

	lines := r.Lines()
	if len(lines) != 6 {
		t.Fatalf("Lines: got %d, want 6", len(lines))
	}
	for i, line := range lines {
		if line.Count != i+1 {
			t.Errorf("line %d (%s): got %d, want %d", i, line.Label, line.Count, i+1)
		}
	}
}
