package game

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{AppName: "traffic_runner_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// fixedClock 每次调用前进一分钟
func fixedClock() func() time.Time {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", true},
		{"   ", true},
		{"Alice", false},
		{" Alice ", false},
		{"driver.one@example.com", false},
		{"Mr Smith-Jones_2", false},
		{strings.Repeat("x", 20), false},
		{strings.Repeat("x", 21), true},
		{"semi;colon", true},
		{"名字", true},
	}

	for _, tt := range tests {
		err := ValidatePlayerName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePlayerName(%q): got %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestScoreboardDegradedMode(t *testing.T) {
	sb := NewGdataScoreboard(nil)
	sb.now = fixedClock()

	id, err := sb.Identify("  Alice ")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if id.Name != "Alice" {
		t.Errorf("Name: got %q, want Alice", id.Name)
	}

	steps := []struct {
		score float64
		want  int
	}{
		{123.7, 123},
		{50, 123},
		{-20, 123},
		{456.2, 456},
	}
	for _, step := range steps {
		users, err := sb.RecordScore(id, step.score, uuid.New())
		if err != nil {
			t.Fatalf("RecordScore: %v", err)
		}
		if users[0].HighScore != step.want {
			t.Errorf("after %v: HighScore got %d, want %d", step.score, users[0].HighScore, step.want)
		}
	}
}

func TestScoreboardNegativeScoreKeepsZero(t *testing.T) {
	sb := NewGdataScoreboard(nil)
	id, _ := sb.Identify("Bob")

	users, _ := sb.RecordScore(id, -999, uuid.New())
	if users[0].HighScore != 0 {
		t.Errorf("HighScore: got %d, want 0", users[0].HighScore)
	}
}

func TestScoreboardIdentifyTouchesExisting(t *testing.T) {
	sb := NewGdataScoreboard(nil)
	sb.now = fixedClock()

	sb.Identify("Alice")
	first := sb.Users()[0].LastPlayed
	sb.Identify("Alice")

	users := sb.Users()
	if len(users) != 1 {
		t.Fatalf("Users: got %d, want 1", len(users))
	}
	if !users[0].LastPlayed.After(first) {
		t.Errorf("LastPlayed not updated: %v -> %v", first, users[0].LastPlayed)
	}
}

func TestScoreboardOrdering(t *testing.T) {
	sb := NewGdataScoreboard(nil)
	sb.now = fixedClock()

	for _, name := range []string{"low", "high", "mid", "mid2"} {
		sb.Identify(name)
	}
	sb.RecordScore(PlayerIdentity{"low"}, 10, uuid.New())
	sb.RecordScore(PlayerIdentity{"high"}, 900, uuid.New())
	sb.RecordScore(PlayerIdentity{"mid"}, 300, uuid.New())
	sb.RecordScore(PlayerIdentity{"mid2"}, 300, uuid.New())

	var got []string
	for _, u := range sb.Users() {
		got = append(got, u.Name)
	}
	// 同分时最近游玩的在前
	want := "high,mid2,mid,low"
	if strings.Join(got, ",") != want {
		t.Errorf("order: got %v, want %s", got, want)
	}
}

func TestScoreboardUnknownUser(t *testing.T) {
	sb := NewGdataScoreboard(nil)

	users, err := sb.RecordScore(PlayerIdentity{"ghost"}, 100, uuid.New())
	if err != nil || len(users) != 0 {
		t.Errorf("RecordScore(ghost): got %v, %v", users, err)
	}
	users, err = sb.Remove(PlayerIdentity{"ghost"})
	if err != nil || len(users) != 0 {
		t.Errorf("Remove(ghost): got %v, %v", users, err)
	}
}

func TestScoreboardRemove(t *testing.T) {
	sb := NewGdataScoreboard(nil)
	sb.Identify("Alice")
	sb.Identify("Bob")

	users, err := sb.Remove(PlayerIdentity{"Alice"})
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Bob" {
		t.Errorf("Users after remove: got %+v", users)
	}
}

func TestScoreboardPersistence(t *testing.T) {
	gdataManager := openTestGdata(t)

	sb := NewGdataScoreboard(gdataManager)
	id, err := sb.Identify("Alice")
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	runID := uuid.New()
	if _, err := sb.RecordScore(id, 321.9, runID); err != nil {
		t.Fatalf("RecordScore: %v", err)
	}

	reloaded := NewGdataScoreboard(gdataManager)
	users := reloaded.Users()
	if len(users) != 1 {
		t.Fatalf("Users after reload: got %d, want 1", len(users))
	}
	if users[0].Name != "Alice" || users[0].HighScore != 321 {
		t.Errorf("record: got %+v", users[0])
	}
	if users[0].LastRunID != runID.String() {
		t.Errorf("LastRunID: got %q, want %q", users[0].LastRunID, runID.String())
	}
}

func TestScoreboardCorruptData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "{{{ not yaml"},
		{"old version", "version: 1\nusers:\n  - name: Alice\n    highScore: 50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdataManager := openTestGdata(t)
			if err := gdataManager.SaveObjectProp(scoreboardObject, scoreboardProperty, []byte(tt.data)); err != nil {
				t.Fatalf("SaveObjectProp: %v", err)
			}

			sb := NewGdataScoreboard(gdataManager)
			if got := len(sb.Users()); got != 0 {
				t.Errorf("Users: got %d, want 0", got)
			}

			// 损坏的数据会被新记录覆盖
			if _, err := sb.Identify("Bob"); err != nil {
				t.Fatalf("Identify: %v", err)
			}
			if got := len(NewGdataScoreboard(gdataManager).Users()); got != 1 {
				t.Errorf("Users after rewrite: got %d, want 1", got)
			}
		})
	}
}
