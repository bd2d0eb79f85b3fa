package systems

import (
	"testing"

	"github.com/Akhipbm/Traffic-runner/pkg/components"
)

func TestFeedbackExpires(t *testing.T) {
	fs := NewFeedbackSystem(120)
	metrics := &components.GameMetrics{}

	fs.Show(metrics, "GO!", components.MessageGood)
	for i := 0; i < 119; i++ {
		fs.Update(metrics)
	}
	if metrics.Message.Text != "GO!" {
		t.Fatalf("message cleared early: got %q", metrics.Message.Text)
	}

	fs.Update(metrics)
	if metrics.Message.Text != "" {
		t.Errorf("message after expiry: got %q, want empty", metrics.Message.Text)
	}
	if metrics.Message.Timer != 0 {
		t.Errorf("timer after expiry: got %d, want 0", metrics.Message.Timer)
	}

	// 空消息继续 Update 不会变成负数
	fs.Update(metrics)
	if metrics.Message.Timer != 0 {
		t.Errorf("timer stays at zero: got %d", metrics.Message.Timer)
	}
}

func TestFeedbackShowOnce(t *testing.T) {
	fs := NewFeedbackSystem(120)
	metrics := &components.GameMetrics{}

	fs.ShowOnce(metrics, "STOP!", components.MessageNeutral)
	for i := 0; i < 50; i++ {
		fs.Update(metrics)
	}
	fs.ShowOnce(metrics, "STOP!", components.MessageNeutral)
	if metrics.Message.Timer != 70 {
		t.Errorf("same text must not reset timer: got %d, want 70", metrics.Message.Timer)
	}

	fs.ShowOnce(metrics, "GO!", components.MessageGood)
	if metrics.Message.Text != "GO!" || metrics.Message.Timer != 120 {
		t.Errorf("new text: got %q/%d, want GO!/120", metrics.Message.Text, metrics.Message.Timer)
	}
	if metrics.Message.Type != components.MessageGood {
		t.Errorf("Type: got %v, want %v", metrics.Message.Type, components.MessageGood)
	}
}
