//go:build !mobile

package utils

import "testing"

func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("TRAFFIC_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("TRAFFIC_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulation is enabled")
	}
}

func TestDesktopStorageNeedsNoPreparation(t *testing.T) {
	if err := EnsureStorageDir(); err != nil {
		t.Errorf("EnsureStorageDir: %v", err)
	}
	if got := GetStoragePath(); got != "" {
		t.Errorf("GetStoragePath: got %q, want empty", got)
	}
}
