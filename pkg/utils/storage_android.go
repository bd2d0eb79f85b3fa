//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 Android 的 saves 目录并确认可写
//
// gdata 在 Android 上写入 /data/data/{package}/saves，但不会创建该目录。
func EnsureStorageDir() error {
	base := GetStoragePath()
	if base == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	savesDir := filepath.Join(base, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath Android 应用数据目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段是包名
	pkg, _, _ := bytes.Cut(data, []byte{0})
	pkg = bytes.TrimSpace(pkg)
	if len(pkg) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(pkg))
}
