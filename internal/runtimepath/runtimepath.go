package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

// TraceFileName is the base name of the default event trace file.
const TraceFileName = "nativewin-trace.log"

// Dir returns the per-user runtime directory. Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
// 3) <os.TempDir>/nativewin-runtime-<uid> (created)
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	uid := os.Getuid()
	if uid >= 0 {
		runUserDir := fmt.Sprintf("/run/user/%d", uid)
		if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
			return runUserDir, nil
		}
	}

	name := "nativewin-runtime"
	if uid >= 0 {
		// Windows reports -1; its temp dir is already per user.
		name = fmt.Sprintf("nativewin-runtime-%d", uid)
	}
	tmpDir := filepath.Join(os.TempDir(), name)
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// TracePath returns the default event trace path.
func TracePath() (string, error) {
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, TraceFileName), nil
}
