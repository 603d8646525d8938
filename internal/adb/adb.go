package adb

import (
	"fmt"
	"os/exec"
	"strings"
)

// ResolvePath locates the adb binary. An explicit override wins; otherwise
// PATH is searched.
func ResolvePath(override string) (string, error) {
	trimmed := strings.TrimSpace(override)
	if trimmed != "" {
		return trimmed, nil
	}
	path, err := exec.LookPath("adb")
	if err != nil {
		return "", fmt.Errorf("adb binary not found in PATH: %w", err)
	}
	return path, nil
}

// Push copies a local file onto the device. A nonzero exit from adb is a hard
// error; the command output is folded into the returned error for the log.
func Push(adbPath, serial, local, remote string) error {
	cmd := exec.Command(adbPath, "-s", serial, "push", local, remote)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("adb push failed: %w: %s", err, detail)
		}
		return fmt.Errorf("adb push failed: %w", err)
	}
	return nil
}
