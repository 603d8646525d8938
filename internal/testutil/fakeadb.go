package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RequireShell aborts the calling test when /bin/sh is not present, which the
// fake adb scripts depend on.
func RequireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("skipping: sh not available")
	}
}

// WriteFakeADB drops an executable shell script into a temp dir and returns
// its path. Tests use it in place of a real adb binary; the body decides how
// each subcommand behaves.
func WriteFakeADB(t *testing.T, body string) string {
	t.Helper()
	RequireShell(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "adb")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake adb: %v", err)
	}
	return path
}

// DevicesScript builds a fake adb body whose `devices` subcommand prints the
// given payload and whose other subcommands succeed silently.
func DevicesScript(payload string) string {
	return `case "$1" in
devices)
  printf '%s\n' '` + payload + `'
  ;;
*)
  :
  ;;
esac`
}
