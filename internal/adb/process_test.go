package adb

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adbpilot/adbpilot/internal/testutil"
)

func TestStartShellRelaysLines(t *testing.T) {
	out := filepath.Join(t.TempDir(), "stdin.txt")
	t.Setenv("FAKE_ADB_OUT", out)
	fake := testutil.WriteFakeADB(t, `head -n 2 > "$FAKE_ADB_OUT"`)

	proc, err := StartShell(fake, "emulator-5554", "ignored")
	if err != nil {
		t.Fatalf("StartShell failed: %v", err)
	}
	if err := proc.WriteLine("down KEYCODE_DPAD_UP"); err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}
	if err := proc.WriteLine("up KEYCODE_DPAD_UP"); err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}
	select {
	case err := <-proc.Done():
		if err != nil {
			t.Fatalf("unexpected exit error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for subprocess exit")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read captured stdin: %v", err)
	}
	expected := "down KEYCODE_DPAD_UP\nup KEYCODE_DPAD_UP\n"
	if string(data) != expected {
		t.Fatalf("expected %q on subprocess stdin, got %q", expected, string(data))
	}
}

func TestShellProcessDoneReportsExitError(t *testing.T) {
	fake := testutil.WriteFakeADB(t, "exit 3")
	proc, err := StartShell(fake, "emulator-5554", "ignored")
	if err != nil {
		t.Fatalf("StartShell failed: %v", err)
	}
	select {
	case err := <-proc.Done():
		if err == nil {
			t.Fatalf("expected nonzero exit to surface as an error")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout waiting for subprocess exit")
	}
}

func TestKillTerminatesRunningProcess(t *testing.T) {
	fake := testutil.WriteFakeADB(t, "sleep 60")
	proc, err := StartShell(fake, "emulator-5554", "ignored")
	if err != nil {
		t.Fatalf("StartShell failed: %v", err)
	}
	done := make(chan struct{})
	go func() {
		proc.Kill()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Kill did not reap the subprocess")
	}
}

func TestKillIsIdempotent(t *testing.T) {
	fake := testutil.WriteFakeADB(t, "sleep 60")
	proc, err := StartShell(fake, "emulator-5554", "ignored")
	if err != nil {
		t.Fatalf("StartShell failed: %v", err)
	}
	proc.Kill()
	proc.Kill()
}
