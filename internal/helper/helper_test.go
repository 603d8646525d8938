package helper

import (
	"strings"
	"testing"
)

func TestBytesReturnsEmbeddedAsset(t *testing.T) {
	bin, err := Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(bin) == 0 {
		t.Fatalf("expected non-empty server asset")
	}
}

func TestShellCommand(t *testing.T) {
	cmd := ShellCommand()
	if !strings.HasPrefix(cmd, "CLASSPATH="+RemotePath) {
		t.Fatalf("expected classpath pointing at %s, got %q", RemotePath, cmd)
	}
	if !strings.Contains(cmd, " app_process / ") {
		t.Fatalf("expected app_process launcher in %q", cmd)
	}
	if !strings.HasSuffix(cmd, MainClass) {
		t.Fatalf("expected entry point %s in %q", MainClass, cmd)
	}
}
