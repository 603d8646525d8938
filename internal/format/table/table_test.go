package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"emulator-5554", "device"},
		{"R58M123ABC", "unauthorized"},
	}
	lines := Format(rows)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "emulator-5554  device" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "R58M123ABC     unauthorized" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestFormatDropsTrailingPadding(t *testing.T) {
	rows := [][]string{
		{"a", "short"},
		{"bb", "longer-state"},
	}
	lines := Format(rows)
	if lines[0] != "a   short" {
		t.Fatalf("unexpected line %q", lines[0])
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if lines := Format(nil); lines != nil {
		t.Fatalf("expected nil for empty input, got %v", lines)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	rows := [][]string{
		{"only"},
		{"two", "cols"},
	}
	lines := Format(rows)
	if lines[0] != "only" {
		t.Fatalf("unexpected line %q", lines[0])
	}
	if lines[1] != "two   cols" {
		t.Fatalf("unexpected line %q", lines[1])
	}
}
