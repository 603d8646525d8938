package state

import (
	"testing"

	"github.com/adbpilot/adbpilot/internal/adb"
)

func TestSetEntriesAutoSelectsFirstOnlineDevice(t *testing.T) {
	store := NewDeviceStore()
	store.SetEntries([]adb.Device{
		{Serial: "ce0918273", State: "offline"},
		{Serial: "emulator-5554", State: "device"},
		{Serial: "emulator-5556", State: "device"},
	})
	if got := store.Selected(); got != "emulator-5554" {
		t.Fatalf("expected first online device selected, got %q", got)
	}
}

func TestSetEntriesKeepsExistingSelection(t *testing.T) {
	store := NewDeviceStore()
	store.SetSelected("emulator-5556")
	store.SetEntries([]adb.Device{
		{Serial: "emulator-5554", State: "device"},
		{Serial: "emulator-5556", State: "device"},
	})
	if got := store.Selected(); got != "emulator-5556" {
		t.Fatalf("expected sticky selection, got %q", got)
	}
}

func TestSetEntriesClearsVanishedSelection(t *testing.T) {
	store := NewDeviceStore()
	store.SetEntries([]adb.Device{{Serial: "emulator-5556", State: "device"}})
	store.SetEntries([]adb.Device{{Serial: "emulator-5554", State: "device"}})
	if got := store.Selected(); got != "emulator-5554" {
		t.Fatalf("expected reselection after the device vanished, got %q", got)
	}
}

func TestFind(t *testing.T) {
	store := NewDeviceStore()
	store.SetEntries([]adb.Device{{Serial: "emulator-5554", State: "unauthorized"}})
	device, ok := store.Find("emulator-5554")
	if !ok {
		t.Fatalf("expected to find device")
	}
	if device.State != "unauthorized" {
		t.Fatalf("unexpected state %q", device.State)
	}
	if _, ok := store.Find("absent"); ok {
		t.Fatalf("expected lookup miss for unknown serial")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	store := NewDeviceStore()
	store.SetEntries([]adb.Device{{Serial: "emulator-5554", State: "device"}})
	entries := store.Entries()
	entries[0].Serial = "mutated"
	if store.Entries()[0].Serial != "emulator-5554" {
		t.Fatalf("expected internal snapshot to be isolated from callers")
	}
}
