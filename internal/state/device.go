package state

import "github.com/adbpilot/adbpilot/internal/adb"

// DeviceStore holds the latest device snapshot and the user's selection.
type DeviceStore interface {
	Entries() []adb.Device
	SetEntries([]adb.Device)
	Selected() string
	SetSelected(string)
	Find(serial string) (adb.Device, bool)
}

type deviceStore struct {
	entries  []adb.Device
	selected string
}

func NewDeviceStore() DeviceStore {
	return &deviceStore{}
}

func (d *deviceStore) Entries() []adb.Device {
	return cloneDevices(d.entries)
}

// SetEntries replaces the snapshot. A selection that no longer appears in the
// snapshot is cleared; with no selection the first online device is chosen.
func (d *deviceStore) SetEntries(entries []adb.Device) {
	d.entries = cloneDevices(entries)
	if d.selected != "" {
		if _, ok := d.Find(d.selected); !ok {
			d.selected = ""
		}
	}
	if d.selected == "" {
		for _, entry := range d.entries {
			if entry.Online() {
				d.selected = entry.Serial
				break
			}
		}
	}
}

func (d *deviceStore) Selected() string {
	return d.selected
}

func (d *deviceStore) SetSelected(serial string) {
	d.selected = serial
}

func (d *deviceStore) Find(serial string) (adb.Device, bool) {
	for _, entry := range d.entries {
		if entry.Serial == serial {
			return entry, true
		}
	}
	return adb.Device{}, false
}

func cloneDevices(entries []adb.Device) []adb.Device {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]adb.Device, len(entries))
	copy(dup, entries)
	return dup
}
