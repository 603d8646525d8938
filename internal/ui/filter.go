package ui

import (
	"sort"
	"strings"

	"github.com/adbpilot/adbpilot/internal/adb"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// filterDevices narrows the device snapshot with a fuzzy match over serials,
// best matches first. An empty query returns the snapshot unchanged.
func filterDevices(devices []adb.Device, query string) []adb.Device {
	q := strings.TrimSpace(query)
	if q == "" {
		return devices
	}
	serials := make([]string, len(devices))
	bySerial := make(map[string]adb.Device, len(devices))
	for i, device := range devices {
		serials[i] = device.Serial
		bySerial[device.Serial] = device
	}
	ranks := fuzzy.RankFindFold(q, serials)
	sort.Sort(ranks)
	out := make([]adb.Device, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, bySerial[rank.Target])
	}
	return out
}

func (m *Model) visibleDevices() []adb.Device {
	return filterDevices(m.devices.Entries(), m.filter)
}

// cursorSerial resolves the device the connect toggle should act on: the row
// under the cursor, falling back to the sticky selection when the filtered
// list is empty.
func (m *Model) cursorSerial() string {
	visible := m.visibleDevices()
	if len(visible) == 0 {
		return m.devices.Selected()
	}
	idx := m.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(visible) {
		idx = len(visible) - 1
	}
	return visible[idx].Serial
}
