// Package keymap resolves abstract key identifiers to Android keycode strings
// and encodes them into the line protocol understood by the on-device server.
package keymap

import (
	"encoding/json"
	"fmt"
	"os"
)

// Key identifies a remote-control button independent of its keycode.
type Key int

const (
	DpadUp Key = iota
	DpadDown
	DpadLeft
	DpadRight
	Ok
	Back
	Home
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
)

var keyNames = map[Key]string{
	DpadUp:      "dpad_up",
	DpadDown:    "dpad_down",
	DpadLeft:    "dpad_left",
	DpadRight:   "dpad_right",
	Ok:          "dpad_ok",
	Back:        "back",
	Home:        "home",
	ColorRed:    "color_red",
	ColorGreen:  "color_green",
	ColorBlue:   "color_blue",
	ColorYellow: "color_yellow",
	Num0:        "num_0",
	Num1:        "num_1",
	Num2:        "num_2",
	Num3:        "num_3",
	Num4:        "num_4",
	Num5:        "num_5",
	Num6:        "num_6",
	Num7:        "num_7",
	Num8:        "num_8",
	Num9:        "num_9",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// CustomKey is a user-defined button with an optional keyboard shortcut.
type CustomKey struct {
	Label    string `json:"label"`
	Keycode  string `json:"keycode"`
	Shortcut string `json:"shortcut,omitempty"`
}

// Map is the key identifier to keycode table. Keycodes are the symbolic
// names understood by Android's KeyEvent (e.g. KEYCODE_DPAD_UP).
type Map struct {
	DpadUp      string      `json:"dpad_up"`
	DpadDown    string      `json:"dpad_down"`
	DpadLeft    string      `json:"dpad_left"`
	DpadRight   string      `json:"dpad_right"`
	DpadOk      string      `json:"dpad_ok"`
	Back        string      `json:"back"`
	Home        string      `json:"home"`
	ColorRed    string      `json:"color_red"`
	ColorGreen  string      `json:"color_green"`
	ColorBlue   string      `json:"color_blue"`
	ColorYellow string      `json:"color_yellow"`
	Num         [10]string  `json:"-"`
	Custom      []CustomKey `json:"custom_keys,omitempty"`
}

// Default returns the stock table.
func Default() Map {
	return Map{
		DpadUp:      "KEYCODE_DPAD_UP",
		DpadDown:    "KEYCODE_DPAD_DOWN",
		DpadLeft:    "KEYCODE_DPAD_LEFT",
		DpadRight:   "KEYCODE_DPAD_RIGHT",
		DpadOk:      "KEYCODE_DPAD_CENTER",
		Back:        "KEYCODE_BACK",
		Home:        "KEYCODE_HOME",
		ColorRed:    "KEYCODE_PROG_RED",
		ColorGreen:  "KEYCODE_PROG_GREEN",
		ColorBlue:   "KEYCODE_PROG_BLUE",
		ColorYellow: "KEYCODE_PROG_YELLOW",
		Num: [10]string{
			"KEYCODE_0", "KEYCODE_1", "KEYCODE_2", "KEYCODE_3", "KEYCODE_4",
			"KEYCODE_5", "KEYCODE_6", "KEYCODE_7", "KEYCODE_8", "KEYCODE_9",
		},
	}
}

// mapFile mirrors Map for serialization, with numeric keys as named fields.
type mapFile struct {
	Map
	Num0 string `json:"num_0,omitempty"`
	Num1 string `json:"num_1,omitempty"`
	Num2 string `json:"num_2,omitempty"`
	Num3 string `json:"num_3,omitempty"`
	Num4 string `json:"num_4,omitempty"`
	Num5 string `json:"num_5,omitempty"`
	Num6 string `json:"num_6,omitempty"`
	Num7 string `json:"num_7,omitempty"`
	Num8 string `json:"num_8,omitempty"`
	Num9 string `json:"num_9,omitempty"`
}

// Load reads a key map file and overlays it on the defaults, so a file only
// needs to name the keys it overrides.
func Load(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("read key map: %w", err)
	}
	file := mapFile{Map: Default()}
	if err := json.Unmarshal(data, &file); err != nil {
		return Map{}, fmt.Errorf("parse key map: %w", err)
	}
	m := file.Map
	overrides := [10]string{
		file.Num0, file.Num1, file.Num2, file.Num3, file.Num4,
		file.Num5, file.Num6, file.Num7, file.Num8, file.Num9,
	}
	for i, code := range overrides {
		if code != "" {
			m.Num[i] = code
		}
	}
	return m, nil
}

// Code resolves a key identifier to its keycode string.
func (m Map) Code(k Key) string {
	switch k {
	case DpadUp:
		return m.DpadUp
	case DpadDown:
		return m.DpadDown
	case DpadLeft:
		return m.DpadLeft
	case DpadRight:
		return m.DpadRight
	case Ok:
		return m.DpadOk
	case Back:
		return m.Back
	case Home:
		return m.Home
	case ColorRed:
		return m.ColorRed
	case ColorGreen:
		return m.ColorGreen
	case ColorBlue:
		return m.ColorBlue
	case ColorYellow:
		return m.ColorYellow
	}
	if k >= Num0 && k <= Num9 {
		return m.Num[int(k-Num0)]
	}
	return ""
}

// Down encodes a key-press command line.
func (m Map) Down(k Key) string {
	return "down " + m.Code(k)
}

// Up encodes a key-release command line.
func (m Map) Up(k Key) string {
	return "up " + m.Code(k)
}

// Click encodes a paired press/release. Both lines travel as one slot value
// so they reach the device within a single flush.
func (m Map) Click(k Key) string {
	code := m.Code(k)
	return "down " + code + "\nup " + code
}

// ClickCode encodes a click for a raw keycode string, used by custom keys.
func ClickCode(code string) string {
	return "down " + code + "\nup " + code
}
