package ui

import (
	"github.com/adbpilot/adbpilot/internal/keymap"
	"github.com/adbpilot/adbpilot/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		return m.quit("interrupt")
	}
	if m.conn == connConnected {
		return m.handleRemoteKey(key)
	}
	return m.handleBrowseKey(key)
}

func (m *Model) quit(reason string) tea.Cmd {
	if m.slot != nil {
		m.slot.Close()
	}
	events.App.Quit(reason)
	return tea.Quit
}

// remoteBindings maps terminal keys to remote-control keys while connected.
// The vim-style hjkl row mirrors the arrow keys.
var remoteBindings = map[string]keymap.Key{
	"up":        keymap.DpadUp,
	"k":         keymap.DpadUp,
	"down":      keymap.DpadDown,
	"j":         keymap.DpadDown,
	"left":      keymap.DpadLeft,
	"h":         keymap.DpadLeft,
	"right":     keymap.DpadRight,
	"l":         keymap.DpadRight,
	"enter":     keymap.Ok,
	"backspace": keymap.Back,
	"t":         keymap.Home,
	"z":         keymap.ColorRed,
	"x":         keymap.ColorGreen,
	"c":         keymap.ColorBlue,
	"v":         keymap.ColorYellow,
	"0":         keymap.Num0,
	"1":         keymap.Num1,
	"2":         keymap.Num2,
	"3":         keymap.Num3,
	"4":         keymap.Num4,
	"5":         keymap.Num5,
	"6":         keymap.Num6,
	"7":         keymap.Num7,
	"8":         keymap.Num8,
	"9":         keymap.Num9,
}

// TODO: support long-press by sending down on first repeat and up on release
// once the terminal input layer can report key releases.
func (m *Model) handleRemoteKey(key tea.KeyMsg) tea.Cmd {
	name := key.String()
	switch name {
	case "esc", " ":
		m.hangUp()
		return nil
	}
	if k, ok := remoteBindings[name]; ok {
		return m.sendKey(m.resolveKey(k))
	}
	for _, custom := range m.keyMap.Custom {
		if custom.Shortcut != "" && custom.Shortcut == name {
			return m.sendKey(keyBinding{
				name:    custom.Label,
				code:    custom.Keycode,
				command: keymap.ClickCode(custom.Keycode),
			})
		}
	}
	events.Key.Dropped(name)
	return nil
}

func (m *Model) resolveKey(k keymap.Key) keyBinding {
	return keyBinding{
		name:    k.String(),
		code:    m.keyMap.Code(k),
		command: m.keyMap.Click(k),
	}
}

func (m *Model) handleBrowseKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.clampCursor()
			return nil
		}
		return m.quit("escape")
	case " ":
		return m.toggleConnect()
	case "enter":
		if serial := m.cursorSerial(); serial != "" {
			m.devices.SetSelected(serial)
			events.Device.Selected(serial)
		}
		return nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case "down", "ctrl+n":
		if m.cursor < len(m.visibleDevices())-1 {
			m.cursor++
		}
		return nil
	case "ctrl+u":
		m.filter = ""
		m.clampCursor()
		return nil
	}
	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.clampCursor()
		}
		return nil
	case tea.KeyRunes:
		if key.Alt {
			return nil
		}
		m.filter += string(key.Runes)
		m.cursor = 0
		m.clampCursor()
		return nil
	}
	return nil
}
