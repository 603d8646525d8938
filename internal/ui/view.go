package ui

import (
	"strings"

	"github.com/adbpilot/adbpilot/internal/format/table"
	"github.com/adbpilot/adbpilot/internal/keymap"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// View renders either the device browser or the remote-control pad, depending
// on connectivity.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n\n")
	if m.conn == connConnected {
		b.WriteString(m.padView())
	} else {
		b.WriteString(m.browserView())
	}
	if msg := m.messageLine(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
		b.WriteString("\n")
	}
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(styles.Footer.Render(m.footerLine()))
		b.WriteString("\n")
	}
	return m.clip(b.String())
}

func (m *Model) headerLine() string {
	title := styles.Header.Render("adbpilot")
	var status string
	switch m.conn {
	case connConnected:
		status = styles.StatusConnected.Render("● connected " + m.devices.Selected())
	case connConnecting:
		status = styles.StatusConnecting.Render(m.spin.View() + "connecting " + m.sessionSerial())
	default:
		status = styles.StatusDisconnected.Render("○ disconnected")
	}
	return title + "  " + status
}

func (m *Model) sessionSerial() string {
	if m.session != nil {
		return m.session.Serial()
	}
	return m.devices.Selected()
}

func (m *Model) browserView() string {
	var b strings.Builder
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")
	visible := m.visibleDevices()
	if len(visible) == 0 {
		if m.filter != "" {
			b.WriteString(styles.Info.Render("no devices match"))
		} else {
			b.WriteString(styles.Info.Render("no devices attached"))
		}
		b.WriteString("\n")
		return b.String()
	}
	rows := make([][]string, len(visible))
	for i, device := range visible {
		rows[i] = []string{device.Serial, device.State}
	}
	selected := m.devices.Selected()
	for i, line := range table.Format(rows) {
		indicator := "  "
		itemStyle := styles.Item
		indicatorStyle := styles.ItemIndicator
		if i == m.cursor {
			indicator = "> "
			itemStyle = styles.SelectedItem
			indicatorStyle = styles.SelectedItemIndicator
		}
		if visible[i].Serial == selected {
			indicator = string(indicator[0]) + "*"
		}
		b.WriteString(indicatorStyle.Render(indicator))
		b.WriteString(itemStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) filterLine() string {
	prompt := styles.FilterPrompt.Render("filter> ")
	query := styles.Filter.Render(m.filter)
	return prompt + query + m.filterCursor.View()
}

// padView lays the remote keys out roughly like a TV remote: dpad cluster,
// nav row, colour row, then the numeric grid.
func (m *Model) padView() string {
	key := func(k keymap.Key, hint string) string {
		return styles.PadKey.Render(hint + " " + k.String())
	}
	dpad := lipgloss.JoinVertical(
		lipgloss.Center,
		key(keymap.DpadUp, "↑"),
		lipgloss.JoinHorizontal(
			lipgloss.Center,
			key(keymap.DpadLeft, "←"), " ", key(keymap.Ok, "⏎"), " ", key(keymap.DpadRight, "→"),
		),
		key(keymap.DpadDown, "↓"),
	)
	nav := lipgloss.JoinHorizontal(
		lipgloss.Center,
		key(keymap.Back, "⌫"), " ", key(keymap.Home, "t"),
	)
	colors := lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.ColorRed.Render("z"), " ",
		styles.ColorGreen.Render("x"), " ",
		styles.ColorBlue.Render("c"), " ",
		styles.ColorYellow.Render("v"),
	)
	digits := make([]string, 0, 19)
	for i, k := range []keymap.Key{
		keymap.Num1, keymap.Num2, keymap.Num3,
		keymap.Num4, keymap.Num5, keymap.Num6,
		keymap.Num7, keymap.Num8, keymap.Num9,
	} {
		if i > 0 && i%3 == 0 {
			digits = append(digits, "\n")
		} else if i > 0 {
			digits = append(digits, " ")
		}
		digits = append(digits, styles.PadKey.Render(k.String()[len(k.String())-1:]))
	}
	numPad := strings.Join(digits, "") + "\n" + styles.PadKey.Render("0")
	sections := []string{dpad, nav, colors, numPad}
	if custom := m.customRow(); custom != "" {
		sections = append(sections, custom)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m *Model) customRow() string {
	if len(m.keyMap.Custom) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.keyMap.Custom)*2)
	for i, custom := range m.keyMap.Custom {
		if i > 0 {
			parts = append(parts, " ")
		}
		label := custom.Label
		if custom.Shortcut != "" {
			label = custom.Shortcut + " " + label
		}
		style := styles.PadKey
		if custom.Shortcut == "" {
			style = styles.PadKeyDisabled
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m *Model) messageLine() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render(m.errMsg)
	case m.backendErr != "":
		return styles.Error.Render("device listing failed: " + m.backendErr)
	case m.infoMsg != "":
		return styles.Info.Render(m.infoMsg)
	}
	return ""
}

func (m *Model) footerLine() string {
	if m.conn == connConnected {
		return "esc/space hang up · arrows/hjkl dpad · enter ok · ctrl+c quit"
	}
	return "type to filter · up/down move · enter select · space connect · esc quit"
}

// clip truncates each rendered line to the terminal width and drops lines
// beyond the height, so a small window never wraps the layout.
func (m *Model) clip(view string) string {
	if m.width <= 0 && m.height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = truncate.StringWithTail(line, uint(m.width), "…")
		}
	}
	return strings.Join(lines, "\n")
}
