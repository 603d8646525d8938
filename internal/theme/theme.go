package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header                *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	Cursor                *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style

	StatusConnected    *lipgloss.Style
	StatusConnecting   *lipgloss.Style
	StatusDisconnected *lipgloss.Style

	PadKey         *lipgloss.Style
	PadKeyDisabled *lipgloss.Style
	ColorRed       *lipgloss.Style
	ColorGreen     *lipgloss.Style
	ColorBlue      *lipgloss.Style
	ColorYellow    *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusConnected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
	),
	StatusConnecting: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	StatusDisconnected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PadKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	PadKeyDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
	),
	ColorRed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("160")).Padding(0, 1),
	),
	ColorGreen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("40")).Padding(0, 1),
	),
	ColorBlue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")).Padding(0, 1),
	),
	ColorYellow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")).Padding(0, 1),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
