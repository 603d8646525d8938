package ui

import (
	"reflect"

	"github.com/adbpilot/adbpilot/internal/backend"
	"github.com/adbpilot/adbpilot/internal/keymap"
	"github.com/adbpilot/adbpilot/internal/server"
	"github.com/adbpilot/adbpilot/internal/state"
	"github.com/adbpilot/adbpilot/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

// connectivity is the tri-state indicator driven by session lifecycle events.
type connectivity int

const (
	connDisconnected connectivity = iota
	connConnecting
	connConnected
)

func (c connectivity) String() string {
	switch c {
	case connConnecting:
		return "connecting"
	case connConnected:
		return "connected"
	}
	return "disconnected"
}

type msgHandler func(tea.Msg) tea.Cmd

// Params bundles the collaborators NewModel needs.
type Params struct {
	KeyMap     keymap.Map
	Manager    *server.Manager
	Backend    *backend.Watcher
	Serial     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the remote-control screen.
type Model struct {
	keyMap  keymap.Map
	manager *server.Manager
	backend *backend.Watcher
	devices state.DeviceStore

	conn    connectivity
	session *server.Session
	slot    *server.Slot

	cursor       int
	filter       string
	filterCursor cursor.Model
	spin         spinner.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	backendErr string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the device list and key map.
func NewModel(p Params) *Model {
	devices := state.NewDeviceStore()
	if p.Serial != "" {
		devices.SetSelected(p.Serial)
	}
	m := &Model{
		keyMap:     p.KeyMap,
		manager:    p.Manager,
		backend:    p.Backend,
		devices:    devices,
		conn:       connDisconnected,
		showFooter: p.ShowFooter,
		verbose:    p.Verbose,
	}
	if p.Width > 0 {
		m.width = p.Width
		m.fixedWidth = true
	}
	if p.Height > 0 {
		m.height = p.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	s := spinner.New()
	s.Spinner = spinner.Dot
	if styles.StatusConnecting != nil {
		s.Style = *styles.StatusConnecting
	}
	m.spin = s
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(sessionEventMsg{}):   m.handleSessionEventMsg,
		reflect.TypeOf(sessionDoneMsg{}):    m.handleSessionDoneMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.conn != connConnecting {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return cmd
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
}

func (m *Model) clearMessages() {
	m.infoMsg = ""
	m.errMsg = ""
}
