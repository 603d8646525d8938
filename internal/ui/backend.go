package ui

import (
	"github.com/adbpilot/adbpilot/internal/backend"
	"github.com/adbpilot/adbpilot/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendErr = evt.Err.Error()
		events.Device.ListError(evt.Err)
		return
	}
	m.backendErr = ""
	m.devices.SetEntries(evt.Devices)
	events.Device.Listed(len(evt.Devices))
	m.clampCursor()
}

func (m *Model) clampCursor() {
	visible := m.visibleDevices()
	if len(visible) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
