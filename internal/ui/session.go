package ui

import (
	"github.com/adbpilot/adbpilot/internal/logging/events"
	"github.com/adbpilot/adbpilot/internal/server"
	tea "github.com/charmbracelet/bubbletea"
)

type sessionEventMsg struct {
	serial string
	event  server.Event
}

type sessionDoneMsg struct {
	serial string
}

func waitForSessionEvent(s *server.Session) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-s.Events()
		if !ok {
			return sessionDoneMsg{serial: s.Serial()}
		}
		return sessionEventMsg{serial: s.Serial(), event: evt}
	}
}

func (m *Model) handleSessionEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(sessionEventMsg)
	if !ok {
		return nil
	}
	current := m.session != nil && m.session.Serial() == eventMsg.serial
	switch eventMsg.event {
	case server.EventConnected:
		if current && m.conn == connConnecting {
			m.conn = connConnected
			m.errMsg = ""
			m.setInfo("connected to " + eventMsg.serial)
		}
	case server.EventDisconnected:
		m.manager.Forget(eventMsg.serial)
		if current {
			m.conn = connDisconnected
			m.slot = nil
			m.setInfo("disconnected")
		}
	case server.EventError:
		m.manager.Forget(eventMsg.serial)
		if current {
			m.conn = connDisconnected
			m.slot = nil
			m.infoMsg = ""
			m.errMsg = "connection failed; see log for detail"
		}
	}
	if current {
		return waitForSessionEvent(m.session)
	}
	return nil
}

func (m *Model) handleSessionDoneMsg(msg tea.Msg) tea.Cmd {
	doneMsg, ok := msg.(sessionDoneMsg)
	if !ok {
		return nil
	}
	if m.session != nil && m.session.Serial() == doneMsg.serial {
		m.session = nil
	}
	return nil
}

// toggleConnect arms a session for the device under the cursor, or hangs up
// the active one.
func (m *Model) toggleConnect() tea.Cmd {
	switch m.conn {
	case connDisconnected:
		serial := m.cursorSerial()
		if serial == "" {
			m.errMsg = "no device selected"
			return nil
		}
		if device, ok := m.devices.Find(serial); ok && !device.Online() {
			m.errMsg = "device " + serial + " is not ready (" + device.State + ")"
			return nil
		}
		m.devices.SetSelected(serial)
		events.Device.Selected(serial)
		slot, rx := server.NewSlot()
		session, started := m.manager.Start(serial, rx)
		if started {
			m.slot = slot
		}
		m.session = session
		m.conn = connConnecting
		m.clearMessages()
		return tea.Batch(waitForSessionEvent(session), m.spin.Tick)
	case connConnecting, connConnected:
		m.hangUp()
	}
	return nil
}

// hangUp closes the slot, which the session observes as a clean shutdown
// request. The connectivity indicator flips immediately; the session's
// terminal event finishes the bookkeeping.
func (m *Model) hangUp() {
	if m.slot != nil {
		m.slot.Close()
	}
	m.conn = connDisconnected
	m.setInfo("disconnected")
}

// sendKey relays a clicked key through the outgoing slot.
func (m *Model) sendKey(k keyBinding) tea.Cmd {
	if m.conn != connConnected || m.slot == nil {
		events.Key.Dropped(k.name)
		return nil
	}
	m.slot.Send(k.command)
	events.Key.Pressed(k.name, k.code)
	if m.verbose {
		m.setInfo("sent " + k.name)
	}
	return nil
}

// keyBinding is a resolved key ready to relay.
type keyBinding struct {
	name    string
	code    string
	command string
}
