package server

import "sync"

// Manager tracks at most one running session per device serial, so a repeated
// connect request for the same device reuses the active session instead of
// deploying twice.
type Manager struct {
	adbPath string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns a manager that starts sessions through the given adb
// binary.
func NewManager(adbPath string) *Manager {
	return &Manager{
		adbPath:  adbPath,
		sessions: make(map[string]*Session),
	}
}

// Start returns the session for serial, starting one if none is active. The
// bool reports whether a new session was started.
func (m *Manager) Start(serial string, rx *Receiver) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[serial]; ok {
		return s, false
	}
	s := Start(m.adbPath, serial, rx)
	m.sessions[serial] = s
	return s, true
}

// Active reports whether a session is tracked for serial.
func (m *Manager) Active(serial string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[serial]
	return ok
}

// Forget drops the bookkeeping entry after a session's terminal event. The
// session goroutine has already cleaned up its subprocess by then.
func (m *Manager) Forget(serial string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, serial)
}
