package server

// Event is the only information the UI receives about channel health.
type Event int

const (
	// EventConnected fires once when the remote server is up and the command
	// pipe is writable.
	EventConnected Event = iota
	// EventDisconnected reports a clean end: the subprocess exited on its own
	// or the UI hung up the slot.
	EventDisconnected
	// EventError reports a failed deploy, spawn, or pipe write. Detail goes to
	// the log, never across this boundary.
	EventError
)

func (e Event) String() string {
	switch e {
	case EventConnected:
		return "connected"
	case EventDisconnected:
		return "disconnected"
	case EventError:
		return "error"
	}
	return "unknown"
}
