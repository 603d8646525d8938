// Package server implements the device command channel: it deploys the
// embedded helper to a device, spawns the adb shell that runs it, and relays
// command lines from the UI's slot into the subprocess's stdin while
// reporting lifecycle transitions.
package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adbpilot/adbpilot/internal/adb"
	"github.com/adbpilot/adbpilot/internal/helper"
	"github.com/adbpilot/adbpilot/internal/logging"
	"github.com/adbpilot/adbpilot/internal/logging/events"
)

// bridgeProcess is the slice of adb.ShellProcess the relay loop needs.
type bridgeProcess interface {
	WriteLine(string) error
	Done() <-chan error
	Kill()
}

// Seams for tests; production code never overrides these.
var (
	stageHelperFn = stageHelper
	pushFn        = adb.Push
	startShellFn  = func(adbPath, serial string) (bridgeProcess, error) {
		return adb.StartShell(adbPath, serial, helper.ShellCommand())
	}
)

// Session is one connect-to-disconnect lifetime of the command channel for a
// single device. The subprocess handle never leaves the session goroutine.
type Session struct {
	serial string
	rx     *Receiver
	events chan Event
}

// Start begins a session. It never blocks the caller; all deploy and relay
// work happens on the session's own goroutine. The returned event stream
// yields at most one EventConnected followed by exactly one terminal event,
// then closes.
func Start(adbPath, serial string, rx *Receiver) *Session {
	s := &Session{
		serial: serial,
		rx:     rx,
		events: make(chan Event, 2),
	}
	go s.run(adbPath)
	return s
}

// Serial returns the device identifier this session is bound to.
func (s *Session) Serial() string {
	return s.serial
}

// Events returns the lifecycle stream. It is closed after the terminal event.
func (s *Session) Events() <-chan Event {
	return s.events
}

func (s *Session) run(adbPath string) {
	defer close(s.events)
	events.Session.Start(s.serial)

	stagingDir, localPath, err := stageHelperFn()
	if stagingDir != "" {
		defer os.RemoveAll(stagingDir)
	}
	if err != nil {
		logging.Error(err)
		events.Session.Failed(s.serial, events.SessionPhaseStaging, err)
		s.events <- EventError
		return
	}

	if err := pushFn(adbPath, s.serial, localPath, helper.RemotePath); err != nil {
		logging.Error(err)
		events.Session.Failed(s.serial, events.SessionPhaseDeploy, err)
		s.events <- EventError
		return
	}

	proc, err := startShellFn(adbPath, s.serial)
	if err != nil {
		logging.Error(err)
		events.Session.Failed(s.serial, events.SessionPhaseSpawn, err)
		s.events <- EventError
		return
	}

	events.Session.Connected(s.serial)
	s.events <- EventConnected

	for {
		select {
		case <-s.rx.Changed():
			line, ok := s.rx.Next()
			if !ok {
				// The UI hung up the slot: clean shutdown, not an error.
				events.Session.HangUp(s.serial)
				proc.Kill()
				s.events <- EventDisconnected
				return
			}
			if line == "" {
				// Slot's initial value.
				continue
			}
			events.Session.Relay(s.serial, line)
			if err := proc.WriteLine(line); err != nil {
				logging.Error(err)
				events.Session.Failed(s.serial, events.SessionPhaseRelay, err)
				proc.Kill()
				s.events <- EventError
				return
			}
		case err := <-proc.Done():
			// The subprocess died on its own (device unplugged, remote
			// crash). Already reaped by its waiter; nothing to kill.
			if err != nil {
				logging.Error(fmt.Errorf("adb shell exited: %w", err))
			}
			events.Session.Disconnected(s.serial)
			s.events <- EventDisconnected
			return
		}
	}
}

// stageHelper writes the embedded server executable to a fresh temporary
// location and returns the staging directory and file path. The directory is
// removed by the caller once the deploy finishes.
func stageHelper() (dir, path string, err error) {
	bin, err := helper.Bytes()
	if err != nil {
		return "", "", err
	}
	dir, err = os.MkdirTemp("", "adbpilot-*")
	if err != nil {
		return "", "", fmt.Errorf("create staging directory: %w", err)
	}
	path = filepath.Join(dir, helper.LocalName)
	if err := os.WriteFile(path, bin, 0o644); err != nil {
		return dir, "", fmt.Errorf("write server executable: %w", err)
	}
	return dir, path, nil
}
