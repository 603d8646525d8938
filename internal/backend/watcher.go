// Package backend polls adb for attached devices and publishes snapshots so
// the UI never blocks on device enumeration.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/adbpilot/adbpilot/internal/adb"
)

// Event conveys a device snapshot or an error from one poll.
type Event struct {
	Devices []adb.Device
	Err     error
}

var listDevicesFn = adb.ListDevices

// Watcher polls `adb devices` at a fixed interval and publishes events.
type Watcher struct {
	adbPath  string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls adb every interval. The first poll
// runs immediately so the device list is populated at startup.
func NewWatcher(adbPath string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		adbPath:  adbPath,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of device snapshots.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	emit := func() bool {
		devices, err := listDevicesFn(w.adbPath)
		evt := Event{Devices: devices, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
