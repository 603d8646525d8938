package server

import "sync"

// Slot is a single-slot, latest-value broadcast primitive. Many writers
// overwrite the value; the one reader observes the newest value per wakeup.
// It is deliberately not a queue: a hand mashing buttons faster than the
// pipe drains coalesces into the latest command instead of building backlog.
//
// The initial value is the empty string, which readers treat as a sentinel
// and never forward.
type Slot struct {
	mu     sync.Mutex
	value  string
	seq    uint64
	closed bool
	notify chan struct{}
}

// NewSlot returns a slot and its single reader.
func NewSlot() (*Slot, *Receiver) {
	s := &Slot{notify: make(chan struct{})}
	return s, &Receiver{slot: s}
}

// Send overwrites the slot value and wakes the reader. Sends after Close are
// dropped.
func (s *Slot) Send(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.value = value
	s.seq++
	close(s.notify)
	s.notify = make(chan struct{})
}

// Close is the writer hanging up. The reader observes it as a shutdown
// request distinct from "no new value yet".
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.notify)
}

// Receiver is the reader side of a Slot. Not safe for concurrent use by
// multiple goroutines; a session owns its receiver exclusively.
type Receiver struct {
	slot *Slot
	seen uint64
}

// Changed returns a channel that is ready when an unseen value or a close is
// pending, letting callers race a slot change against other events in one
// select.
func (r *Receiver) Changed() <-chan struct{} {
	s := r.slot
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != r.seen || s.closed {
		ready := make(chan struct{})
		close(ready)
		return ready
	}
	return s.notify
}

// Next consumes the latest unseen value. ok is false once the slot is closed
// and nothing unseen remains; a value sent before the close is still
// delivered first.
func (r *Receiver) Next() (value string, ok bool) {
	s := r.slot
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != r.seen {
		r.seen = s.seq
		return s.value, true
	}
	if s.closed {
		return "", false
	}
	// Spurious wakeup; the empty sentinel is ignored by the reader loop.
	return "", true
}
