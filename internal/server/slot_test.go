package server

import (
	"testing"
	"time"
)

func TestSlotDeliversLatestValue(t *testing.T) {
	slot, rx := NewSlot()
	slot.Send("down KEYCODE_DPAD_UP")
	select {
	case <-rx.Changed():
	default:
		t.Fatalf("expected pending change after send")
	}
	value, ok := rx.Next()
	if !ok {
		t.Fatalf("expected open slot")
	}
	if value != "down KEYCODE_DPAD_UP" {
		t.Fatalf("expected sent value, got %q", value)
	}
}

func TestSlotCoalescesRapidSends(t *testing.T) {
	slot, rx := NewSlot()
	slot.Send("first")
	slot.Send("second")
	slot.Send("third")
	value, ok := rx.Next()
	if !ok || value != "third" {
		t.Fatalf("expected latest value third, got %q (ok=%v)", value, ok)
	}
	select {
	case <-rx.Changed():
		t.Fatalf("expected no pending change after consuming latest value")
	default:
	}
}

func TestSlotInitialValueIsEmptySentinel(t *testing.T) {
	_, rx := NewSlot()
	select {
	case <-rx.Changed():
		t.Fatalf("expected no pending change on a fresh slot")
	default:
	}
	value, ok := rx.Next()
	if !ok {
		t.Fatalf("fresh slot must not report closed")
	}
	if value != "" {
		t.Fatalf("expected empty sentinel, got %q", value)
	}
}

func TestSlotCloseWakesReader(t *testing.T) {
	slot, rx := NewSlot()
	go slot.Close()
	select {
	case <-rx.Changed():
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for close wakeup")
	}
	if _, ok := rx.Next(); ok {
		t.Fatalf("expected closed slot")
	}
}

func TestSlotDeliversPendingValueBeforeClose(t *testing.T) {
	slot, rx := NewSlot()
	slot.Send("down KEYCODE_HOME\nup KEYCODE_HOME")
	slot.Close()
	value, ok := rx.Next()
	if !ok {
		t.Fatalf("pending value must be delivered before close is observed")
	}
	if value != "down KEYCODE_HOME\nup KEYCODE_HOME" {
		t.Fatalf("unexpected pending value %q", value)
	}
	if _, ok := rx.Next(); ok {
		t.Fatalf("expected closed slot after pending value was consumed")
	}
}

func TestSlotSendAfterCloseIsDropped(t *testing.T) {
	slot, rx := NewSlot()
	slot.Close()
	slot.Send("down KEYCODE_BACK")
	if _, ok := rx.Next(); ok {
		t.Fatalf("send after close must not resurrect the slot")
	}
}

func TestSlotReaderObservesSubsequenceInOrder(t *testing.T) {
	slot, rx := NewSlot()
	sent := []string{"a", "b", "c", "d", "e"}
	done := make(chan struct{})
	var got []string
	go func() {
		defer close(done)
		for {
			<-rx.Changed()
			value, ok := rx.Next()
			if !ok {
				return
			}
			if value == "" {
				continue
			}
			got = append(got, value)
		}
	}()
	for _, v := range sent {
		slot.Send(v)
		time.Sleep(time.Millisecond)
	}
	slot.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for reader to finish")
	}
	if len(got) == 0 {
		t.Fatalf("expected reader to observe at least one value")
	}
	idx := 0
	for _, v := range got {
		for idx < len(sent) && sent[idx] != v {
			idx++
		}
		if idx == len(sent) {
			t.Fatalf("observed values %v are not an ordered subsequence of %v", got, sent)
		}
		idx++
	}
	if got[len(got)-1] != "e" {
		t.Fatalf("expected final observed value e, got %q", got[len(got)-1])
	}
}
