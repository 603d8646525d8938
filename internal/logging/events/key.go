package events

import "github.com/adbpilot/adbpilot/internal/logging"

type KeyTracer struct{}

var Key = KeyTracer{}

func (KeyTracer) Pressed(name, code string) {
	logging.Trace("key.pressed", map[string]interface{}{"key": name, "code": code})
}

func (KeyTracer) Dropped(name string) {
	logging.Trace("key.dropped", map[string]interface{}{"key": name})
}
