package events

import "github.com/adbpilot/adbpilot/internal/logging"

type DeviceTracer struct{}

var Device = DeviceTracer{}

func (DeviceTracer) Listed(count int) {
	logging.Trace("device.listed", map[string]interface{}{"count": count})
}

func (DeviceTracer) Selected(serial string) {
	logging.Trace("device.selected", map[string]interface{}{"serial": serial})
}

func (DeviceTracer) ListError(err error) {
	if err == nil {
		return
	}
	logging.Trace("device.list.error", map[string]interface{}{"error": err.Error()})
}
