package events

import "github.com/adbpilot/adbpilot/internal/logging"

type SessionTracer struct{}

type sessionPhase string

const (
	SessionPhaseStaging sessionPhase = "staging"
	SessionPhaseDeploy  sessionPhase = "deploy"
	SessionPhaseSpawn   sessionPhase = "spawn"
	SessionPhaseRelay   sessionPhase = "relay"
)

var Session = SessionTracer{}

func (SessionTracer) Start(serial string) {
	logging.Trace("session.start", map[string]interface{}{"serial": serial})
}

func (SessionTracer) Connected(serial string) {
	logging.Trace("session.connected", map[string]interface{}{"serial": serial})
}

func (SessionTracer) Disconnected(serial string) {
	logging.Trace("session.disconnected", map[string]interface{}{"serial": serial})
}

func (SessionTracer) Failed(serial string, phase sessionPhase, err error) {
	payload := map[string]interface{}{"serial": serial, "phase": string(phase)}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.failed", payload)
}

func (SessionTracer) Relay(serial, command string) {
	logging.Trace("session.relay", map[string]interface{}{"serial": serial, "command": command})
}

func (SessionTracer) HangUp(serial string) {
	logging.Trace("session.hangup", map[string]interface{}{"serial": serial})
}
