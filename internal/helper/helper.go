// Package helper carries the embedded server executable that gets deployed to
// the device. The jar is produced by the Android server build and committed
// under assets/.
package helper

import (
	_ "embed"
	"errors"
)

//go:embed assets/adbpilot-server.jar
var serverBytes []byte

const (
	// LocalName is the staging file name on the host.
	LocalName = "adbpilot-server"
	// RemotePath is the fixed deploy location on the device.
	RemotePath = "/data/local/tmp/adbpilot-server"
	// MainClass is the server entry point launched via app_process.
	MainClass = "io.adbpilot.server.MainKt"
)

// Bytes returns the embedded server executable.
func Bytes() ([]byte, error) {
	if len(serverBytes) == 0 {
		return nil, errors.New("server asset missing from build")
	}
	return serverBytes, nil
}

// ShellCommand is the remote command that launches the deployed server with
// its classpath pointed at RemotePath.
func ShellCommand() string {
	return "CLASSPATH=" + RemotePath + " app_process / " + MainClass
}
