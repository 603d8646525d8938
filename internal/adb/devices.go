package adb

import (
	"fmt"
	"os/exec"
	"strings"
)

// Device is one row of `adb devices` output.
type Device struct {
	Serial string
	State  string
}

// Online reports whether the device is ready to accept commands.
func (d Device) Online() bool {
	return d.State == "device"
}

// ListDevices enumerates attached devices by invoking `adb devices`.
func ListDevices(adbPath string) ([]Device, error) {
	cmd := exec.Command(adbPath, "devices")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("adb devices failed: %w", err)
	}
	return ParseDevices(string(output)), nil
}

// ParseDevices splits newline-delimited, tab-separated `<serial>\t<state>`
// records. Lines that do not split into exactly two fields (the banner line,
// blank lines) are skipped.
func ParseDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		segments := strings.Split(line, "\t")
		if len(segments) != 2 {
			continue
		}
		serial := strings.TrimSpace(segments[0])
		state := strings.TrimSpace(segments[1])
		if serial == "" {
			continue
		}
		devices = append(devices, Device{Serial: serial, State: state})
	}
	return devices
}
