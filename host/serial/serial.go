package serial

import (
	"io"
	"strings"
)

// Port is a byte stream to the sampling firmware. Implementations:
// - native serial to the RP2040 USB CDC bridge (github.com/tarm/serial)
// - rpmsg character device exposed by the host's rpmsg_pru driver
// - in-memory pipes for testing
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds port configuration
type Config struct {
	// Device path (e.g. "/dev/rpmsg_pru30", "/dev/ttyACM0")
	Device string

	// Baud rate for serial devices (USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the default configuration for device
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
	}
}

// IsRPMsgDevice reports whether device is an rpmsg character device.
func IsRPMsgDevice(device string) bool {
	return strings.HasPrefix(device, "/dev/rpmsg")
}
