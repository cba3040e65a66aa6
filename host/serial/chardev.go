package serial

import (
	"fmt"
	"os"
)

// CharDevice is an rpmsg character device. Each read returns at most one
// rpmsg message.
type CharDevice struct {
	f *os.File
}

// OpenCharDevice opens an rpmsg character device for reading and writing.
func OpenCharDevice(path string) (*CharDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open rpmsg device %s: %w", path, err)
	}
	return &CharDevice{f: f}, nil
}

func (d *CharDevice) Read(b []byte) (int, error) {
	return d.f.Read(b)
}

func (d *CharDevice) Write(b []byte) (int, error) {
	return d.f.Write(b)
}

func (d *CharDevice) Close() error {
	return d.f.Close()
}

// Flush is a no-op; writes go straight to the driver
func (d *CharDevice) Flush() error {
	return nil
}
