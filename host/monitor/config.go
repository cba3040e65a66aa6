package monitor

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the monitor configuration.
type Config struct {
	Device        string `toml:"device"`
	TriggerDevice string `toml:"trigger_device"`
	Trigger       string `toml:"trigger"`
	Baud          int    `toml:"baud"`
	Batches       uint64 `toml:"batches"`
	Format        string `toml:"format"`
	LogLevel      string `toml:"log_level"`
}

// DefaultConfig triggers and reads on the host-to-device channel device.
// The firmware replies to the endpoint that sent the trigger, so batches
// arrive on the same device unless TriggerDevice names another one.
func DefaultConfig() Config {
	return Config{
		Device:        "/dev/rpmsg_pru31",
		Trigger:       "start",
		Baud:          115200,
		Format:        FormatText,
		LogLevel:      "info",
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("device is required")
	}
	if c.Format != FormatText && c.Format != FormatCSV {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Baud <= 0 {
		return fmt.Errorf("baud must be positive, got %d", c.Baud)
	}
	return nil
}

// DefaultConfigPath returns ~/.pruadc/monitor.toml if the home directory is known.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".pruadc", "monitor.toml")
	}
	return ""
}

// FileExists reports whether path names an existing file.
func FileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// LoadFile applies the TOML file at path onto cfg. Keys set in changed
// (flag names explicitly given on the command line) are left alone.
func LoadFile(path string, cfg *Config, changed map[string]bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc Config
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	setString := func(flag, v string, dst *string) {
		if v != "" && !changed[flag] {
			*dst = v
		}
	}
	setString("device", fc.Device, &cfg.Device)
	setString("trigger-device", fc.TriggerDevice, &cfg.TriggerDevice)
	setString("trigger", fc.Trigger, &cfg.Trigger)
	setString("format", fc.Format, &cfg.Format)
	setString("log-level", fc.LogLevel, &cfg.LogLevel)
	if fc.Baud != 0 && !changed["baud"] {
		cfg.Baud = fc.Baud
	}
	if fc.Batches != 0 && !changed["batches"] {
		cfg.Batches = fc.Batches
	}
	return nil
}
