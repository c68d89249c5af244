// Package config loads the clock settings: built-in defaults, then an
// optional JSON file, then LINECLOCK_* environment variables (optionally
// seeded from a .env file). Command line flags are applied by main on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPath is where the daemon looks for its config file.
const DefaultPath = "/etc/lineclock/config.json"

// Backends understood by the panel package.
const (
	BackendSSD1306SPI = "ssd1306-spi"
	BackendSSD1306I2C = "ssd1306-i2c"
	BackendSerial     = "serial"
	BackendBMP        = "bmp"
	BackendNull       = "null"
)

// Gauge sources for the percentage field.
const (
	GaugeBattery = "battery"
	GaugeCPU     = "cpu"
	GaugeMemory  = "mem"
	GaugeDisk    = "disk"
)

var (
	Backends     = []string{BackendSSD1306SPI, BackendSSD1306I2C, BackendSerial, BackendBMP, BackendNull}
	GaugeSources = []string{GaugeBattery, GaugeCPU, GaugeMemory, GaugeDisk}
)

type Config struct {
	Display Display `json:"display"`
	Face    Face    `json:"face"`
	Gauge   Gauge   `json:"gauge"`
	Log     Log     `json:"log"`
	// Refresh is a time.ParseDuration string, "1s" by default.
	Refresh string `json:"refresh"`
}

// Display selects and configures the panel.
type Display struct {
	Backend string `json:"backend"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`

	// serial
	Device string `json:"device"`
	Baud   int    `json:"baud"`

	// ssd1306
	SPIPort  string `json:"spi_port"`
	DCPin    string `json:"dc_pin"`
	I2CBus   string `json:"i2c_bus"`
	Rotated  bool   `json:"rotated"`
	Contrast int    `json:"contrast"`
	Invert   bool   `json:"invert"`

	// bmp
	Path  string `json:"path"`
	Scale int    `json:"scale"`
}

type Face struct {
	Seconds bool `json:"seconds"`
	Bold    bool `json:"bold"`
	// Seed of 0 seeds from the clock at start-up.
	Seed uint16 `json:"seed"`
}

type Gauge struct {
	Source   string `json:"source"`
	DiskPath string `json:"disk_path"`
}

type Log struct {
	Dir   string `json:"dir"`
	Debug bool   `json:"debug"`
}

// InvalidError reports a setting that failed validation.
type InvalidError struct {
	Field, Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

func Default() *Config {
	return &Config{
		Display: Display{
			Backend:  BackendSSD1306SPI,
			Width:    128,
			Height:   64,
			Device:   "/dev/ttyS1",
			Baud:     115200,
			DCPin:    "GPIO25",
			Contrast: 0xff,
			Path:     "lineclock.bmp",
			Scale:    1,
		},
		Face: Face{Bold: true},
		Gauge: Gauge{
			Source:   GaugeBattery,
			DiskPath: "/",
		},
		Refresh: "1s",
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load reads path over the defaults and applies environment overrides. A
// missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := json.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup("LINECLOCK_" + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup("LINECLOCK_" + key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &InvalidError{Field: "LINECLOCK_" + key, Reason: err.Error()}
		}
		*dst = n
		return nil
	}
	flag := func(key string, dst *bool) error {
		v, ok := lookup("LINECLOCK_" + key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return &InvalidError{Field: "LINECLOCK_" + key, Reason: err.Error()}
		}
		*dst = b
		return nil
	}

	str("BACKEND", &c.Display.Backend)
	str("DEVICE", &c.Display.Device)
	str("SPI_PORT", &c.Display.SPIPort)
	str("DC_PIN", &c.Display.DCPin)
	str("I2C_BUS", &c.Display.I2CBus)
	str("BMP_PATH", &c.Display.Path)
	str("GAUGE", &c.Gauge.Source)
	str("DISK_PATH", &c.Gauge.DiskPath)
	str("LOG_DIR", &c.Log.Dir)
	str("REFRESH", &c.Refresh)

	for _, f := range []func() error{
		func() error { return num("BAUD", &c.Display.Baud) },
		func() error { return num("CONTRAST", &c.Display.Contrast) },
		func() error { return num("SCALE", &c.Display.Scale) },
		func() error { return flag("SECONDS", &c.Face.Seconds) },
		func() error { return flag("BOLD", &c.Face.Bold) },
		func() error { return flag("INVERT", &c.Display.Invert) },
		func() error { return flag("DEBUG", &c.Log.Debug) },
	} {
		if err := f(); err != nil {
			return err
		}
	}

	if v, ok := lookup("LINECLOCK_SEED"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 0, 16)
		if err != nil {
			return &InvalidError{Field: "LINECLOCK_SEED", Reason: err.Error()}
		}
		c.Face.Seed = uint16(n)
	}
	return nil
}

// RefreshInterval parses Refresh. Call Validate first.
func (c *Config) RefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.Refresh)
	if err != nil {
		return time.Second
	}
	return d
}

func (c *Config) Validate() error {
	if !contains(Backends, c.Display.Backend) {
		return &InvalidError{Field: "display.backend", Reason: fmt.Sprintf("%q is not one of %s", c.Display.Backend, strings.Join(Backends, ", "))}
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return &InvalidError{Field: "display.width/height", Reason: "must be positive"}
	}
	if c.Display.Backend == BackendSerial && c.Display.Device == "" {
		return &InvalidError{Field: "display.device", Reason: "required for the serial backend"}
	}
	if c.Display.Backend == BackendSerial && c.Display.Baud <= 0 {
		return &InvalidError{Field: "display.baud", Reason: "must be positive"}
	}
	if c.Display.Backend == BackendSSD1306SPI && c.Display.DCPin == "" {
		return &InvalidError{Field: "display.dc_pin", Reason: "required for the ssd1306-spi backend"}
	}
	if c.Display.Contrast < 0 || c.Display.Contrast > 255 {
		return &InvalidError{Field: "display.contrast", Reason: "must be 0-255"}
	}
	if c.Display.Backend == BackendBMP && c.Display.Path == "" {
		return &InvalidError{Field: "display.path", Reason: "required for the bmp backend"}
	}
	if c.Display.Scale < 1 || c.Display.Scale > 16 {
		return &InvalidError{Field: "display.scale", Reason: "must be 1-16"}
	}
	if !contains(GaugeSources, c.Gauge.Source) {
		return &InvalidError{Field: "gauge.source", Reason: fmt.Sprintf("%q is not one of %s", c.Gauge.Source, strings.Join(GaugeSources, ", "))}
	}
	d, err := time.ParseDuration(c.Refresh)
	if err != nil {
		return &InvalidError{Field: "refresh", Reason: err.Error()}
	}
	if d < 100*time.Millisecond {
		return &InvalidError{Field: "refresh", Reason: "must be at least 100ms"}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
