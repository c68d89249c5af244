// Package panel pushes finished frames to a physical or virtual display.
package panel

import (
	"errors"
	"fmt"
	"io"

	"lineclock/internal/config"
	"lineclock/internal/surface"
)

var (
	ErrUnknownBackend = errors.New("panel: unknown backend")
	ErrFrameSize      = errors.New("panel: frame size mismatch")
)

// Panel receives frames until closed.
type Panel interface {
	surface.Sink
	io.Closer
}

// Contraster is implemented by panels with adjustable brightness.
type Contraster interface {
	SetContrast(level byte) error
}

// Inverter is implemented by panels that can swap lit and unlit pixels.
type Inverter interface {
	Invert(on bool) error
}

// Open builds the panel selected by cfg.Backend.
func Open(cfg config.Display) (Panel, error) {
	switch cfg.Backend {
	case config.BackendSSD1306SPI, config.BackendSSD1306I2C:
		return OpenOLED(cfg)
	case config.BackendSerial:
		return OpenSerial(cfg.Device, cfg.Baud)
	case config.BackendBMP:
		return NewBMP(cfg.Path, cfg.Scale), nil
	case config.BackendNull:
		return &Null{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
