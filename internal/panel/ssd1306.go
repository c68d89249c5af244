package panel

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3"

	"lineclock/internal/config"
	"lineclock/internal/logger"
)

// OLED drives an SSD1306 module over SPI (with a data/command GPIO) or I2C.
type OLED struct {
	dev *ssd1306.Dev
	bus io.Closer
	w   int
	h   int
}

// OpenOLED initialises the host drivers and the controller named by cfg.
func OpenOLED(cfg config.Display) (*OLED, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("panel: periph host init: %w", err)
	}
	opts := &ssd1306.Opts{W: cfg.Width, H: cfg.Height, Rotated: cfg.Rotated}

	o := &OLED{w: cfg.Width, h: cfg.Height}
	switch cfg.Backend {
	case config.BackendSSD1306SPI:
		port, err := spireg.Open(cfg.SPIPort)
		if err != nil {
			return nil, fmt.Errorf("panel: open spi port %q: %w", cfg.SPIPort, err)
		}
		dc := gpioreg.ByName(cfg.DCPin)
		if dc == nil {
			port.Close()
			return nil, fmt.Errorf("panel: no gpio named %q for data/command", cfg.DCPin)
		}
		dev, err := ssd1306.NewSPI(port, dc, opts)
		if err != nil {
			port.Close()
			return nil, fmt.Errorf("panel: ssd1306 over spi: %w", err)
		}
		o.dev, o.bus = dev, port
	case config.BackendSSD1306I2C:
		bus, err := i2creg.Open(cfg.I2CBus)
		if err != nil {
			return nil, fmt.Errorf("panel: open i2c bus %q: %w", cfg.I2CBus, err)
		}
		dev, err := ssd1306.NewI2C(bus, opts)
		if err != nil {
			bus.Close()
			return nil, fmt.Errorf("panel: ssd1306 over i2c: %w", err)
		}
		o.dev, o.bus = dev, bus
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	logger.Info("ssd1306 %dx%d ready on %v", cfg.Width, cfg.Height, o.dev)
	return o, nil
}

// Flush writes the frame. Surface and controller share the page layout, so
// the buffer goes out as is.
func (o *OLED) Flush(frame *image1bit.VerticalLSB) error {
	if want := o.w * ((o.h + 7) / 8); len(frame.Pix) != want {
		return fmt.Errorf("%w: got %d bytes, panel takes %d", ErrFrameSize, len(frame.Pix), want)
	}
	if _, err := o.dev.Write(frame.Pix); err != nil {
		return fmt.Errorf("panel: ssd1306 write: %w", err)
	}
	return nil
}

func (o *OLED) SetContrast(level byte) error {
	return o.dev.SetContrast(level)
}

func (o *OLED) Invert(on bool) error {
	return o.dev.Invert(on)
}

// Close blanks the controller and releases the bus.
func (o *OLED) Close() error {
	return errors.Join(o.dev.Halt(), o.bus.Close())
}
