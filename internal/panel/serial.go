package panel

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"lineclock/internal/logger"
)

const (
	serialBlock    = 64
	serialCmdDelay = 5 * time.Millisecond
)

var (
	serialReset      = []byte{0x1b, 0x40}
	serialClear      = []byte{0x0b}
	serialHome       = []byte{0x0c}
	serialFrameStart = []byte{0x1b, 0x47}
)

// Serial is the front-panel LCD found on some NAS boxes: a 128x64 graphic
// display behind a UART that also reports key presses. Frames are sent in
// the controller's native column-paged layout.
type Serial struct {
	port  serial.Port
	w     io.Writer
	sleep func(time.Duration)
	ready bool
	first bool
}

// OpenSerial opens device at baud, 8N1.
func OpenSerial(device string, baud int) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("panel: open serial port %s: %w", device, err)
	}
	s := newSerial(port, time.Sleep)
	s.port = port
	return s, nil
}

func newSerial(w io.Writer, sleep func(time.Duration)) *Serial {
	return &Serial{w: w, sleep: sleep, first: true}
}

// Port exposes the UART so key presses can be read from it.
func (s *Serial) Port() serial.Port {
	return s.port
}

func (s *Serial) write(data []byte) error {
	n, err := s.w.Write(data)
	if err != nil {
		return fmt.Errorf("panel: serial write: %w", err)
	}
	if n < len(data) {
		return fmt.Errorf("panel: serial write: wrote only %d of %d bytes", n, len(data))
	}
	return nil
}

func (s *Serial) init() error {
	for _, cmd := range [][]byte{serialReset, serialClear, serialHome} {
		if err := s.write(cmd); err != nil {
			return err
		}
		s.sleep(serialCmdDelay)
	}
	s.ready = true
	return nil
}

// Flush sends one frame. The controller wants the 64-byte blocks of the
// buffer in two passes: blocks 0, 2, 4... then 1, 3, 5...
func (s *Serial) Flush(frame *image1bit.VerticalLSB) error {
	if !s.ready {
		if err := s.init(); err != nil {
			return err
		}
	}
	pix := frame.Pix
	if len(pix)%serialBlock != 0 {
		return fmt.Errorf("%w: %d bytes is not a whole number of %d-byte blocks", ErrFrameSize, len(pix), serialBlock)
	}

	if err := s.write(serialFrameStart); err != nil {
		return err
	}
	if s.first {
		// The controller needs a moment after its first frame command.
		s.sleep(serialCmdDelay * 100)
		s.first = false
	}
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(pix); i += serialBlock {
			if (i/serialBlock)%2 != pass {
				continue
			}
			if err := s.write(pix[i : i+serialBlock]); err != nil {
				return err
			}
		}
	}
	logger.Debug("serial frame sent: %d bytes", len(pix))
	return nil
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}
