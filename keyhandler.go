package main

import (
	"context"
	"sync/atomic"
	"time"

	"lineclock/internal/config"
	"lineclock/internal/logger"
)

// Key codes sent by the front-panel controller.
const (
	KEY_HELP  = 0x41
	KEY_LEFT  = 0x42
	KEY_ESC   = 0x43
	KEY_UP    = 0x44
	KEY_ENTER = 0x45
	KEY_DOWN  = 0x46
	KEY_RIGHT = 0x47
)

const contrastStep = 32

// Settings are the knobs the keys turn. They are read by the render loop on
// the next frame.
type Settings struct {
	Gauge    atomic.Int32 // index into config.GaugeSources
	Contrast atomic.Int32
	Seconds  atomic.Bool
	Invert   atomic.Bool
}

func NewSettings(cfg *config.Config) *Settings {
	s := &Settings{}
	for i, src := range config.GaugeSources {
		if src == cfg.Gauge.Source {
			s.Gauge.Store(int32(i))
		}
	}
	s.Contrast.Store(int32(cfg.Display.Contrast))
	s.Seconds.Store(cfg.Face.Seconds)
	s.Invert.Store(cfg.Display.Invert)
	return s
}

// KeyReader is the read half of a serial port.
type KeyReader interface {
	SetReadTimeout(t time.Duration) error
	Read(p []byte) (int, error)
}

type KeyHandler struct {
	Settings   *Settings
	RedrawChan chan struct{}
}

// Start polls port for key presses until ctx is done.
func (kh *KeyHandler) Start(ctx context.Context, port KeyReader) {
	go func() {
		buf := make([]byte, 1)
		if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
			logger.Warn("key reader: set timeout: %v", err)
		}
		for ctx.Err() == nil {
			n, err := port.Read(buf)
			if err != nil {
				logger.Warn("key reader stopped: %v", err)
				return
			}
			if n == 1 {
				logger.Debug("key pressed: 0x%02X", buf[0])
				if kh.handleKey(buf[0]) {
					select {
					case kh.RedrawChan <- struct{}{}:
					default:
					}
				}
			}
		}
	}()
}

func (kh *KeyHandler) handleKey(key byte) bool {
	s := kh.Settings
	n := int32(len(config.GaugeSources))
	switch key {
	case KEY_LEFT:
		s.Gauge.Store((s.Gauge.Load() + n - 1) % n)
	case KEY_RIGHT:
		s.Gauge.Store((s.Gauge.Load() + 1) % n)
	case KEY_UP:
		s.Contrast.Store(min(s.Contrast.Load()+contrastStep, 255))
	case KEY_DOWN:
		s.Contrast.Store(max(s.Contrast.Load()-contrastStep, 0))
	case KEY_ENTER:
		s.Seconds.Store(!s.Seconds.Load())
	case KEY_HELP:
		s.Invert.Store(!s.Invert.Load())
	case KEY_ESC:
	default:
		return false
	}
	return true
}
