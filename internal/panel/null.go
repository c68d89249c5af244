package panel

import (
	"sync/atomic"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"lineclock/internal/logger"
)

// Null discards frames, counting them. Useful for dry runs on a host with no
// display attached.
type Null struct {
	frames atomic.Int64
	lit    atomic.Int64
}

func (n *Null) Flush(frame *image1bit.VerticalLSB) error {
	count := 0
	for _, b := range frame.Pix {
		for ; b != 0; b &= b - 1 {
			count++
		}
	}
	n.lit.Store(int64(count))
	f := n.frames.Add(1)
	logger.Debug("null panel: frame %d, %d pixels lit", f, count)
	return nil
}

// Frames is the number of frames flushed so far.
func (n *Null) Frames() int64 { return n.frames.Load() }

// Lit is the number of lit pixels in the last frame.
func (n *Null) Lit() int64 { return n.lit.Load() }

func (n *Null) Close() error { return nil }
