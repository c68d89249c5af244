// Package surface holds the monochrome frame buffer the clock face is drawn
// into.
//
// Pixels are packed the way SSD1306 display RAM is laid out: each byte covers
// eight vertically stacked pixels of one column, least significant bit on
// top, so byte (y/8)*width + x holds pixel (x, y) at bit y%8. The packed
// buffer can be handed straight to a panel without repacking.
package surface

import (
	"errors"
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// ErrNoSink is returned by Flush on a surface created without a panel.
var ErrNoSink = errors.New("surface: no sink attached")

// Sink receives finished frames.
type Sink interface {
	Flush(frame *image1bit.VerticalLSB) error
}

type Surface struct {
	width, height int
	frame         *image1bit.VerticalLSB
	sink          Sink
}

// New creates a width x height surface flushing into sink. sink may be nil
// for software-only rendering.
func New(width, height int, sink Sink) *Surface {
	return &Surface{
		width:  width,
		height: height,
		frame:  image1bit.NewVerticalLSB(image.Rect(0, 0, width, height)),
		sink:   sink,
	}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// SetPixel turns on the pixel at (x, y). Coordinates off the surface are
// dropped.
func (s *Surface) SetPixel(x, y int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.frame.Pix[(y/8)*s.width+x] |= 1 << uint(y%8)
}

// Pixel reports whether (x, y) is set. Off-surface coordinates read as unset.
func (s *Surface) Pixel(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.frame.Pix[(y/8)*s.width+x]&(1<<uint(y%8)) != 0
}

// Clear fills every byte of the buffer with fill. 0 blanks the surface,
// 0xff lights it.
func (s *Surface) Clear(fill byte) {
	for i := range s.frame.Pix {
		s.frame.Pix[i] = fill
	}
}

// Count returns the number of lit pixels.
func (s *Surface) Count() int {
	n := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if s.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

// Bytes exposes the packed buffer. Callers must not retain it across draws.
func (s *Surface) Bytes() []byte {
	return s.frame.Pix
}

// Image returns the frame as an image; lit pixels are image1bit.On.
func (s *Surface) Image() *image1bit.VerticalLSB {
	return s.frame
}

// Flush sends the current frame to the attached sink.
func (s *Surface) Flush() error {
	if s.sink == nil {
		return ErrNoSink
	}
	return s.sink.Flush(s.frame)
}
