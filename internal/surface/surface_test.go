package surface

import (
	"errors"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

type captureSink struct {
	frames [][]byte
	err    error
}

func (c *captureSink) Flush(frame *image1bit.VerticalLSB) error {
	c.frames = append(c.frames, append([]byte(nil), frame.Pix...))
	return c.err
}

func TestSetPixelPacking(t *testing.T) {
	s := New(128, 64, nil)
	if len(s.Bytes()) != 1024 {
		t.Fatalf("buffer size %d, want 1024", len(s.Bytes()))
	}
	tests := []struct {
		x, y  int
		index int
		bit   byte
	}{
		{0, 0, 0, 0x01},
		{1, 0, 1, 0x01},
		{0, 7, 0, 0x80},
		{0, 8, 128, 0x01},
		{127, 63, 1023, 0x80},
		{5, 19, 2*128 + 5, 0x08},
	}
	for _, tt := range tests {
		s.Clear(0)
		s.SetPixel(tt.x, tt.y)
		if got := s.Bytes()[tt.index]; got != tt.bit {
			t.Errorf("SetPixel(%d,%d): byte %d = %#02x, want %#02x", tt.x, tt.y, tt.index, got, tt.bit)
		}
		if !s.Pixel(tt.x, tt.y) {
			t.Errorf("Pixel(%d,%d) not set", tt.x, tt.y)
		}
		if s.Count() != 1 {
			t.Errorf("SetPixel(%d,%d) lit %d pixels", tt.x, tt.y, s.Count())
		}
	}
}

func TestSetPixelOutOfRangeIsNoop(t *testing.T) {
	s := New(128, 64, nil)
	// Light the edge pixels so corruption of neighbours would show.
	edges := [][2]int{{0, 0}, {127, 0}, {0, 63}, {127, 63}, {64, 0}, {64, 63}, {0, 32}, {127, 32}}
	for _, p := range edges {
		s.SetPixel(p[0], p[1])
	}
	before := append([]byte(nil), s.Bytes()...)

	for _, p := range [][2]int{
		{-1, 0}, {-1, 32}, {-1, 63},
		{128, 0}, {128, 32}, {128, 63},
		{0, -1}, {64, -1}, {127, -1},
		{0, 64}, {64, 64}, {127, 64},
		{-1, -1}, {128, 64},
	} {
		s.SetPixel(p[0], p[1])
		if s.Pixel(p[0], p[1]) {
			t.Errorf("off-surface pixel %v reads as set", p)
		}
	}
	for i, b := range s.Bytes() {
		if b != before[i] {
			t.Fatalf("byte %d changed from %#02x to %#02x", i, before[i], b)
		}
	}
}

func TestSetPixelIsSticky(t *testing.T) {
	s := New(16, 16, nil)
	s.SetPixel(3, 4)
	s.SetPixel(3, 5)
	s.SetPixel(3, 4)
	if !s.Pixel(3, 4) || !s.Pixel(3, 5) {
		t.Fatal("pixels lost after repeated sets")
	}
	if s.Count() != 2 {
		t.Fatalf("count %d, want 2", s.Count())
	}
}

func TestClear(t *testing.T) {
	s := New(128, 64, nil)
	s.SetPixel(10, 10)
	s.Clear(0)
	if s.Count() != 0 {
		t.Fatalf("clear(0) left %d pixels", s.Count())
	}
	s.Clear(0xff)
	if s.Count() != 128*64 {
		t.Fatalf("clear(0xff) lit %d pixels", s.Count())
	}
}

func TestOddHeight(t *testing.T) {
	s := New(10, 13, nil)
	s.SetPixel(9, 12)
	if !s.Pixel(9, 12) {
		t.Fatal("bottom-right pixel of a 10x13 surface not set")
	}
	s.SetPixel(9, 13)
	if s.Count() != 1 {
		t.Fatalf("count %d, want 1", s.Count())
	}
}

func TestFlush(t *testing.T) {
	sink := &captureSink{}
	s := New(128, 64, sink)
	s.SetPixel(2, 9)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(sink.frames) != 1 {
		t.Fatalf("sink got %d frames", len(sink.frames))
	}
	if sink.frames[0][128+2] != 0x02 {
		t.Fatalf("flushed byte = %#02x, want 0x02", sink.frames[0][130])
	}

	sink.err = errors.New("bus gone")
	if err := s.Flush(); !errors.Is(err, sink.err) {
		t.Fatalf("Flush error = %v, want %v", err, sink.err)
	}
}

func TestFlushWithoutSink(t *testing.T) {
	s := New(8, 8, nil)
	if err := s.Flush(); !errors.Is(err, ErrNoSink) {
		t.Fatalf("Flush error = %v, want ErrNoSink", err)
	}
}
