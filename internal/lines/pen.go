package lines

import (
	"image"
	"math"

	"lineclock/internal/xorshift"
)

// Plotter is anything pixels can be lit on. Points outside Bounds must be
// ignored by the plotter itself.
type Plotter interface {
	SetPixel(x, y int)
	Bounds() image.Rectangle
}

// Pen rasterizes segments onto a plotter, optionally wobbling each segment's
// endpoints by up to one pixel using rng.
type Pen struct {
	dst   Plotter
	rng   *xorshift.Source
	limit int
}

func NewPen(dst Plotter, rng *xorshift.Source) *Pen {
	r := dst.Bounds()
	w, h := float64(r.Dx()), float64(r.Dy())
	return &Pen{
		dst:   dst,
		rng:   rng,
		limit: int(math.Ceil(math.Hypot(w, h))) + 1,
	}
}

// Steps is the most pixels a single Line call will plot.
func (p *Pen) Steps() int { return p.limit }

// Rand draws the next value from the pen's random source, for callers that
// lay glyphs out with their own offsets.
func (p *Pen) Rand() uint16 { return p.rng.Next() }

// Line draws from a to b inclusive with Bresenham's algorithm. With jitter,
// a single random draw moves each of the four coordinates by -1, 0 or +1.
func (p *Pen) Line(a, b image.Point, jitter bool) {
	ax, ay, bx, by := a.X, a.Y, b.X, b.Y
	if jitter {
		r := p.rng.Next()
		ax += xorshift.Offset(r, 0)
		ay += xorshift.Offset(r, 2)
		bx += xorshift.Offset(r, 4)
		by += xorshift.Offset(r, 6)
	}

	dx, sx := abs(bx-ax), 1
	if ax >= bx {
		sx = -1
	}
	dy, sy := abs(by-ay), 1
	if ay >= by {
		sy = -1
	}

	var e int
	if dx > dy {
		e = dx / 2
	} else {
		e = -dy / 2
	}

	// The cap only matters if the stepping above is wrong or the endpoints are
	// further apart than the surface diagonal.
	for i := 0; i < p.limit; i++ {
		p.dst.SetPixel(ax, ay)
		if ax == bx && ay == by {
			return
		}
		e2 := e
		if e2 > -dx {
			e -= dy
			ax += sx
		}
		if e2 < dy {
			e += dx
			ay += sy
		}
	}
}

// Draw strokes every segment in order with the same jitter setting.
func (p *Pen) Draw(segs []Segment, jitter bool) {
	for _, s := range segs {
		p.Line(s.A, s.B, jitter)
	}
}

// Digit draws d (0-9) in b. Other values draw nothing.
func (p *Pen) Digit(d int, b Box, jitter bool) {
	p.Draw(Digit(d, b), jitter)
}

// Letter draws c in b. Unsupported letters draw the denied glyph, which is
// never jittered.
func (p *Pen) Letter(c rune, b Box, jitter bool) {
	segs, ok := Letter(c, b)
	p.Draw(segs, jitter && ok)
}

func (p *Pen) Colon(radius int, b Box, jitter bool) {
	p.Draw(Colon(radius, b), jitter)
}

func (p *Pen) Percent(b Box, jitter bool) {
	p.Draw(Percent(b), jitter)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
