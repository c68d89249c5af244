// Package lines draws the clock glyphs. Every digit, letter and symbol is a
// short list of straight segments computed from a bounding box, so glyphs
// scale to any cell size and no font bitmap is stored.
package lines

import "image"

// Box is a glyph cell. All four edges are inclusive.
type Box struct {
	Left, Top, Right, Bottom int
}

// Segment is one straight stroke from A to B.
type Segment struct {
	A, B image.Point
}

// Mid returns the midpoint between a and b, truncated toward a.
func Mid(a, b int) int {
	return a + (b-a)/2
}

func (b Box) Valid() bool {
	return b.Left <= b.Right && b.Top <= b.Bottom
}

// MidX is the horizontal midpoint.
func (b Box) MidX() int { return Mid(b.Left, b.Right) }

// MidY is the vertical midpoint.
func (b Box) MidY() int { return Mid(b.Top, b.Bottom) }

func (b Box) Width() int  { return b.Right - b.Left }
func (b Box) Height() int { return b.Bottom - b.Top }

// Shift translates the box.
func (b Box) Shift(dx, dy int) Box {
	return Box{b.Left + dx, b.Top + dy, b.Right + dx, b.Bottom + dy}
}

func seg(ax, ay, bx, by int) Segment {
	return Segment{image.Pt(ax, ay), image.Pt(bx, by)}
}

// Edge strokes shared by most glyphs.

func (b Box) top() Segment    { return seg(b.Left, b.Top, b.Right, b.Top) }
func (b Box) bottom() Segment { return seg(b.Left, b.Bottom, b.Right, b.Bottom) }
func (b Box) left() Segment   { return seg(b.Left, b.Top, b.Left, b.Bottom) }
func (b Box) right() Segment  { return seg(b.Right, b.Top, b.Right, b.Bottom) }
func (b Box) middle() Segment { m := b.MidY(); return seg(b.Left, m, b.Right, m) }
