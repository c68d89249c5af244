package lines

// Colon is two hollow squares of side 2*radius centred on the box's
// horizontal midpoint, one ending at a third of the height and one starting
// at two thirds.
func Colon(radius int, b Box) []Segment {
	third := b.Height() / 3
	m := b.MidX()
	d := radius * 2
	l, r := m-radius, m+radius
	upper, lower := b.Top+third, b.Bottom-third

	return []Segment{
		seg(l, upper-d, r, upper-d),
		seg(l, upper, r, upper),
		seg(l, lower, r, lower),
		seg(l, lower+d, r, lower+d),

		seg(l, upper-d, l, upper),
		seg(r, upper-d, r, upper),
		seg(l, lower, l, lower+d),
		seg(r, lower, r, lower+d),
	}
}

// Percent is a crossed quarter-size cell in the top left and bottom right
// corners joined by a diagonal.
func Percent(b Box) []Segment {
	dw := b.Width() / 4
	dh := b.Height() / 4

	return []Segment{
		seg(b.Left, b.Top, b.Left+dw, b.Top+dh),
		seg(b.Left+dw, b.Top, b.Left, b.Top+dh),

		seg(b.Right, b.Top, b.Left, b.Bottom),

		seg(b.Right-dw, b.Bottom-dh, b.Right, b.Bottom),
		seg(b.Right, b.Bottom-dh, b.Right-dw, b.Bottom),
	}
}
