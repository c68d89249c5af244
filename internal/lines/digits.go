package lines

type glyphFunc func(b Box) []Segment

var digits = [10]glyphFunc{
	zero, one, two, three, four, five, six, seven, eight, nine,
}

// Digit returns the strokes of digit d in b, or nil when d is not 0-9.
func Digit(d int, b Box) []Segment {
	if d < 0 || d >= len(digits) {
		return nil
	}
	return digits[d](b)
}

func zero(b Box) []Segment {
	return []Segment{b.top(), b.left(), b.right(), b.bottom()}
}

func one(b Box) []Segment {
	m := b.MidX()
	return []Segment{seg(m, b.Top, m, b.Bottom)}
}

func two(b Box) []Segment {
	m := b.MidY()
	return []Segment{
		b.top(), b.middle(), b.bottom(),
		seg(b.Right, b.Top, b.Right, m),
		seg(b.Left, m, b.Left, b.Bottom),
	}
}

func three(b Box) []Segment {
	return []Segment{b.top(), b.middle(), b.bottom(), b.right()}
}

func four(b Box) []Segment {
	m := b.MidY()
	return []Segment{
		seg(b.Left, b.Top, b.Left, m),
		b.right(),
		b.middle(),
	}
}

func five(b Box) []Segment {
	m := b.MidY()
	return []Segment{
		b.top(), b.middle(), b.bottom(),
		seg(b.Left, b.Top, b.Left, m),
		seg(b.Right, m, b.Right, b.Bottom),
	}
}

func six(b Box) []Segment {
	m := b.MidY()
	return []Segment{
		b.top(), b.middle(), b.bottom(),
		b.left(),
		seg(b.Right, m, b.Right, b.Bottom),
	}
}

func seven(b Box) []Segment {
	return []Segment{b.top(), b.right()}
}

func eight(b Box) []Segment {
	return []Segment{b.top(), b.middle(), b.bottom(), b.left(), b.right()}
}

func nine(b Box) []Segment {
	m := b.MidY()
	return []Segment{
		b.top(), b.middle(), b.bottom(),
		b.right(),
		seg(b.Left, b.Top, b.Left, m),
	}
}
