package lines

import "unicode"

// Only the letters needed for the day names: sun mon tue wed thu fri sat.
var letters = map[rune]glyphFunc{
	'a': letterA,
	'd': letterD,
	'e': letterE,
	'f': letterF,
	'h': letterH,
	'i': one,
	'm': letterM,
	'n': letterN,
	'o': zero,
	'r': letterR,
	's': five,
	't': letterT,
	'u': letterU,
	'w': letterW,
}

// Letter returns the strokes of c in b. Upper case is folded to lower case.
// ok is false for unsupported input, in which case the denied glyph is
// returned.
func Letter(c rune, b Box) (segs []Segment, ok bool) {
	fn, ok := letters[unicode.ToLower(c)]
	if !ok {
		return Denied(b), false
	}
	return fn(b), true
}

// Supported reports whether c has a letter glyph.
func Supported(c rune) bool {
	_, ok := letters[unicode.ToLower(c)]
	return ok
}

// Denied is a box with both diagonals, drawn for anything we have no glyph
// for.
func Denied(b Box) []Segment {
	return []Segment{
		b.top(), b.bottom(), b.left(), b.right(),
		seg(b.Left, b.Top, b.Right, b.Bottom),
		seg(b.Right, b.Top, b.Left, b.Bottom),
	}
}

func letterA(b Box) []Segment {
	return []Segment{b.top(), b.left(), b.right(), b.middle()}
}

func letterD(b Box) []Segment {
	mw, mh := b.MidX(), b.MidY()
	return []Segment{
		seg(b.Left, b.Top, mw, b.Top),
		b.left(),
		seg(mw, b.Top, b.Right, mh),
		seg(b.Right, mh, b.Right, b.Bottom),
		b.bottom(),
	}
}

func letterE(b Box) []Segment {
	return []Segment{b.left(), b.top(), b.middle(), b.bottom()}
}

func letterF(b Box) []Segment {
	return []Segment{b.left(), b.top(), b.middle()}
}

func letterH(b Box) []Segment {
	return []Segment{b.left(), b.right(), b.middle()}
}

func letterM(b Box) []Segment {
	m := b.MidX()
	return []Segment{b.top(), b.left(), b.right(), seg(m, b.Top, m, b.Bottom)}
}

func letterN(b Box) []Segment {
	return []Segment{b.left(), b.right(), seg(b.Left, b.Top, b.Right, b.Bottom)}
}

func letterR(b Box) []Segment {
	m := b.MidY()
	return []Segment{
		b.left(),
		b.top(),
		seg(b.Right, b.Top, b.Right, m),
		b.middle(),
		seg(b.Left, m, b.Right, b.Bottom),
	}
}

func letterT(b Box) []Segment {
	m := b.MidX()
	return []Segment{b.top(), seg(m, b.Top, m, b.Bottom)}
}

func letterU(b Box) []Segment {
	return []Segment{b.left(), b.right(), b.bottom()}
}

func letterW(b Box) []Segment {
	m := b.MidX()
	return []Segment{b.left(), seg(m, b.Top, m, b.Bottom), b.right(), b.bottom()}
}
