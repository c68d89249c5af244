package lines

import (
	"image"
	"reflect"
	"testing"

	"lineclock/internal/xorshift"
)

var cell = Box{Left: 0, Top: 0, Right: 10, Bottom: 20}

func s(ax, ay, bx, by int) Segment { return seg(ax, ay, bx, by) }

var (
	top    = s(0, 0, 10, 0)
	middle = s(0, 10, 10, 10)
	bottom = s(0, 20, 10, 20)
	left   = s(0, 0, 0, 20)
	right  = s(10, 0, 10, 20)
)

func TestDigitGolden(t *testing.T) {
	golden := [10][]Segment{
		0: {top, left, right, bottom},
		1: {s(5, 0, 5, 20)},
		2: {top, middle, bottom, s(10, 0, 10, 10), s(0, 10, 0, 20)},
		3: {top, middle, bottom, right},
		4: {s(0, 0, 0, 10), right, middle},
		5: {top, middle, bottom, s(0, 0, 0, 10), s(10, 10, 10, 20)},
		6: {top, middle, bottom, left, s(10, 10, 10, 20)},
		7: {top, right},
		8: {top, middle, bottom, left, right},
		9: {top, middle, bottom, right, s(0, 0, 0, 10)},
	}
	for d, want := range golden {
		if got := Digit(d, cell); !reflect.DeepEqual(got, want) {
			t.Errorf("Digit(%d) = %v, want %v", d, got, want)
		}
	}
}

func TestDigitOutOfRange(t *testing.T) {
	for _, d := range []int{-1, 10, 42, -10} {
		if segs := Digit(d, cell); segs != nil {
			t.Errorf("Digit(%d) = %v, want nil", d, segs)
		}
	}
	rec := newRecorder(32, 32)
	NewPen(rec, xorshift.New(1)).Digit(10, cell, true)
	if len(rec.calls) != 0 {
		t.Fatalf("Digit(10) plotted %d pixels", len(rec.calls))
	}
}

func TestDigitPixelsReproducible(t *testing.T) {
	for d := 0; d < 10; d++ {
		a, b := newRecorder(32, 32), newRecorder(32, 32)
		NewPen(a, xorshift.New(1)).Digit(d, cell, false)
		NewPen(b, xorshift.New(999)).Digit(d, cell, false)
		if !reflect.DeepEqual(a.calls, b.calls) {
			t.Errorf("digit %d without jitter depends on the seed", d)
		}
	}
}

func TestDigitsScaleWithBox(t *testing.T) {
	small := Box{Left: 2, Top: 3, Right: 6, Bottom: 11}
	got := Digit(4, small)
	want := []Segment{s(2, 3, 2, 7), s(6, 3, 6, 11), s(2, 7, 6, 7)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Digit(4, %v) = %v, want %v", small, got, want)
	}
}

func TestLetterGolden(t *testing.T) {
	tests := []struct {
		c    rune
		want []Segment
	}{
		{'a', []Segment{top, left, right, middle}},
		{'d', []Segment{s(0, 0, 5, 0), left, s(5, 0, 10, 10), s(10, 10, 10, 20), bottom}},
		{'e', []Segment{left, top, middle, bottom}},
		{'f', []Segment{left, top, middle}},
		{'h', []Segment{left, right, middle}},
		{'m', []Segment{top, left, right, s(5, 0, 5, 20)}},
		{'n', []Segment{left, right, s(0, 0, 10, 20)}},
		{'r', []Segment{left, top, s(10, 0, 10, 10), middle, s(0, 10, 10, 20)}},
		{'t', []Segment{top, s(5, 0, 5, 20)}},
		{'u', []Segment{left, right, bottom}},
		{'w', []Segment{left, s(5, 0, 5, 20), right, bottom}},
	}
	for _, tt := range tests {
		got, ok := Letter(tt.c, cell)
		if !ok {
			t.Errorf("Letter(%q) not supported", tt.c)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Letter(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestLetterAliases(t *testing.T) {
	for _, tt := range []struct {
		c     rune
		digit int
	}{{'i', 1}, {'s', 5}, {'o', 0}, {'I', 1}, {'S', 5}, {'O', 0}} {
		got, ok := Letter(tt.c, cell)
		if !ok || !reflect.DeepEqual(got, Digit(tt.digit, cell)) {
			t.Errorf("Letter(%q) = %v, want digit %d's strokes", tt.c, got, tt.digit)
		}
	}
}

func TestLetterDenied(t *testing.T) {
	want := []Segment{top, bottom, left, right, s(0, 0, 10, 20), s(10, 0, 0, 20)}
	for _, c := range []rune{'b', 'z', '7', '?', ' ', 'é', '%'} {
		got, ok := Letter(c, cell)
		if ok {
			t.Errorf("Letter(%q) reported supported", c)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Letter(%q) = %v, want the denied glyph", c, got)
		}
		if Supported(c) {
			t.Errorf("Supported(%q) = true", c)
		}
	}
}

func TestDeniedIgnoresJitter(t *testing.T) {
	rng := xorshift.New(55)
	a := newRecorder(32, 32)
	NewPen(a, rng).Letter('q', cell, true)
	if rng.State() != 55 {
		t.Fatal("denied glyph consumed randomness")
	}
	b := newRecorder(32, 32)
	NewPen(b, xorshift.New(1)).Draw(Denied(cell), false)
	if !reflect.DeepEqual(a.calls, b.calls) {
		t.Fatal("denied glyph differs from its unjittered strokes")
	}
}

func TestDayNameLettersSupported(t *testing.T) {
	for _, c := range "sunmontuewedthufrisat" {
		if !Supported(c) {
			t.Errorf("day name letter %q has no glyph", c)
		}
	}
}

func TestColon(t *testing.T) {
	b := Box{Left: 0, Top: 0, Right: 8, Bottom: 30}
	// third = 10, mid = 4, radius 2
	want := []Segment{
		s(2, 6, 6, 6), s(2, 10, 6, 10), s(2, 20, 6, 20), s(2, 24, 6, 24),
		s(2, 6, 2, 10), s(6, 6, 6, 10), s(2, 20, 2, 24), s(6, 20, 6, 24),
	}
	if got := Colon(2, b); !reflect.DeepEqual(got, want) {
		t.Fatalf("Colon = %v, want %v", got, want)
	}
}

func TestPercent(t *testing.T) {
	b := Box{Left: 0, Top: 0, Right: 8, Bottom: 8}
	want := []Segment{
		s(0, 0, 2, 2), s(2, 0, 0, 2),
		s(8, 0, 0, 8),
		s(6, 6, 8, 8), s(8, 6, 6, 8),
	}
	if got := Percent(b); !reflect.DeepEqual(got, want) {
		t.Fatalf("Percent = %v, want %v", got, want)
	}
}

func TestDegenerateBox(t *testing.T) {
	b := Box{Left: 4, Top: 4, Right: 4, Bottom: 4}
	rec := newRecorder(16, 16)
	p := NewPen(rec, xorshift.New(1))
	for d := 0; d < 10; d++ {
		p.Digit(d, b, false)
	}
	p.Letter('x', b, false)
	p.Percent(b, false)
	p.Colon(0, b, false)
	for pt := range rec.set() {
		if pt != image.Pt(4, 4) {
			t.Fatalf("degenerate box lit %v", pt)
		}
	}
	if !b.Valid() {
		t.Fatal("zero-size box reported invalid")
	}
	if (Box{Left: 5, Right: 4}).Valid() {
		t.Fatal("inverted box reported valid")
	}
}

func TestGlyphJitterSharedFlag(t *testing.T) {
	// An 8 has five strokes, each taking one draw.
	rng := xorshift.New(8)
	NewPen(newRecorder(32, 32), rng).Digit(8, cell, true)
	ref := xorshift.New(8)
	for i := 0; i < 5; i++ {
		ref.Next()
	}
	if rng.State() != ref.State() {
		t.Fatal("jittered 8 did not take exactly one draw per stroke")
	}
}
