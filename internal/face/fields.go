package face

import (
	"lineclock/internal/lines"
	"lineclock/internal/xorshift"
)

// DayNames is indexed by weekday, Sunday first.
var DayNames = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Time draws h:mm for a 12-hour h. The box is split 15% for the leading 1
// (only drawn from 10 o'clock), 25% for each remaining digit and what is left
// around the middle for the colon. Every stroke is jittered.
func Time(p *lines.Pen, b lines.Box, hour, minute int) {
	const gap = 2
	width := b.Width()

	w15 := width * 15 / 100
	if hour >= 10 {
		p.Digit(1, lines.Box{Left: b.Left, Top: b.Top, Right: b.Left + w15 - gap, Bottom: b.Bottom}, true)
	}

	w25 := width / 4
	p.Digit(hour%10, lines.Box{
		Left: b.Left + w15 + gap, Top: b.Top,
		Right: b.Left + w15 + w25 - gap, Bottom: b.Bottom,
	}, true)
	p.Digit(minute/10, lines.Box{
		Left: b.Right - w25 - w25 + gap, Top: b.Top,
		Right: b.Right - w25 - gap, Bottom: b.Bottom,
	}, true)
	p.Digit(minute%10, lines.Box{
		Left: b.Right - w25 + gap, Top: b.Top,
		Right: b.Right - gap, Bottom: b.Bottom,
	}, true)

	w50 := width / 2
	p.Colon(2, lines.Box{Left: b.Left + w15 + w25 + 1, Top: b.Top, Right: b.Left + w50 - 1, Bottom: b.Bottom}, true)
}

// Seconds draws ss in two halves, each digit nudged up or down on its own.
func Seconds(p *lines.Pen, b lines.Box, second int) {
	const gap = 1
	mid := b.MidX()

	r := p.Rand()
	dy := xorshift.Offset(r, 0)
	p.Digit(second/10, lines.Box{Left: b.Left, Top: b.Top + dy, Right: mid - gap, Bottom: b.Bottom + dy}, false)
	dy = xorshift.Offset(r, 2)
	p.Digit(second%10, lines.Box{Left: mid + gap, Top: b.Top + dy, Right: b.Right, Bottom: b.Bottom + dy}, false)
}

// AmPm draws an A or a P in the left half and an M in the right half. The A
// and P share their top and left strokes; the M is the same either way.
func AmPm(p *lines.Pen, b lines.Box, am bool) {
	const gap = 3
	mid := b.MidX()
	upper := b.Top + b.Height()/3
	lower := b.Bottom - b.Height()/3

	p.Line(pt(b.Left, b.Top), pt(mid-gap, b.Top), true)
	p.Line(pt(b.Left, b.Top), pt(b.Left, b.Bottom), true)

	if am {
		p.Line(pt(mid-gap, b.Top), pt(mid-gap, b.Bottom), true)
		p.Line(pt(b.Left, lower), pt(mid-gap, lower), true)
	} else {
		p.Line(pt(mid-gap, b.Top), pt(mid-gap, upper), true)
		p.Line(pt(b.Left, upper), pt(mid-gap, upper), true)
	}

	vee := lines.Mid(mid, b.Right)
	p.Line(pt(mid, b.Top), pt(mid, b.Bottom), true)
	p.Line(pt(b.Right, b.Top), pt(b.Right, b.Bottom), true)
	p.Line(pt(mid, b.Top), pt(vee, lower), true)
	p.Line(pt(b.Right, b.Top), pt(vee, lower), true)
}

// Percentage draws pc followed by a percent sign in quarters of the box. The
// hundreds 1 is only drawn from 100 and the tens digit only from 10. All
// glyphs share one vertical offset and get their own horizontal offset.
func Percentage(p *lines.Pen, b lines.Box, pc int) {
	const gap = 1
	r := p.Rand()
	dy := xorshift.Offset(r, 0)
	mid := b.MidX()
	w25 := b.Width() / 4

	cell := func(left, right, dx int) lines.Box {
		return lines.Box{
			Left:   left + gap + dx,
			Top:    b.Top + gap + dy,
			Right:  right - gap + dx,
			Bottom: b.Bottom - gap + dy,
		}
	}

	if pc >= 100 {
		p.Digit(1, cell(b.Left, b.Left+w25, xorshift.Offset(r, 2)), false)
	}
	if pc >= 10 {
		p.Digit((pc/10)%10, cell(mid-w25, mid, xorshift.Offset(r, 4)), false)
	}
	p.Digit(pc%10, cell(mid, mid+w25, xorshift.Offset(r, 6)), false)
	p.Percent(cell(b.Right-w25, b.Right, xorshift.Offset(r, 8)), false)
}

// Date draws "ddd d/mm": the day name from the left edge, then the day of
// month and month starting just left of centre. The box is cut into eighths,
// the slash takes half a cell. Each glyph gets its own offsets; the day tens
// digit is only drawn from the 10th.
func Date(p *lines.Pen, b lines.Box, month, day, weekday int) {
	const gap = 1
	w8 := b.Width() / 8

	cell := func(left, dy int) lines.Box {
		return lines.Box{Left: left + gap, Top: b.Top + dy, Right: left + w8 - gap, Bottom: b.Bottom + dy}
	}

	r := p.Rand()
	dy := xorshift.Offset(r, 0)

	name := "???"
	if weekday >= 0 && weekday < len(DayNames) {
		name = DayNames[weekday]
	}

	x := b.Left + xorshift.Offset(r, 12)
	for i, c := range name {
		p.Letter(c, cell(x, dy), false)
		x += w8 + xorshift.Offset(r, uint(i*4))
		dy = xorshift.Offset(r, uint(i*4+2))
	}

	r = p.Rand()

	x = b.Right - b.Width()/2 - w8/2 + xorshift.Offset(r, 0)
	if day >= 10 {
		p.Digit(day/10, cell(x, dy), false)
	}
	x += w8 + xorshift.Offset(r, 2)
	dy = xorshift.Offset(r, 4)
	p.Digit(day%10, cell(x, dy), false)
	x += w8 + xorshift.Offset(r, 6)

	p.Line(pt(x+w8/2-gap, b.Top), pt(x+gap, b.Bottom), false)
	x += w8/2 + xorshift.Offset(r, 8)
	dy = xorshift.Offset(r, 10)

	p.Digit(month/10, cell(x, dy), false)
	x += w8 + xorshift.Offset(r, 12)
	dy = xorshift.Offset(r, 14)
	p.Digit(month%10, cell(x, dy), false)
}
