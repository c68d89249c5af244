// Package face lays the clock fields out on a surface and draws them with
// line glyphs.
package face

import (
	"image"
	"time"

	"lineclock/internal/lines"
	"lineclock/internal/surface"
	"lineclock/internal/xorshift"
)

// Reading is everything one frame shows. Hour is 0-23, Weekday 0-6 with
// Sunday as 0, Percent is usually 0-100.
type Reading struct {
	Month, Day           int
	Hour, Minute, Second int
	Weekday              int
	Percent              int
}

// ReadingAt fills a Reading from t and a gauge percentage.
func ReadingAt(t time.Time, percent int) Reading {
	return Reading{
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: int(t.Weekday()),
		Percent: percent,
	}
}

// TwelveHour converts a 0-23 hour for display: midnight is 12 AM, noon is
// 12 PM.
func TwelveHour(hour int) (h int, am bool) {
	am = hour < 12
	h = hour
	if h == 0 {
		h = 12
	}
	if h > 12 {
		h -= 12
	}
	return h, am
}

// Layout places each field. TimeInset is the second, one pixel smaller pass
// of the time used for the bold effect.
type Layout struct {
	Time, TimeInset lines.Box
	Seconds         lines.Box
	AmPm            lines.Box
	Date            lines.Box
	Percent         lines.Box
}

const (
	refWidth  = 128
	refHeight = 64
)

// DefaultLayout is the 128x64 arrangement. Boxes stay clear of the edges so
// jitter has room.
func DefaultLayout() Layout {
	return Layout{
		Time:      lines.Box{Left: 4, Top: 4, Right: 96, Bottom: 46},
		TimeInset: lines.Box{Left: 5, Top: 5, Right: 95, Bottom: 45},
		Seconds:   lines.Box{Left: 100, Top: 34, Right: 124, Bottom: 46},
		AmPm:      lines.Box{Left: 100, Top: 8, Right: 124, Bottom: 30},
		Date:      lines.Box{Left: 4, Top: 54, Right: 96, Bottom: 62},
		Percent:   lines.Box{Left: 100, Top: 54, Right: 124, Bottom: 62},
	}
}

// ScaledLayout stretches DefaultLayout to a width x height surface. The inset
// time box is kept exactly one pixel inside the outer one.
func ScaledLayout(width, height int) Layout {
	if width == refWidth && height == refHeight {
		return DefaultLayout()
	}
	scale := func(b lines.Box) lines.Box {
		return lines.Box{
			Left:   b.Left * width / refWidth,
			Top:    b.Top * height / refHeight,
			Right:  b.Right * width / refWidth,
			Bottom: b.Bottom * height / refHeight,
		}
	}
	d := DefaultLayout()
	l := Layout{
		Time:    scale(d.Time),
		Seconds: scale(d.Seconds),
		AmPm:    scale(d.AmPm),
		Date:    scale(d.Date),
		Percent: scale(d.Percent),
	}
	l.TimeInset = lines.Box{Left: l.Time.Left + 1, Top: l.Time.Top + 1, Right: l.Time.Right - 1, Bottom: l.Time.Bottom - 1}
	return l
}

type Options struct {
	// Seconds adds the ss field under the AM/PM marker.
	Seconds bool
	// Bold draws the time twice, offset by a pixel.
	Bold bool
}

// Face owns the drawing of whole frames. It is not safe for concurrent use:
// one goroutine should do all redraws.
type Face struct {
	surf   *surface.Surface
	pen    *lines.Pen
	layout Layout
	opts   Options
}

func New(s *surface.Surface, rng *xorshift.Source, layout Layout, opts Options) *Face {
	return &Face{
		surf:   s,
		pen:    lines.NewPen(s, rng),
		layout: layout,
		opts:   opts,
	}
}

func (f *Face) Options() Options     { return f.opts }
func (f *Face) SetOptions(o Options) { f.opts = o }

// Render clears the surface and draws every field of r. Drawing the time
// twice gives two independently jittered copies, which reads as a retraced
// pen stroke.
func (f *Face) Render(r Reading) {
	hour, am := TwelveHour(r.Hour)

	f.surf.Clear(0)
	Time(f.pen, f.layout.Time, hour, r.Minute)
	if f.opts.Bold {
		Time(f.pen, f.layout.TimeInset, hour, r.Minute)
	}
	if f.opts.Seconds {
		Seconds(f.pen, f.layout.Seconds, r.Second)
	}
	AmPm(f.pen, f.layout.AmPm, am)
	Date(f.pen, f.layout.Date, r.Month, r.Day, r.Weekday)
	Percentage(f.pen, f.layout.Percent, r.Percent)
}

// Draw renders r and flushes the frame to the panel.
func (f *Face) Draw(r Reading) error {
	f.Render(r)
	return f.surf.Flush()
}

func pt(x, y int) image.Point {
	return image.Pt(x, y)
}
