// Command face-snapshot renders a single clock face to a BMP file.
//
//	face-snapshot -time 2026-10-14T09:41:00Z -percent 73 -scale 4 -out face.bmp
package main

import (
	"flag"
	"time"

	"lineclock/internal/face"
	"lineclock/internal/logger"
	"lineclock/internal/panel"
	"lineclock/internal/surface"
	"lineclock/internal/xorshift"
)

func main() {
	at := flag.String("time", "", "time to show, RFC3339 (default now)")
	percent := flag.Int("percent", 100, "percentage field, -1 for unknown")
	seed := flag.Uint("seed", uint(xorshift.DefaultSeed), "jitter seed")
	scale := flag.Int("scale", 4, "pixel size in the output image")
	width := flag.Int("width", 128, "surface width")
	height := flag.Int("height", 64, "surface height")
	seconds := flag.Bool("seconds", false, "draw the seconds field")
	bold := flag.Bool("bold", true, "draw the time twice, one pixel apart")
	out := flag.String("out", "face.bmp", "output file")
	flag.Parse()

	now := time.Now()
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			logger.Fatal("bad -time: %v", err)
		}
		now = t
	}
	if *seed > 0xffff {
		logger.Fatal("-seed %d does not fit in 16 bits", *seed)
	}
	if *width <= 0 || *height <= 0 || *scale < 1 {
		logger.Fatal("-width, -height and -scale must be positive")
	}

	sink := panel.NewBMP(*out, *scale)
	s := surface.New(*width, *height, sink)
	f := face.New(s, xorshift.New(uint16(*seed)), face.ScaledLayout(*width, *height), face.Options{Seconds: *seconds, Bold: *bold})
	if err := f.Draw(face.ReadingAt(now, *percent)); err != nil {
		logger.Fatal("%v", err)
	}
	logger.Info("wrote %s: %s, %d pixels lit", *out, now.Format(time.RFC3339), s.Count())
}
