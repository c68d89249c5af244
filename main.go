// Command lineclock draws a hand-sketched clock face on a small monochrome
// panel and keeps it current.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.bug.st/serial"

	"lineclock/internal/config"
	"lineclock/internal/face"
	"lineclock/internal/logger"
	"lineclock/internal/panel"
	"lineclock/internal/surface"
	"lineclock/internal/sysinfo"
	"lineclock/internal/xorshift"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	envFile := flag.String("env", ".env", "KEY=VALUE file loaded into the environment before it is read")
	backend := flag.String("backend", "", "panel backend: "+strings.Join(config.Backends, ", "))
	out := flag.String("out", "", "output file for the bmp backend")
	seed := flag.Uint("seed", 0, "jitter seed, 0 seeds from the clock")
	seconds := flag.Bool("seconds", false, "show the seconds field")
	gauge := flag.String("gauge", "", "percentage source: "+strings.Join(config.GaugeSources, ", "))
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [serial-device]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		logger.Fatal("%v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("%v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Display.Backend = *backend
		case "out":
			cfg.Display.Path = *out
		case "seed":
			if *seed > 0xffff {
				logger.Fatal("-seed %d does not fit in 16 bits", *seed)
			}
			cfg.Face.Seed = uint16(*seed)
		case "seconds":
			cfg.Face.Seconds = *seconds
		case "gauge":
			cfg.Gauge.Source = *gauge
		case "debug":
			cfg.Log.Debug = *debug
		}
	})
	if flag.NArg() > 0 {
		cfg.Display.Backend = config.BackendSerial
		cfg.Display.Device = flag.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("%v", err)
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		logger.Fatal("%v", err)
	}
	defer logger.Close()
	logger.SetDebug(cfg.Log.Debug)
	logger.Info("lineclock starting on %s", sysinfo.HostBanner())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("%v", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Info("lineclock stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	p, err := panel.Open(cfg.Display)
	if err != nil {
		return err
	}
	defer p.Close()

	seed := cfg.Face.Seed
	if seed == 0 {
		seed = xorshift.SeedFromTime(time.Now())
	}
	logger.Info("panel %s %dx%d, gauge %s, seed 0x%04x", cfg.Display.Backend, cfg.Display.Width, cfg.Display.Height, cfg.Gauge.Source, seed)

	d, err := newDaemon(cfg, p, xorshift.New(seed))
	if err != nil {
		return err
	}

	redraw := make(chan struct{}, 1)
	if kp, ok := p.(interface{ Port() serial.Port }); ok && kp.Port() != nil {
		kh := &KeyHandler{Settings: d.settings, RedrawChan: redraw}
		kh.Start(ctx, kp.Port())
	}

	ticker := time.NewTicker(cfg.RefreshInterval())
	defer ticker.Stop()
	for {
		if err := d.frame(time.Now()); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return d.blank()
		case <-ticker.C:
		case <-redraw:
		}
	}
}

// daemon owns the face and applies settings changes between frames.
type daemon struct {
	panel    panel.Panel
	surf     *surface.Surface
	face     *face.Face
	settings *Settings
	gaugeCfg config.Gauge

	gauge    sysinfo.Gauge
	gaugeIdx int32
	contrast int32
	inverted bool
	applied  bool
	lastErr  string
}

func newDaemon(cfg *config.Config, p panel.Panel, rng *xorshift.Source) (*daemon, error) {
	g, err := sysinfo.NewGauge(cfg.Gauge)
	if err != nil {
		return nil, err
	}
	w, h := cfg.Display.Width, cfg.Display.Height
	s := surface.New(w, h, p)
	d := &daemon{
		panel:    p,
		surf:     s,
		face:     face.New(s, rng, face.ScaledLayout(w, h), face.Options{Seconds: cfg.Face.Seconds, Bold: cfg.Face.Bold}),
		settings: NewSettings(cfg),
		gaugeCfg: cfg.Gauge,
		gauge:    g,
	}
	d.gaugeIdx = d.settings.Gauge.Load()
	return d, nil
}

// apply pushes settings changed by keys into the gauge, face and panel.
func (d *daemon) apply() {
	if idx := d.settings.Gauge.Load(); idx != d.gaugeIdx {
		gc := d.gaugeCfg
		gc.Source = config.GaugeSources[idx]
		g, err := sysinfo.NewGauge(gc)
		if err != nil {
			logger.Warn("gauge %s: %v", gc.Source, err)
		} else {
			logger.Info("gauge source now %s", gc.Source)
			d.gauge, d.gaugeIdx, d.lastErr = g, idx, ""
		}
	}

	opts := d.face.Options()
	if sec := d.settings.Seconds.Load(); sec != opts.Seconds {
		opts.Seconds = sec
		d.face.SetOptions(opts)
	}

	if c, ok := d.panel.(panel.Contraster); ok {
		if v := d.settings.Contrast.Load(); !d.applied || v != d.contrast {
			if err := c.SetContrast(byte(v)); err != nil {
				logger.Warn("set contrast %d: %v", v, err)
			}
			d.contrast = v
		}
	}
	if inv, ok := d.panel.(panel.Inverter); ok {
		if v := d.settings.Invert.Load(); !d.applied || v != d.inverted {
			if err := inv.Invert(v); err != nil {
				logger.Warn("invert: %v", err)
			}
			d.inverted = v
		}
	}
	d.applied = true
}

// frame draws and flushes the face for now. A failing gauge only degrades
// the percentage field; a failing panel stops the daemon.
func (d *daemon) frame(now time.Time) error {
	d.apply()
	r, err := sysinfo.Read(now, d.gauge)
	if err != nil {
		if msg := err.Error(); msg != d.lastErr {
			logger.Warn("%s gauge: %v", d.gauge.Name(), err)
			d.lastErr = msg
		} else {
			logger.Debug("%s gauge: %v", d.gauge.Name(), err)
		}
	} else if d.lastErr != "" {
		logger.Info("%s gauge recovered", d.gauge.Name())
		d.lastErr = ""
	}
	if err := d.face.Draw(r); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// blank leaves the panel dark on the way out.
func (d *daemon) blank() error {
	d.surf.Clear(0)
	if err := d.surf.Flush(); err != nil && !errors.Is(err, surface.ErrNoSink) {
		return fmt.Errorf("blank frame: %w", err)
	}
	return nil
}
