// Package sysinfo collects what the clock face shows besides the time: a
// percentage gauge (battery charge, or CPU, memory or disk use on hosts
// without a battery) and a one-line host description for the start-up log.
package sysinfo

import (
	"errors"
	"fmt"
	"math"
	"net"
	"strings"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"

	"lineclock/internal/config"
	"lineclock/internal/face"
)

var (
	ErrNoBattery     = errors.New("sysinfo: no battery found")
	ErrUnknownSource = errors.New("sysinfo: unknown gauge source")
)

// Unknown is the percentage shown when the gauge cannot be read. It renders
// as a bare percent sign.
const Unknown = -1

// Gauge reports a 0-100 percentage.
type Gauge interface {
	Name() string
	Percent() (int, error)
}

// NewGauge builds the gauge named by source (see config.GaugeSources).
func NewGauge(g config.Gauge) (Gauge, error) {
	switch g.Source {
	case config.GaugeBattery:
		return NewBattery(nil), nil
	case config.GaugeCPU:
		return CPU{}, nil
	case config.GaugeMemory:
		return Memory{}, nil
	case config.GaugeDisk:
		path := g.DiskPath
		if path == "" {
			path = "/"
		}
		return Disk{Path: path}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, g.Source)
}

// Battery reports the charge of the first battery that knows both its
// current and full capacity.
type Battery struct {
	list func() ([]*battery.Battery, error)
}

// NewBattery reads batteries from list, or from the system when list is nil.
func NewBattery(list func() ([]*battery.Battery, error)) *Battery {
	if list == nil {
		list = battery.GetAll
	}
	return &Battery{list: list}
}

func (b *Battery) Name() string { return config.GaugeBattery }

func (b *Battery) Percent() (int, error) {
	bats, err := b.list()
	errs, perBattery := err.(battery.Errors)
	if err != nil && !perBattery {
		return Unknown, fmt.Errorf("%w: %v", ErrNoBattery, err)
	}
	for i, bat := range bats {
		if bat == nil || bat.Full <= 0 {
			continue
		}
		if i < len(errs) && !chargeKnown(errs[i]) {
			continue
		}
		pc := round(bat.Current / bat.Full * 100)
		return max(0, min(pc, 100)), nil
	}
	if err != nil {
		return Unknown, fmt.Errorf("%w: %v", ErrNoBattery, err)
	}
	return Unknown, ErrNoBattery
}

// chargeKnown reports whether a per-battery error still left Current and
// Full readable.
func chargeKnown(err error) bool {
	switch e := err.(type) {
	case nil:
		return true
	case battery.ErrPartial:
		return e.Current == nil && e.Full == nil
	}
	return false
}

// CPU is total CPU use since the previous call.
type CPU struct{}

func (CPU) Name() string { return config.GaugeCPU }

func (CPU) Percent() (int, error) {
	v, err := cpu.Percent(0, false)
	if err != nil {
		return Unknown, fmt.Errorf("sysinfo: cpu usage: %w", err)
	}
	if len(v) == 0 {
		return Unknown, errors.New("sysinfo: cpu usage: no samples")
	}
	return round(v[0]), nil
}

type Memory struct{}

func (Memory) Name() string { return config.GaugeMemory }

func (Memory) Percent() (int, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Unknown, fmt.Errorf("sysinfo: memory usage: %w", err)
	}
	return round(vm.UsedPercent), nil
}

type Disk struct {
	Path string
}

func (Disk) Name() string { return config.GaugeDisk }

func (d Disk) Percent() (int, error) {
	u, err := disk.Usage(d.Path)
	if err != nil {
		return Unknown, fmt.Errorf("sysinfo: disk usage of %s: %w", d.Path, err)
	}
	return round(u.UsedPercent), nil
}

func round(v float64) int {
	return int(math.Round(v))
}

// Read samples everything for one frame at now. A failing gauge still yields
// a usable reading with Percent set to Unknown, plus the error.
func Read(now time.Time, g Gauge) (face.Reading, error) {
	pc, err := g.Percent()
	if err != nil {
		pc = Unknown
	}
	return face.ReadingAt(now, pc), err
}

// HostBanner describes the machine for the start-up log.
func HostBanner() string {
	info, err := host.Info()
	if err != nil {
		return "unknown host"
	}
	banner := fmt.Sprintf("%s (%s %s, %s), up %s", info.Hostname, info.Platform, info.PlatformVersion, info.KernelArch, FormatUptime(info.Uptime))
	if ifaces, err := psnet.Interfaces(); err == nil {
		if addrs := Addresses(ifaces); len(addrs) > 0 {
			banner += ", " + strings.Join(addrs, " ")
		}
	}
	return banner
}

// Addresses lists "name=ipv4" for every interface that is up and not a
// loopback.
func Addresses(ifaces psnet.InterfaceStatList) []string {
	var out []string
	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		for _, a := range iface.Addrs {
			ip, _, err := net.ParseCIDR(a.Addr)
			if err != nil {
				ip = net.ParseIP(a.Addr)
			}
			if ip != nil && !ip.IsLoopback() && ip.To4() != nil {
				out = append(out, iface.Name+"="+ip.String())
			}
		}
	}
	return out
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

// FormatUptime renders seconds as "3d 04h 12m", "04h 12m" or "12m".
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%02dh %02dm", hours, minutes)
	}
	return fmt.Sprintf("%02dm", minutes)
}
