// Package logger is a small leveled wrapper over the standard log package.
// Output goes to stdout and, once Init is given a directory, to
// <dir>/lineclock.log as well, rotated by size.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	// MaxLogSizeBytes rotates the log file at 2MB.
	MaxLogSizeBytes int64 = 2 * 1024 * 1024
	// MaxRotatedFiles is how many rotated files are kept next to lineclock.log.
	MaxRotatedFiles = 2

	logName = "lineclock.log"
	flags   = log.Ldate | log.Ltime | log.Lshortfile
)

var (
	mu        sync.Mutex
	file      *os.File
	debug     bool
	written   int64
	rotations int

	infoLogger  = log.New(os.Stdout, "[INFO] ", flags)
	warnLogger  = log.New(os.Stdout, "[WARN] ", flags)
	errorLogger = log.New(os.Stdout, "[ERROR] ", flags)
	debugLogger = log.New(os.Stdout, "[DEBUG] ", flags)
)

// Init opens dir/lineclock.log for appending. An empty dir logs to stdout
// only.
func Init(dir string) error {
	mu.Lock()
	defer mu.Unlock()
	if dir == "" {
		setOutputLocked(os.Stdout)
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("logger: create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logger: open log file: %w", err)
	}
	if st, err := f.Stat(); err == nil {
		written = st.Size()
	}
	if file != nil {
		file.Close()
	}
	file = f
	setOutputLocked(io.MultiWriter(os.Stdout, f))
	return nil
}

// SetOutput redirects every level to w and detaches any log file. Used by
// tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	setOutputLocked(w)
}

func SetDebug(on bool) {
	mu.Lock()
	debug = on
	mu.Unlock()
}

func setOutputLocked(w io.Writer) {
	for _, l := range []*log.Logger{infoLogger, warnLogger, errorLogger, debugLogger} {
		l.SetOutput(w)
	}
}

func Info(format string, v ...interface{}) {
	output(infoLogger, format, v...)
}

func Warn(format string, v ...interface{}) {
	output(warnLogger, format, v...)
}

func Error(format string, v ...interface{}) {
	output(errorLogger, format, v...)
}

// Debug is dropped unless SetDebug(true) was called.
func Debug(format string, v ...interface{}) {
	mu.Lock()
	on := debug
	mu.Unlock()
	if on {
		output(debugLogger, format, v...)
	}
}

// Fatal logs at error level and exits with status 1.
func Fatal(format string, v ...interface{}) {
	output(errorLogger, format, v...)
	Close()
	os.Exit(1)
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
		setOutputLocked(os.Stdout)
	}
}

func output(l *log.Logger, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, v...)
	l.Output(3, msg)
	if file != nil {
		written += int64(len(msg)) + 32
		if written >= MaxLogSizeBytes {
			rotateLocked()
		}
	}
}

func rotateLocked() {
	dir := filepath.Dir(file.Name())
	cur := file.Name()
	file.Close()
	file = nil

	rotations++
	rotated := filepath.Join(dir, fmt.Sprintf("lineclock.%s.%d.log", time.Now().Format("20060102-150405.000000000"), rotations))
	_ = os.Rename(cur, rotated)

	f, err := os.OpenFile(cur, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		setOutputLocked(os.Stdout)
		return
	}
	file = f
	written = 0
	setOutputLocked(io.MultiWriter(os.Stdout, f))
	cleanupRotated(dir)
}

func cleanupRotated(dir string) {
	matches, _ := filepath.Glob(filepath.Join(dir, "lineclock.*.log"))
	if len(matches) <= MaxRotatedFiles {
		return
	}
	type entry struct {
		path string
		mod  time.Time
	}
	entries := make([]entry, 0, len(matches))
	for _, p := range matches {
		if st, err := os.Stat(p); err == nil {
			entries = append(entries, entry{p, st.ModTime()})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].mod.After(entries[j].mod) })
	for i := MaxRotatedFiles; i < len(entries); i++ {
		_ = os.Remove(entries[i].path)
	}
}
