// Package runlog provides leveled key-value diagnostic logging for
// colorvane runs. Progress output goes to stdout via the commands
// themselves; runlog carries the per-record detail (rejections, fetch
// diagnostics) that would drown the summary.
package runlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped key-value log lines to a file, stderr, or
// both. The zero value discards everything.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	stderr  bool
	enabled bool
}

// Log is the global logger instance.
var (
	Log     = &Logger{}
	logOnce sync.Once
)

// Init configures the global logger. A non-empty path appends to that
// file; verbose additionally mirrors lines to stderr. With neither,
// logging stays disabled.
func Init(path string, verbose bool) error {
	var initErr error
	logOnce.Do(func() {
		Log.stderr = verbose
		Log.enabled = verbose
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			initErr = err
			return
		}
		Log.file = f
		Log.enabled = true
	})
	return initErr
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Enabled returns whether logging is active.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Writer returns the underlying io.Writer for use with other libraries.
func (l *Logger) Writer() io.Writer {
	if l.file != nil {
		return l.file
	}
	if l.stderr {
		return os.Stderr
	}
	return io.Discard
}

func (l *Logger) log(level string, msg string, keyvals ...any) {
	if !l.enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s", timestamp, level, msg)
	for i := 0; i < len(keyvals)-1; i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}

	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
	if l.stderr {
		fmt.Fprintln(os.Stderr, line)
	}
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log("DEBUG", msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log("INFO", msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log("WARN", msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log("ERROR", msg, keyvals...)
}
