package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/lathe).
const LogFilePath = "logs/viewer.txt"

// maxLines bounds the in-memory history shown by the console.
const maxLines = 500

// Logger stores lines of text (console input, hover changes, warnings) in memory and appends them to a file on disk.
// It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	path  string
	debug bool
	lines []string
}

// New returns a Logger appending to path and ensures its directory exists. An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0)}
}

// SetDebug enables or disables Debugf output.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

// DebugEnabled reports whether Debugf lines are recorded.
func (l *Logger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// Log appends a line to the logger and appends it to the log file on disk. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

func (l *Logger) logf(level, format string, args ...any) {
	l.Log(level + ": " + fmt.Sprintf(format, args...))
}

// Debugf logs at debug level when enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.logf("DEBUG", format, args...)
}

func (l *Logger) Infof(format string, args ...any) { l.logf("INFO", format, args...) }

func (l *Logger) Warnf(format string, args ...any) { l.logf("WARN", format, args...) }

func (l *Logger) Errorf(format string, args ...any) { l.logf("ERROR", format, args...) }

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
