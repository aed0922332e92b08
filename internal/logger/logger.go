package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the diagnostic log file, relative to the working directory.
const DefaultPath = "logs/triangles.txt"

// Logger keeps diagnostic lines (object switches, shader errors) in memory, appends them to a file
// on disk and echoes them to an optional writer such as stdout.
type Logger struct {
	mu    sync.Mutex
	path  string
	out   io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (empty = no file) and out (nil = no echo).
// The directory for path is created if needed.
func New(path string, out io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, out: out, now: time.Now}
}

// Log records one line prefixed with [timestamp] in local time.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if l.out != nil {
		_, _ = io.WriteString(l.out, line+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
