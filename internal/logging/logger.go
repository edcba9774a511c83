package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

// Logger emits structured JSON log lines
type Logger struct {
	base    *log.Logger
	verbose bool
}

// New creates a logger writing JSON lines to w
func New(w io.Writer) *Logger {
	return &Logger{base: log.New(w, "", 0)} // no prefix; we emit JSON ourselves
}

// NewVerbose creates a logger with debug output enabled
func NewVerbose(w io.Writer) *Logger {
	l := New(w)
	l.verbose = true
	return l
}

// DebugEnabled returns true if debug output is enabled, either on the
// logger itself or via the TASKS_DEBUG environment variable
func (l *Logger) DebugEnabled() bool {
	return l.verbose || os.Getenv("TASKS_DEBUG") != ""
}

// Info logs a message at INFO level with optional structured fields
func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit("INFO", msg, fields)
}

// Error logs a message at ERROR level with optional structured fields
func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit("ERROR", msg, fields)
}

// Debug logs a message at DEBUG level only when debug output is enabled
func (l *Logger) Debug(msg string, fields map[string]any) {
	if l.DebugEnabled() {
		l.emit("DEBUG", msg, fields)
	}
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	m := make(map[string]any, 3+len(fields))
	m["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg
	for k, v := range fields {
		m[k] = v
	}
	b, _ := json.Marshal(m)
	l.base.Print(string(b))
}
