// Package debuglog writes leveled diagnostics to a file. The TUI owns the
// terminal, so nothing here ever writes to stdout or stderr.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff // Disables all logging
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unrecognized input maps to
// LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "OFF", "NONE":
		return LevelOff
	default:
		return LevelInfo
	}
}

var (
	currentLevel = LevelOff
	logger       *log.Logger
	logFile      *os.File
)

// DefaultPath is the log file used when Setup gets no path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".veni", "veni.log")
}

// Setup configures the logging system with the specified level and optional
// file path. An empty path means DefaultPath.
func Setup(level LogLevel, filePath ...string) error {
	_ = Close()
	currentLevel = level

	if level == LevelOff {
		return nil
	}

	logPath := DefaultPath()
	if len(filePath) > 0 && filePath[0] != "" {
		logPath = filePath[0]
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput sends log lines to w at the given level. Used by tests.
func SetOutput(level LogLevel, w io.Writer) {
	_ = Close()
	currentLevel = level
	if w != nil && level != LevelOff {
		logger = newLogger(w)
	}
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "veni ", log.LstdFlags|log.Lmicroseconds)
}

func GetLevel() LogLevel {
	return currentLevel
}

// Enabled reports whether messages at level would be written.
func Enabled(level LogLevel) bool {
	return logger != nil && level != LevelOff && level >= currentLevel
}

// Close closes the log file if open
func Close() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func logf(level LogLevel, suffix, format string, args ...any) {
	if !Enabled(level) {
		return
	}
	logger.Printf("[%s] %s%s", level, fmt.Sprintf(format, args...), suffix)
}

func Debugf(format string, args ...any) { logf(LevelDebug, "", format, args...) }
func Infof(format string, args ...any)  { logf(LevelInfo, "", format, args...) }
func Warnf(format string, args ...any)  { logf(LevelWarn, "", format, args...) }
func Errorf(format string, args ...any) { logf(LevelError, "", format, args...) }

// Fields are key/value pairs appended to a log line.
type Fields map[string]any

// FieldLogger appends a fixed set of fields to every line.
type FieldLogger struct {
	fields Fields
}

func WithFields(fields Fields) *FieldLogger {
	return &FieldLogger{fields: fields}
}

// With returns a copy of fl with extra fields added.
func (fl *FieldLogger) With(fields Fields) *FieldLogger {
	merged := make(Fields, len(fl.fields)+len(fields))
	for k, v := range fl.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &FieldLogger{fields: merged}
}

// formatFields renders fields sorted by key so lines are stable.
func (fl *FieldLogger) formatFields() string {
	if len(fl.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fl.fields))
	for k := range fl.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, fl.fields[k])
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func (fl *FieldLogger) Debugf(format string, args ...any) {
	if Enabled(LevelDebug) {
		logf(LevelDebug, fl.formatFields(), format, args...)
	}
}

func (fl *FieldLogger) Infof(format string, args ...any) {
	if Enabled(LevelInfo) {
		logf(LevelInfo, fl.formatFields(), format, args...)
	}
}

func (fl *FieldLogger) Warnf(format string, args ...any) {
	if Enabled(LevelWarn) {
		logf(LevelWarn, fl.formatFields(), format, args...)
	}
}

func (fl *FieldLogger) Errorf(format string, args ...any) {
	if Enabled(LevelError) {
		logf(LevelError, fl.formatFields(), format, args...)
	}
}
