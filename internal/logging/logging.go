// Package logging builds the charmbracelet/log logger glide writes to.
// The terminal belongs to the TUI, so records go to a state file that the
// event panel tails.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/five82/glide/internal/paths"
)

const (
	defaultLogPath = "~/.local/state/glide/glide.log"
	defaultLevel   = log.InfoLevel
	prefix         = "glide"

	// TimeFormat is the timestamp layout of every record.
	TimeFormat = "15:04:05.000"
)

// DefaultPath returns the default log file path.
func DefaultPath() string {
	return defaultLogPath
}

// ParseLevel converts a level name into a log level. An empty name is the
// default (info).
func ParseLevel(name string) (log.Level, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return defaultLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(trimmed))
	if err != nil {
		return defaultLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// NewWriter returns a logger writing plain text records to w.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
	})
}

// Rotation limits of the log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Open creates the log file at path (empty uses the default location) and
// returns a logger writing to it, the resolved path, and a close function.
// The file rotates once it reaches maxSizeMB.
func Open(path string, level log.Level) (*log.Logger, string, func() error, error) {
	resolved, err := paths.Resolve(path, defaultLogPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, "", nil, fmt.Errorf("create log dir: %w", err)
	}
	// lumberjack opens lazily; probe now so an unwritable path fails startup.
	probe, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open log: %w", err)
	}
	_ = probe.Close()

	rot := &lumberjack.Logger{
		Filename:   resolved,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	return NewWriter(rot, level), resolved, rot.Close, nil
}
