// Package logging provides file-backed structured logging.
//
// The dashboard owns the terminal, so log output never goes to stdout or
// stderr while it runs. Logs are JSON lines written to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger together with the file it writes to.
type Logger struct {
	*zap.Logger
	file *os.File
}

// New creates a logger appending to path at the given level
// ("debug", "info", "warn", "error"). An empty path returns a no-op logger.
// Parent directories are created as needed.
func New(path, level string) (*Logger, error) {
	if path == "" {
		return Nop(), nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zap.NewAtomicLevelAt(lvl),
	)

	return &Logger{Logger: zap.New(core), file: f}, nil
}

// NewOrNop is New, falling back to a no-op logger when the file cannot be opened.
func NewOrNop(path, level string) *Logger {
	l, err := New(path, level)
	if err != nil {
		return Nop()
	}
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// ParseLevel converts a level name to a zapcore.Level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Close flushes and closes the log file.
// Safe to call on a nil logger or a no-op logger.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = l.Logger.Sync()
	return l.file.Close()
}

// DefaultPath returns $XDG_STATE_HOME/oulab/oulab.log, falling back to
// ~/.local/state/oulab/oulab.log.
func DefaultPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "oulab", "oulab.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".oulab", "oulab.log")
	}
	return filepath.Join(home, ".local", "state", "oulab", "oulab.log")
}
