// Package logging sets up the developer log file. The TUI owns the terminal,
// so log output never goes to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Logger is a logrus logger bound to an optional file.
type Logger struct {
	*log.Logger
	file *os.File
}

// New opens (or creates) path for appending and logs at level. Empty or
// unparsable levels mean info.
func New(path, level string) (*Logger, error) {
	lvl, levelErr := parseLevel(level)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := newLogger(f, lvl)
	if levelErr != nil {
		l.WithError(levelErr).Warn("falling back to info level")
	}
	return &Logger{Logger: l, file: f}, nil
}

func parseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, err
	}
	return lvl, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, log.PanicLevel)}
}

func newLogger(out io.Writer, lvl log.Level) *log.Logger {
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return l
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
