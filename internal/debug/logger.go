package debug

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides sanitized debug logging. Callers must never pass secret
// values; log fingerprints instead.
type Logger struct {
	zl zerolog.Logger
}

// New returns a logger writing to stderr when enabled.
func New(enabled bool) *Logger {
	return NewWithWriter(enabled, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

// NewWithWriter returns a logger writing to out when enabled.
func NewWithWriter(enabled bool, out io.Writer) *Logger {
	level := zerolog.Disabled
	if enabled {
		level = zerolog.DebugLevel
	}
	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// Infof writes a formatted log line when enabled.
func (l *Logger) Infof(format string, args ...any) {
	if l == nil {
		return
	}
	l.zl.Info().Msgf(format, args...)
}

// Event returns a structured debug event; it is a no-op when disabled.
func (l *Logger) Event() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.zl.Debug()
}
