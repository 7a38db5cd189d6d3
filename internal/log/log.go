// Package log provides a global logger for zerolog.
package log

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = New(os.Stderr)

// New returns a logger writing human readable lines to w. Standard output
// carries the results, so the default logger writes to standard error.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &logger
}

// SetOutput replaces the writer of the global logger.
func SetOutput(w io.Writer) {
	logger = New(w)
}

// SetLevel sets the minimum global log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// SetLevelString parses level and sets it as the global log level.
func SetLevelString(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	SetLevel(l)
	return nil
}

// WithContext returns a copy of ctx carrying the global logger.
func WithContext(ctx context.Context) context.Context {
	return logger.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, or the global logger if there is
// none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &logger
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info starts a new message with info level.
func Info() *zerolog.Event {
	return logger.Info()
}
