// Package logging builds the zerolog loggers used by the editor and the CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w at the named level. An empty
// level means "info"; "disabled" or a nil writer yields a no-op logger.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil || lvl == zerolog.Disabled {
		return zerolog.Nop(), nil
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// NewConsole is New with human-readable output.
func NewConsole(w io.Writer, level string) (zerolog.Logger, error) {
	if w == nil {
		return New(nil, level)
	}
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}, level)
}

func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	if level == "off" {
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", level, err)
	}
	return lvl, nil
}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
