// Package logging defines the structured-logging interface used across the
// client and its two backends: log/slog for human-readable text output and
// zerolog for JSON output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request sent", "op", "searchDrugs", "page", 2)
type Logger interface {
	// Debug logs diagnostic detail that is off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger writing to w. Format "json" selects zerolog, anything
// else selects slog's text handler. Level is one of debug, info, warn, error.
func New(w io.Writer, format, level string) (Logger, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		return NewZerologLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger()), nil
	default:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))), nil
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZerologLogger(zerolog.Nop())
}
