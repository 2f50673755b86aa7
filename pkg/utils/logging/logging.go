package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/masq"
)

type ctxLoggerKey struct{}

var defaultLogger = NewConsole(os.Stdout, slog.LevelInfo)

// Default returns the process-wide logger.
func Default() *slog.Logger {
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Intended to be called once
// from CLI setup before any concurrent use.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
}

// From extracts the logger from the context, falling back to Default.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// With returns a new context carrying the given logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// redactor masks customer contact fields so that PII never reaches log
// output. Field names match the model.Customer struct.
var redactor = masq.New(
	masq.WithFieldName("Phone"),
	masq.WithFieldName("Email"),
	masq.WithFieldName("DateOfBirth"),
)

// NewConsole creates a human-readable console logger.
func NewConsole(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithReplaceAttr(redactor),
	))
}

// NewJSON creates a structured JSON logger for server deployments.
func NewJSON(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactor,
	}))
}
