package indexgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with indexgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCache adds a cache name field to the logger.
func (l *Logger) WithCache(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("cache", name),
	}
}

// LogRegister logs a cache registration.
func (l *Logger) LogRegister(name string, err error) {
	if err != nil {
		l.Error("cache registration failed",
			"cache", name,
			"error", err,
		)
	} else {
		l.Debug("cache registered",
			"cache", name,
		)
	}
}

// LogReset logs a registry reset.
func (l *Logger) LogReset(ctx context.Context, caches int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "registry reset failed",
			"caches", caches,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "registry reset completed",
			"caches", caches,
		)
	}
}
