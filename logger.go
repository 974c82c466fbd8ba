package ndvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ndvec-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithAxis adds an axis field to the logger.
func (l *Logger) WithAxis(axis int) *Logger {
	return &Logger{
		Logger: l.Logger.With("axis", axis),
	}
}

// LogSwap logs a swap operation.
func (l *Logger) LogSwap(ctx context.Context, a, b int, err error) {
	if err != nil {
		l.WarnContext(ctx, "swap rejected",
			"a", a,
			"b", b,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "swap completed",
			"a", a,
			"b", b,
		)
	}
}

// LogIgnoredMutate logs a write that fell outside the container.
func (l *Logger) LogIgnoredMutate(ctx context.Context, axis, position int) {
	l.DebugContext(ctx, "mutate ignored: index out of range",
		"axis", axis,
		"position", position,
	)
}

// LogRevert logs a revert operation.
func (l *Logger) LogRevert(ctx context.Context, mode RevertMode, replayed int) {
	l.DebugContext(ctx, "revert completed",
		"mode", mode.String(),
		"replayed", replayed,
	)
}
