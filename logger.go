package bitset

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with bitset-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

var noopLogger = NoopLogger()

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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithElements adds an elements field to the logger.
func (l *Logger) WithElements(n int) *Logger {
	return &Logger{Logger: l.Logger.With("elements", n)}
}

// WithSize adds a size (data words) field to the logger.
func (l *Logger) WithSize(words int) *Logger {
	return &Logger{Logger: l.Logger.With("size", words)}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// LogAllocFailure logs an allocator that could not deliver words.
func (l *Logger) LogAllocFailure(words, got int) {
	l.Error("allocation failed",
		"words", words,
		"got", got,
	)
}

// LogBatch logs a batch operation over many bitsets.
func (l *Logger) LogBatch(ctx context.Context, op string, count int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "batch completed",
		"op", op,
		"count", count,
		"elapsed", elapsed,
	)
}
