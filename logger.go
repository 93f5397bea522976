package tspio

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with solver-specific context.
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

// Component returns the underlying logger tagged with a component name,
// for handing to the scratch and tour packages.
func (l *Logger) Component(name string) *slog.Logger {
	return l.Logger.With("component", name)
}

// WithJob adds a job index field to the logger.
func (l *Logger) WithJob(job int) *Logger {
	return &Logger{
		Logger: l.Logger.With("job", job),
	}
}

// LogEncode logs the problem file handed to the solver.
func (l *Logger) LogEncode(ctx context.Context, path string, bytes, grows int) {
	l.DebugContext(ctx, "problem encoded",
		"path", path,
		"bytes", bytes,
		"grows", grows,
	)
}

// LogParse logs the outcome of reading the tour file.
func (l *Logger) LogParse(ctx context.Context, path string, dimension uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tour parse failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "tour parsed",
			"path", path,
			"dimension", dimension,
		)
	}
}

// LogSolve logs a complete solve.
func (l *Logger) LogSolve(ctx context.Context, dimension uint32, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "solve failed",
			"dimension", dimension,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "solve completed",
			"dimension", dimension,
			"elapsed", elapsed,
		)
	}
}

// LogBatch logs a batch of solves.
func (l *Logger) LogBatch(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch completed",
			"count", count,
		)
	}
}
