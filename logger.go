package wordcliques

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with wordcliques-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (clique size) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// LogStage logs the completion of a pipeline stage.
func (l *Logger) LogStage(ctx context.Context, stage Stage, items int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "stage failed",
			"stage", stage,
			"duration", d,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "stage completed",
		"stage", stage,
		"items", items,
		"duration", d,
	)
}

// LogProgress logs clique search progress over top-level nodes.
func (l *Logger) LogProgress(ctx context.Context, done, total int) {
	pct := 0.0
	if total > 0 {
		pct = float64(done) * 100 / float64(total)
	}
	l.InfoContext(ctx, "searching cliques",
		"nodes_done", done,
		"nodes_total", total,
		"percent", pct,
	)
}

// LogDone logs the final summary of a run.
func (l *Logger) LogDone(ctx context.Context, cliques int, d time.Duration) {
	l.InfoContext(ctx, "done",
		"cliques", cliques,
		"seconds", d.Seconds(),
	)
}
