package wordcliques

import (
	"log/slog"
	"time"

	"github.com/hupe1980/wordcliques/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	finderOptions    []FinderOption
	progressInterval time.Duration
	controller       *resource.Controller
}

// Option configures a Solver.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &wordcliques.BasicMetricsCollector{}
//	s := wordcliques.NewSolver(wordcliques.WithMetricsCollector(metrics))
//	// ... solve ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Cliques: %d\n", stats.Runs, stats.Cliques)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := wordcliques.NewJSONLogger(slog.LevelInfo)
//	s := wordcliques.NewSolver(wordcliques.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithFinderOptions passes options through to the clique Finder, e.g.
// WithCliqueSize or WithWorkers.
func WithFinderOptions(opts ...FinderOption) Option {
	return func(o *options) {
		o.finderOptions = append(o.finderOptions, opts...)
	}
}

// WithProgressInterval sets how often search progress is logged.
// Zero or negative disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithResourceController makes the Solver reserve the graph's memory from c
// before searching. A graph that does not fit fails with ErrMemoryLimit.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		progressInterval: 5 * time.Second,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
