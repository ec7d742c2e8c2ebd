// Package promcollector exports Solver metrics in the Prometheus format.
//
// Runs are short-lived, so instead of serving /metrics the collector is
// usually written to a node_exporter textfile after the run:
//
//	c := promcollector.New()
//	s := wordcliques.NewSolver(wordcliques.WithMetricsCollector(c))
//	// ... solve ...
//	err := c.WriteTextfile("/var/lib/node_exporter/wordcliques.prom")
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/wordcliques"
)

// Collector implements wordcliques.MetricsCollector on its own registry.
type Collector struct {
	registry *prometheus.Registry

	stageDuration *prometheus.HistogramVec
	stageItems    *prometheus.CounterVec
	runs          prometheus.Counter
	words         prometheus.Counter
	cliques       prometheus.Counter
	lastCliques   prometheus.Gauge
	runDuration   prometheus.Histogram
	lastSuccess   prometheus.Gauge
}

var _ wordcliques.MetricsCollector = (*Collector)(nil)

// Option configures a Collector.
type Option func(*config)

type config struct {
	namespace   string
	constLabels prometheus.Labels
}

// WithNamespace sets the metric name prefix. Default: "wordcliques".
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithConstLabels adds labels to every metric, e.g. the word list name.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) {
		c.constLabels = labels
	}
}

// New creates a Collector with all metrics registered.
func New(optFns ...Option) *Collector {
	cfg := config{namespace: "wordcliques"}
	for _, fn := range optFns {
		fn(&cfg)
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.namespace,
			Name:        "stage_duration_seconds",
			Help:        "Duration of pipeline stages.",
			Buckets:     prometheus.ExponentialBuckets(0.001, 4, 10),
			ConstLabels: cfg.constLabels,
		}, []string{"stage", "status"}),
		stageItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "stage_items_total",
			Help:        "Items produced per stage: masks, edges, cliques or lines.",
			ConstLabels: cfg.constLabels,
		}, []string{"stage"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "runs_total",
			Help:        "Completed runs.",
			ConstLabels: cfg.constLabels,
		}),
		words: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "words_total",
			Help:        "Input words processed.",
			ConstLabels: cfg.constLabels,
		}),
		cliques: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.namespace,
			Name:        "cliques_total",
			Help:        "Cliques found.",
			ConstLabels: cfg.constLabels,
		}),
		lastCliques: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.namespace,
			Name:        "last_run_cliques",
			Help:        "Cliques found by the most recent run.",
			ConstLabels: cfg.constLabels,
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.namespace,
			Name:        "run_duration_seconds",
			Help:        "Wall time of whole runs.",
			Buckets:     prometheus.ExponentialBuckets(0.01, 4, 10),
			ConstLabels: cfg.constLabels,
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.namespace,
			Name:        "last_success_timestamp_seconds",
			Help:        "Unix time of the most recent completed run.",
			ConstLabels: cfg.constLabels,
		}),
	}

	c.registry.MustRegister(
		c.stageDuration,
		c.stageItems,
		c.runs,
		c.words,
		c.cliques,
		c.lastCliques,
		c.runDuration,
		c.lastSuccess,
	)
	return c
}

// Registry returns the registry holding the collector's metrics, for
// serving with promhttp or gathering in tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordStage implements wordcliques.MetricsCollector.
func (c *Collector) RecordStage(stage wordcliques.Stage, items int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.stageDuration.WithLabelValues(string(stage), status).Observe(d.Seconds())
	if err == nil {
		c.stageItems.WithLabelValues(string(stage)).Add(float64(items))
	}
}

// RecordRun implements wordcliques.MetricsCollector.
func (c *Collector) RecordRun(words, cliques int, d time.Duration) {
	c.runs.Inc()
	c.words.Add(float64(words))
	c.cliques.Add(float64(cliques))
	c.lastCliques.Set(float64(cliques))
	c.runDuration.Observe(d.Seconds())
	c.lastSuccess.SetToCurrentTime()
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically, as node_exporter expects.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
