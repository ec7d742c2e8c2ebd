package wordcliques

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stage names one step of the solving pipeline.
type Stage string

const (
	StageIndex  Stage = "index"
	StageGraph  Stage = "graph"
	StageSearch Stage = "search"
	StageFormat Stage = "format"
)

// Stages lists the pipeline stages in execution order.
var Stages = []Stage{StageIndex, StageGraph, StageSearch, StageFormat}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package promcollector).
type MetricsCollector interface {
	// RecordStage is called after each pipeline stage.
	// items is the number of things the stage produced (distinct masks,
	// edges, cliques or lines), err is nil if successful.
	RecordStage(stage Stage, items int, duration time.Duration, err error)

	// RecordRun is called once per Solve with the input size and the number
	// of cliques found.
	RecordRun(words, cliques int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStage(Stage, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, int, time.Duration)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	Runs         atomic.Int64
	Words        atomic.Int64
	Cliques      atomic.Int64
	RunNanos     atomic.Int64
	StageErrors  atomic.Int64
	mu           sync.Mutex
	stageNanos   map[Stage]int64
	stageItems   map[Stage]int64
	stageRecords map[Stage]int64
}

// RecordStage implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStage(stage Stage, items int, duration time.Duration, err error) {
	if err != nil {
		b.StageErrors.Add(1)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stageNanos == nil {
		b.stageNanos = make(map[Stage]int64)
		b.stageItems = make(map[Stage]int64)
		b.stageRecords = make(map[Stage]int64)
	}
	b.stageNanos[stage] += duration.Nanoseconds()
	b.stageItems[stage] += int64(items)
	b.stageRecords[stage]++
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(words, cliques int, duration time.Duration) {
	b.Runs.Add(1)
	b.Words.Add(int64(words))
	b.Cliques.Add(int64(cliques))
	b.RunNanos.Add(duration.Nanoseconds())
}

// StageStats is the accumulated record of one stage.
type StageStats struct {
	Count      int64
	Items      int64
	TotalNanos int64
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	Runs        int64
	Words       int64
	Cliques     int64
	AvgRunNanos int64
	StageErrors int64
	Stages      map[Stage]StageStats
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		Runs:        b.Runs.Load(),
		Words:       b.Words.Load(),
		Cliques:     b.Cliques.Load(),
		StageErrors: b.StageErrors.Load(),
		Stages:      make(map[Stage]StageStats),
	}
	if s.Runs > 0 {
		s.AvgRunNanos = b.RunNanos.Load() / s.Runs
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for stage, n := range b.stageRecords {
		s.Stages[stage] = StageStats{
			Count:      n,
			Items:      b.stageItems[stage],
			TotalNanos: b.stageNanos[stage],
		}
	}
	return s
}
