package wordcliques

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Result is the outcome of one Solve.
type Result struct {
	// Lines are the formatted cliques in output order.
	Lines []string

	// Words is the number of input words.
	Words int

	// Distinct is the number of distinct letter masks (after anagram collapsing).
	Distinct int

	// Edges is the number of stored graph edges.
	Edges uint64

	// Cliques is the number of cliques found.
	Cliques int

	// Stages holds the wall time of each pipeline stage.
	Stages map[Stage]time.Duration

	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

// Solver runs the full pipeline: index, graph, clique search and formatting.
// It owns the observability concerns (logging, metrics, progress, memory
// budget) so the core functions it calls stay free of them.
//
// A Solver is safe for concurrent use; each Solve call is independent.
type Solver struct {
	opts options
}

// NewSolver creates a Solver.
func NewSolver(optFns ...Option) *Solver {
	return &Solver{opts: applyOptions(optFns)}
}

// Solve finds and formats all cliques among words.
//
// Every word must pass Validate; the first one that does not is returned as an
// *ErrInvalidWord. An empty word list is not an error and yields an empty Result.
func (s *Solver) Solve(ctx context.Context, words []string) (*Result, error) {
	start := time.Now()
	log := s.opts.logger
	mc := s.opts.metricsCollector

	for _, w := range words {
		if err := Validate(w); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Words:  len(words),
		Stages: make(map[Stage]time.Duration, len(Stages)),
	}

	stage := func(st Stage, items int, t time.Time, err error) {
		d := time.Since(t)
		res.Stages[st] = d
		mc.RecordStage(st, items, d, err)
		log.LogStage(ctx, st, items, d, err)
	}

	t := time.Now()
	idx := BuildIndex(words)
	res.Distinct = idx.Len()
	stage(StageIndex, idx.Len(), t, nil)
	log.InfoContext(ctx, fmt.Sprintf("Found %d distinct 5-letter words with 5 distinct letters (after removing anagrams)", idx.Len()))

	log.InfoContext(ctx, "Building a graph...")
	t = time.Now()
	g := BuildGraph(idx.Masks())

	size := int64(g.SizeInBytes())
	reservation, ok := s.opts.controller.TryReserve(size)
	if !ok {
		err := fmt.Errorf("%w: need %d bytes, limit %d", ErrMemoryLimit, size, s.opts.controller.Config().MemoryLimitBytes)
		stage(StageGraph, 0, t, err)
		return nil, err
	}
	defer reservation.Release()

	res.Edges = g.EdgeCount()
	stage(StageGraph, int(g.EdgeCount()), t, nil)

	finderOpts := append([]FinderOption{}, s.opts.finderOptions...)
	if s.opts.progressInterval > 0 {
		every := &rate.Sometimes{First: 1, Interval: s.opts.progressInterval}
		finderOpts = append(finderOpts, WithProgress(func(done, total int) {
			if done == total {
				log.LogProgress(ctx, done, total)
				return
			}
			every.Do(func() { log.LogProgress(ctx, done, total) })
		}))
	}

	t = time.Now()
	finder, err := NewFinder(g, finderOpts...)
	if err != nil {
		stage(StageSearch, 0, t, err)
		return nil, err
	}
	log.WithK(finder.CliqueSize()).WithWorkers(finder.Workers()).InfoContext(ctx, fmt.Sprintf("Finding cliques of %d words...", finder.CliqueSize()))

	cliques, err := finder.Collect(ctx)
	if err != nil {
		stage(StageSearch, 0, t, err)
		return nil, fmt.Errorf("search cliques: %w", err)
	}
	res.Cliques = len(cliques)
	stage(StageSearch, len(cliques), t, nil)

	t = time.Now()
	lines, err := FormatAll(cliques, idx)
	stage(StageFormat, len(lines), t, err)
	if err != nil {
		return nil, err
	}
	res.Lines = lines

	res.Elapsed = time.Since(start)
	mc.RecordRun(res.Words, res.Cliques, res.Elapsed)
	log.LogDone(ctx, res.Cliques, res.Elapsed)

	return res, nil
}
