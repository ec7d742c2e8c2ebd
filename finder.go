package wordcliques

import (
	"context"
	"iter"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// defaultChunkSize is the number of top-level nodes per parallel task. Low
// IDs have far more neighbors than high ones, so small chunks keep workers
// evenly loaded.
const defaultChunkSize = 16

// ProgressFunc receives the number of top-level nodes searched so far and the
// total. It may be called concurrently from several workers.
type ProgressFunc func(done, total int)

type finderOptions struct {
	k         int
	workers   int
	chunkSize int
	progress  ProgressFunc
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

// WithCliqueSize sets the number of nodes per clique. The default is 5.
// Small sizes are mainly useful for checking results by hand.
func WithCliqueSize(k int) FinderOption {
	return func(o *finderOptions) {
		o.k = k
	}
}

// WithWorkers sets the number of goroutines Collect uses.
// Values <= 0 select runtime.GOMAXPROCS(0); 1 searches one chunk at a time.
func WithWorkers(n int) FinderOption {
	return func(o *finderOptions) {
		o.workers = n
	}
}

// WithChunkSize sets how many top-level nodes make up one parallel task.
func WithChunkSize(n int) FinderOption {
	return func(o *finderOptions) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithProgress registers a progress callback for Collect.
func WithProgress(fn ProgressFunc) FinderOption {
	return func(o *finderOptions) {
		o.progress = fn
	}
}

// Finder enumerates all cliques of a fixed size in a Graph.
type Finder struct {
	g    *Graph
	opts finderOptions
}

// NewFinder creates a Finder over g.
// It returns ErrInvalidCliqueSize if the configured size is not positive.
func NewFinder(g *Graph, optFns ...FinderOption) (*Finder, error) {
	o := finderOptions{
		k:         DefaultCliqueSize,
		chunkSize: defaultChunkSize,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.k <= 0 {
		return nil, ErrInvalidCliqueSize
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return &Finder{g: g, opts: o}, nil
}

// FindCliques lazily enumerates every five-node clique of g on the calling
// goroutine. Cliques come out in ascending mask order within each tuple.
func FindCliques(g *Graph) iter.Seq[Clique] {
	f := &Finder{g: g, opts: finderOptions{
		k:         DefaultCliqueSize,
		workers:   1,
		chunkSize: defaultChunkSize,
	}}
	return f.All()
}

// CliqueSize returns the configured clique size.
func (f *Finder) CliqueSize() int {
	return f.opts.k
}

// Workers returns the number of chunks Collect searches concurrently.
func (f *Finder) Workers() int {
	return f.opts.workers
}

// Iterator returns a fresh single-pass iterator over all cliques.
func (f *Finder) Iterator() *Iterator {
	return newIterator(f.g, f.opts.k, f.rootRange(0, f.g.Len()))
}

// All returns the cliques as a sequence. Every call to the returned function
// starts a new traversal.
func (f *Finder) All() iter.Seq[Clique] {
	return func(yield func(Clique) bool) {
		it := f.Iterator()
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Collect enumerates all cliques, partitioning the top-level nodes across
// workers. Each worker reads the shared graph and writes only its own result
// slot, so the result order is the same as a sequential traversal.
//
// ctx is checked between top-level nodes.
func (f *Finder) Collect(ctx context.Context) ([]Clique, error) {
	total := f.g.Len()
	if total == 0 {
		return nil, nil
	}

	size := f.opts.chunkSize
	numChunks := (total + size - 1) / size
	parts := make([][]Clique, numChunks)

	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.opts.workers)

	for c := 0; c < numChunks; c++ {
		lo := c * size
		hi := min(lo+size, total)

		g.Go(func() error {
			var local []Clique
			for root := lo; root < hi; root++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				it := newIterator(f.g, f.opts.k, []uint32{uint32(root)})
				for {
					cl, ok := it.Next()
					if !ok {
						break
					}
					local = append(local, cl)
				}
			}
			parts[c] = local

			n := done.Add(int64(hi - lo))
			if f.opts.progress != nil {
				f.opts.progress(int(n), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Clique, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

func (f *Finder) rootRange(lo, hi int) []uint32 {
	roots := make([]uint32, 0, hi-lo)
	for id := lo; id < hi; id++ {
		roots = append(roots, uint32(id))
	}
	return roots
}
