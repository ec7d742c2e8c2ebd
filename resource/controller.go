// Package resource limits what a run may consume: memory for the clique
// graph and IO throughput for reading word lists and writing results.
//
// A nil *Controller imposes no limits, so callers can pass one through
// unconditionally.
package resource

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits. Zero values mean unlimited.
type Config struct {
	// MemoryLimitBytes bounds the memory held by reservations at once.
	MemoryLimitBytes int64

	// IOLimitBytesPerSec bounds word list reads and result writes.
	IOLimitBytesPerSec int64
}

// Controller hands out memory reservations and paces IO.
type Controller struct {
	cfg Config

	mem   *semaphore.Weighted // nil if unlimited
	inUse atomic.Int64

	io *rate.Limiter // nil if unlimited
}

// NewController creates a Controller enforcing cfg.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	if cfg.MemoryLimitBytes > 0 {
		c.mem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.io = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}
	return c
}

// Config returns the limits c was created with.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// Reservation is memory held against a Controller until Release.
type Reservation struct {
	c    *Controller
	n    int64
	once sync.Once
}

// Size returns the number of reserved bytes.
func (r *Reservation) Size() int64 {
	return r.n
}

// Release returns the memory. Further calls are no-ops.
func (r *Reservation) Release() {
	r.once.Do(func() {
		if r.c == nil || r.n <= 0 {
			return
		}
		if r.c.mem != nil {
			r.c.mem.Release(r.n)
		}
		r.c.inUse.Add(-r.n)
	})
}

// TryReserve reserves n bytes if they fit right now. It never waits, so a
// request larger than the whole limit fails instead of blocking forever.
func (c *Controller) TryReserve(n int64) (*Reservation, bool) {
	if c == nil || n <= 0 {
		return &Reservation{}, true
	}
	if c.mem != nil && !c.mem.TryAcquire(n) {
		return nil, false
	}
	c.inUse.Add(n)
	return &Reservation{c: c, n: n}, true
}

// InUse returns the bytes currently reserved.
func (c *Controller) InUse() int64 {
	if c == nil {
		return 0
	}
	return c.inUse.Load()
}

// WaitIO blocks until n bytes of IO are allowed. Requests larger than one
// second of budget are split into burst-sized waits.
func (c *Controller) WaitIO(ctx context.Context, n int) error {
	if c == nil || c.io == nil {
		return nil
	}
	burst := c.io.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := c.io.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
