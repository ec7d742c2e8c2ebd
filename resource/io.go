package resource

import (
	"context"
	"io"
)

// Reader paces reads from r through the IO limit. Without a limit r is
// returned unchanged.
func (c *Controller) Reader(ctx context.Context, r io.Reader) io.Reader {
	if c == nil || c.io == nil {
		return r
	}
	return &pacedReader{ctx: ctx, r: r, c: c}
}

// Writer paces writes to w through the IO limit. Without a limit w is
// returned unchanged.
func (c *Controller) Writer(ctx context.Context, w io.Writer) io.Writer {
	if c == nil || c.io == nil {
		return w
	}
	return &pacedWriter{ctx: ctx, w: w, c: c}
}

type pacedReader struct {
	ctx context.Context
	r   io.Reader
	c   *Controller
}

// Read charges only the bytes actually read, so a short read of a large
// buffer does not stall.
func (p *pacedReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		if werr := p.c.WaitIO(p.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

type pacedWriter struct {
	ctx context.Context
	w   io.Writer
	c   *Controller
}

func (p *pacedWriter) Write(b []byte) (int, error) {
	if err := p.c.WaitIO(p.ctx, len(b)); err != nil {
		return 0, err
	}
	return p.w.Write(b)
}
