package wordlist

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/hupe1980/wordcliques/blobstore"
	"github.com/hupe1980/wordcliques/resource"
)

type options struct {
	compression Compression
	controller  *resource.Controller
}

// Option configures Open, Load, Create and Save.
type Option func(*options)

// WithCompression overrides the format derived from the blob name.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithResourceController throttles blob IO through c.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

func applyOptions(name string, optFns []Option) options {
	o := options{compression: CompressionFor(name)}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Open opens a blob and returns its decompressed contents.
func Open(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (io.ReadCloser, error) {
	o := applyOptions(name, optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}

	dec, err := decompress(o.compression, o.controller.Reader(ctx, raw))
	if err != nil {
		_ = raw.Close()
		_ = blob.Close()
		return nil, err
	}
	return &readCloser{Reader: dec, closers: []io.Closer{dec, raw, blob}}, nil
}

// Load reads all valid words of a blob.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) ([]string, Stats, error) {
	rc, err := Open(ctx, store, name, optFns...)
	if err != nil {
		return nil, Stats{}, err
	}
	defer rc.Close()
	return ReadAll(ctx, rc)
}

// Create returns a writer that compresses into a new blob. The blob is
// complete once Close returns nil.
func Create(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (io.WriteCloser, error) {
	o := applyOptions(name, optFns)

	blob, err := store.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	buf := bufio.NewWriterSize(o.controller.Writer(ctx, blob), 64*1024)

	enc, err := compress(o.compression, buf)
	if err != nil {
		_ = blob.Close()
		return nil, err
	}
	return &writeCloser{enc: enc, buf: buf, blob: blob}, nil
}

// Save writes lines to a new blob.
func Save(ctx context.Context, store blobstore.BlobStore, name string, lines []string, optFns ...Option) error {
	w, err := Create(ctx, store, name, optFns...)
	if err != nil {
		return err
	}
	if err := WriteLines(w, lines); err != nil {
		_ = w.(*writeCloser).abort()
		return err
	}
	return w.Close()
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

type writeCloser struct {
	enc  io.WriteCloser
	buf  *bufio.Writer
	blob blobstore.WritableBlob
}

func (w *writeCloser) Write(p []byte) (int, error) {
	return w.enc.Write(p)
}

func (w *writeCloser) Close() error {
	err := w.enc.Close()
	if err == nil {
		err = w.buf.Flush()
	}
	if err != nil {
		return errors.Join(err, w.abort())
	}
	return w.blob.Close()
}

// abort discards the blob when the backend allows it.
func (w *writeCloser) abort() error {
	if a, ok := w.blob.(blobstore.Aborter); ok {
		return a.Abort()
	}
	return w.blob.Close()
}
