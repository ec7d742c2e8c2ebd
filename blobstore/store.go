package blobstore

import (
	"bytes"
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error that satisfies errors.Is(err, ErrNotFound).
// It is os.ErrNotExist so that local lookups need no translation.
var ErrNotFound = os.ErrNotExist

// BlobStore reads and writes named blobs: word lists, result files and the
// small pointer objects that announce the latest results.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Create creates a blob for streaming writes. The blob becomes visible
	// when the returned WritableBlob is closed.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a whole blob atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored blob.
type Blob interface {
	io.Closer

	// ReadAt follows io.ReaderAt semantics.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)

	// ReadRange returns a reader over [off, off+length), clipped to Size.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)

	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a blob being written.
type WritableBlob interface {
	io.WriteCloser

	// Sync flushes buffered data to durable storage where the backend
	// supports it.
	Sync() error
}

// Aborter is implemented by writable blobs that can discard an unfinished
// write instead of publishing it.
type Aborter interface {
	Abort() error
}

// Mappable is an optional interface for blobs whose contents are already in
// memory. The slice is valid until the blob is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}

// NewReader returns a reader over the whole blob. Mappable blobs are read
// without copying; others are streamed with ReadRange. Closing the returned
// reader does not close b.
func NewReader(ctx context.Context, b Blob) (io.ReadCloser, error) {
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	if b.Size() == 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	return b.ReadRange(ctx, 0, b.Size())
}

// clipRange returns the end (exclusive) of [off, off+length) within size.
func clipRange(off, length, size int64) int64 {
	end := off + length
	if length < 0 || end > size || end < off {
		end = size
	}
	return end
}
