package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	localfs "github.com/hupe1980/wordcliques/internal/fs"
	"github.com/hupe1980/wordcliques/internal/mmap"
)

// LocalStore implements BlobStore on the local file system. Blob names use
// forward slashes and are resolved below root.
type LocalStore struct {
	root string
	fsys localfs.FileSystem
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithFileSystem replaces the file system used for writes.
func WithFileSystem(fsys localfs.FileSystem) LocalOption {
	return func(s *LocalStore) {
		s.fsys = fsys
	}
}

// NewLocalStore creates a LocalStore rooted at dir.
func NewLocalStore(dir string, optFns ...LocalOption) *LocalStore {
	s := &LocalStore{root: dir, fsys: localfs.Default}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Root returns the directory the store is rooted at.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// Open maps the blob into memory. Word lists are scanned front to back, so
// the mapping is advised for sequential access.
func (s *LocalStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := mmap.Open(s.path(name))
	if err != nil {
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)
	return &localBlob{m: m}, nil
}

// Create writes to a temporary file next to the target and renames it into
// place on Close, so readers never see a partial blob.
func (s *LocalStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target := s.path(name)
	dir := filepath.Dir(target)
	if err := s.fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := s.fsys.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &localWritableBlob{f: f, fsys: s.fsys, target: target}, nil
}

// Put writes data atomically.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) error {
	w, err := s.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.(*localWritableBlob).Abort()
		return err
	}
	return w.Close()
}

// Delete removes a blob.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fsys.Remove(s.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// List walks root and returns the slash-separated names starting with prefix.
// Temporary files of unfinished writes are skipped.
func (s *LocalStore) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == s.root {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") && strings.Contains(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.m.ReadAt(p, off)
}

func (b *localBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data := b.m.Bytes()
	if off < 0 || off > int64(len(data)) {
		return nil, mmap.ErrInvalidOffset
	}
	end := clipRange(off, length, int64(len(data)))
	return io.NopCloser(bytes.NewReader(data[off:end])), nil
}

func (b *localBlob) Size() int64 {
	return b.m.Size()
}

func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Bytes(), nil
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

type localWritableBlob struct {
	f      localfs.File
	fsys   localfs.FileSystem
	target string
	closed atomic.Bool
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	if w.closed.Load() {
		return 0, os.ErrClosed
	}
	return w.f.Write(p)
}

func (w *localWritableBlob) Sync() error {
	return w.f.Sync()
}

func (w *localWritableBlob) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return os.ErrClosed
	}
	if err := w.f.Sync(); err != nil {
		_ = w.f.Close()
		_ = w.fsys.Remove(w.f.Name())
		return err
	}
	if err := w.f.Close(); err != nil {
		_ = w.fsys.Remove(w.f.Name())
		return err
	}
	if err := w.fsys.Rename(w.f.Name(), w.target); err != nil {
		_ = w.fsys.Remove(w.f.Name())
		return err
	}
	return nil
}

// Abort removes the temporary file; the target is left untouched.
func (w *localWritableBlob) Abort() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	_ = w.f.Close()
	return w.fsys.Remove(w.f.Name())
}
