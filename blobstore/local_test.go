package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localfs "github.com/hupe1980/wordcliques/internal/fs"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	ctx := context.Background()

	data := []byte("abcde\nfghij\nklmno\n")

	w, err := store.Create(ctx, "lists/words.txt")
	require.NoError(t, err)
	_, err = w.Write(data[:6])
	require.NoError(t, err)

	// Not visible before Close.
	_, err = store.Open(ctx, "lists/words.txt")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = w.Write(data[6:])
	require.NoError(t, err)
	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), os.ErrClosed)

	_, err = os.Stat(filepath.Join(dir, "lists", "words.txt"))
	require.NoError(t, err)

	b, err := store.Open(ctx, "lists/words.txt")
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, int64(len(data)), b.Size())

	buf := make([]byte, 5)
	n, err := b.ReadAt(ctx, buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "fghij", string(buf[:n]))

	rc, err := b.ReadRange(ctx, 12, 100)
	require.NoError(t, err)
	rest, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "klmno\n", string(rest))

	all, err := NewReader(ctx, b)
	require.NoError(t, err)
	got, err := io.ReadAll(all)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalStore_PutListDelete(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "results/b.txt", []byte("b")))
	require.NoError(t, store.Put(ctx, "results/a.txt", []byte("a")))
	require.NoError(t, store.Put(ctx, "words.txt", []byte("w")))

	names, err := store.List(ctx, "results/")
	require.NoError(t, err)
	assert.Equal(t, []string{"results/a.txt", "results/b.txt"}, names)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, store.Delete(ctx, "results/a.txt"))
	require.NoError(t, store.Delete(ctx, "results/a.txt"))

	names, err = store.List(ctx, "results/")
	require.NoError(t, err)
	assert.Equal(t, []string{"results/b.txt"}, names)
}

func TestLocalStore_Overwrite(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "results.txt", []byte("old contents")))
	require.NoError(t, store.Put(ctx, "results.txt", []byte("new")))

	b, err := store.Open(ctx, "results.txt")
	require.NoError(t, err)
	defer b.Close()

	data, err := b.(Mappable).Bytes()
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestLocalStore_EmptyBlob(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "empty.txt", nil))

	b, err := store.Open(ctx, "empty.txt")
	require.NoError(t, err)
	defer b.Close()

	assert.Zero(t, b.Size())
	r, err := NewReader(ctx, b)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "missing"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_Canceled(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Open(ctx, "words.txt")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.Create(ctx, "words.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_Abort(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "results.txt", []byte("old\n")))

	w, err := store.Create(ctx, "results.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("partial"))
	require.NoError(t, err)

	a, ok := w.(Aborter)
	require.True(t, ok)
	require.NoError(t, a.Abort())
	require.NoError(t, a.Abort())
	assert.ErrorIs(t, w.Close(), os.ErrClosed)

	got, err := os.ReadFile(filepath.Join(dir, "results.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(got))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"results.txt"}, names)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStore_FailedWriteKeepsTarget(t *testing.T) {
	tests := []struct {
		name  string
		fault localfs.Fault
	}{
		{"Write", localfs.Fault{FailAfterBytes: 3}},
		{"Sync", localfs.Fault{FailAfterBytes: -1, FailOnSync: true}},
		{"Close", localfs.Fault{FailAfterBytes: -1, FailOnClose: true}},
		{"Rename", localfs.Fault{FailAfterBytes: -1, FailOnRename: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			ctx := context.Background()
			require.NoError(t, NewLocalStore(dir).Put(ctx, "results.txt", []byte("old\n")))

			ffs := localfs.NewFaultyFS(nil)
			ffs.AddRule("results", tt.fault)
			store := NewLocalStore(dir, WithFileSystem(ffs))

			err := store.Put(ctx, "results.txt", []byte("abcde,fghij\n"))
			assert.ErrorIs(t, err, localfs.ErrInjected)

			got, err := os.ReadFile(filepath.Join(dir, "results.txt"))
			require.NoError(t, err)
			assert.Equal(t, "old\n", string(got))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary file left behind")
		})
	}
}
