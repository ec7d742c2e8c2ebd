package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	src := []byte("abcde\n")
	require.NoError(t, store.Put(ctx, "a.txt", src))
	src[0] = 'x'

	w, err := store.Create(ctx, "b.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("fghij\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	_, err = w.Write([]byte("more"))
	assert.Error(t, err)

	b, err := store.Open(ctx, "a.txt")
	require.NoError(t, err)
	r, err := NewReader(ctx, b)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abcde\n", string(data))

	buf := make([]byte, 3)
	n, err := b.ReadAt(ctx, buf, 4)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "e\n", string(buf[:n]))

	rc, err := b.ReadRange(ctx, 1, 2)
	require.NoError(t, err)
	data, err = io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "bc", string(data))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)

	require.NoError(t, store.Delete(ctx, "a.txt"))
	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, names)
}
