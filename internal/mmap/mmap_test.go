package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMapping_ReadAt(t *testing.T) {
	m, err := Open(writeTemp(t, "abcde\nfghij\n"))
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(12), m.Size())
	assert.Equal(t, "abcde\nfghij\n", string(m.Bytes()))
	require.NoError(t, m.Advise(AccessSequential))

	tests := []struct {
		name string
		off  int64
		size int
		want string
		err  error
	}{
		{"Full", 6, 5, "fghij", nil},
		{"Partial", 6, 10, "fghij\n", io.EOF},
		{"PastEnd", 100, 4, "", io.EOF},
		{"Negative", -1, 4, "", ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.size)
			n, err := m.ReadAt(buf, tt.off)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestMapping_Empty(t *testing.T) {
	m, err := Open(writeTemp(t, ""))
	require.NoError(t, err)

	assert.Zero(t, m.Size())
	assert.Empty(t, m.Bytes())
	assert.NoError(t, m.Advise(AccessRandom))
	assert.NoError(t, m.Close())
}

func TestMapping_Closed(t *testing.T) {
	m, err := Open(writeTemp(t, "fjord"))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
	_, err = m.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
