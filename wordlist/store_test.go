package wordlist

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/wordcliques/blobstore"
	"github.com/hupe1980/wordcliques/resource"
)

func TestCompressionFor(t *testing.T) {
	tests := map[string]Compression{
		"words.txt":      None,
		"words":          None,
		"words.txt.gz":   Gzip,
		"WORDS.GZIP":     Gzip,
		"words.txt.zst":  Zstd,
		"words.zstd":     Zstd,
		"results.lz4":    LZ4,
		"lists/a.gz.txt": None,
	}

	for name, want := range tests {
		assert.Equal(t, want, CompressionFor(name), name)
	}
}

func TestParseCompression(t *testing.T) {
	for _, s := range []string{"", "none", "gzip", "ZSTD", "lz4"} {
		_, err := ParseCompression(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseCompression("brotli")
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	lines := []string{"abcde|bcdea,fghij,klmno,pqrst,uvwxy", "fjord,gucks,nymph,vibex,waltz"}
	words := []string{"fjord", "gucks", "nymph", "vibex", "waltz"}

	for _, name := range []string{"out.txt", "out.txt.gz", "out.txt.zst", "out.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := blobstore.NewMemoryStore()

			require.NoError(t, Save(ctx, store, name, lines))

			rc, err := Open(ctx, store, name)
			require.NoError(t, err)
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))

			require.NoError(t, Save(ctx, store, "words-"+name, words))
			got, stats, err := Load(ctx, store, "words-"+name)
			require.NoError(t, err)
			assert.Equal(t, words, got)
			assert.Equal(t, Stats{Lines: 5, Accepted: 5}, stats)
		})
	}
}

func TestSave_CompressesByExtension(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	lines := make([]string, 500)
	for i := range lines {
		lines[i] = "abcde,fghij,klmno,pqrst,uvwxy"
	}

	require.NoError(t, Save(ctx, store, "plain.txt", lines))
	require.NoError(t, Save(ctx, store, "packed.txt.zst", lines))

	plain, err := store.Open(ctx, "plain.txt")
	require.NoError(t, err)
	packed, err := store.Open(ctx, "packed.txt.zst")
	require.NoError(t, err)

	assert.Equal(t, int64(500*30), plain.Size())
	assert.Less(t, packed.Size(), plain.Size()/10)
}

func TestOpen_ExplicitCompression(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "words", []string{"fjord"}, WithCompression(Gzip)))

	raw, err := store.Open(ctx, "words")
	require.NoError(t, err)
	head := make([]byte, 2)
	_, err = raw.ReadAt(ctx, head, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, head)

	got, _, err := Load(ctx, store, "words", WithCompression(Gzip))
	require.NoError(t, err)
	assert.Equal(t, []string{"fjord"}, got)
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(context.Background(), blobstore.NewMemoryStore(), "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestOpen_CorruptGzip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "words.gz", []byte("not gzip")))

	_, err := Open(ctx, store, "words.gz")
	assert.Error(t, err)
}

func TestSaveLoad_LocalStoreWithController(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})

	require.NoError(t, Save(ctx, store, "words.txt.gz", []string{"fjord", "gucks"}, WithResourceController(rc)))

	got, stats, err := Load(ctx, store, "words.txt.gz", WithResourceController(rc))
	require.NoError(t, err)
	assert.Equal(t, []string{"fjord", "gucks"}, got)
	assert.Equal(t, 2, stats.Accepted)
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, []string{"a,b", "c,d"}))
	assert.Equal(t, "a,b\nc,d\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteLines(&buf, nil))
	assert.Empty(t, buf.String())
}
