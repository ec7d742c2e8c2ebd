package wordcliques

import (
	"testing"

	"github.com/hupe1980/wordcliques/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	idx := BuildIndex([]string{"bcdea", "fghij", "abcde"})

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 3, idx.WordCount())
	assert.Equal(t, []LetterMask{31, 992}, idx.Masks())

	// Insertion order is kept within a group.
	assert.Equal(t, []string{"bcdea", "abcde"}, idx.Words(Encode("abcde")))
	assert.Equal(t, []string{"fghij"}, idx.Words(Encode("jihgf")))

	id, ok := idx.ID(992)
	require.True(t, ok)
	assert.Equal(t, uint32(1), id)
	assert.Equal(t, LetterMask(31), idx.Mask(0))

	seg, ok := idx.segment(31)
	require.True(t, ok)
	assert.Equal(t, "abcde|bcdea", seg)
}

func TestBuildIndex_Empty(t *testing.T) {
	idx := BuildIndex(nil)

	assert.Zero(t, idx.Len())
	assert.Zero(t, idx.WordCount())
	assert.Empty(t, idx.Masks())
	assert.Nil(t, idx.Words(31))

	_, ok := idx.ID(31)
	assert.False(t, ok)
}

func TestBuildIndex_DuplicateWordsAreKept(t *testing.T) {
	idx := BuildIndex([]string{"abcde", "abcde"})

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, []string{"abcde", "abcde"}, idx.Words(31))
}

func TestBuildIndex_PanicsOnInvalidWord(t *testing.T) {
	assert.Panics(t, func() {
		BuildIndex([]string{"abcde", "aaaaa"})
	})
}

func TestBuildIndex_GroupsAreConsistent(t *testing.T) {
	rng := testutil.NewRNG(4)
	words := rng.Words(2000)
	for i := 0; i < 200; i++ {
		words = append(words, rng.Anagram(words[i]))
	}

	idx := BuildIndex(words)

	assert.Equal(t, testutil.DistinctMasks(words), masksToUint32(idx.Masks()))

	seen := make(map[string]LetterMask)
	total := 0
	for _, m := range idx.Masks() {
		for _, w := range idx.Words(m) {
			assert.Equal(t, m, Encode(w))
			if prev, ok := seen[w]; ok {
				assert.Equal(t, prev, m, "word %s under two keys", w)
			}
			seen[w] = m
			total++
		}
	}
	assert.Equal(t, len(words), total)
}

func masksToUint32(masks []LetterMask) []uint32 {
	out := make([]uint32, len(masks))
	for i, m := range masks {
		out[i] = uint32(m)
	}
	return out
}
