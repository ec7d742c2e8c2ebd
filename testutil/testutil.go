package testutil

import (
	"math/bits"
	"math/rand"
	"slices"
	"sync"
)

// QuintetWords are five pairwise letter-disjoint words covering every letter
// except 'z'.
var QuintetWords = []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Word returns a random word of five distinct lowercase letters.
func (r *RNG) Word() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.letters(5))
}

// Words returns n random words of five distinct lowercase letters.
// Duplicates and anagrams are possible.
func (r *RNG) Words(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		out[i] = string(r.letters(5))
	}
	return out
}

// WordsFrom returns n random words of five distinct letters drawn only from
// alphabet. A small alphabet produces dense graphs with many cliques.
func (r *RNG) WordsFrom(alphabet string, n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		perm := r.rand.Perm(len(alphabet))[:5]
		w := make([]byte, 5)
		for j, p := range perm {
			w[j] = alphabet[p]
		}
		out[i] = string(w)
	}
	return out
}

// Anagram returns a random permutation of word.
func (r *RNG) Anagram(word string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := []byte(word)
	r.rand.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

func (r *RNG) letters(n int) []byte {
	perm := r.rand.Perm(26)[:n]
	w := make([]byte, n)
	for i, p := range perm {
		w[i] = byte('a' + p)
	}
	return w
}

// Mask returns the letter set of word as a bitmask.
func Mask(word string) uint32 {
	var m uint32
	for i := 0; i < len(word); i++ {
		m |= 1 << (word[i] - 'a')
	}
	return m
}

// DistinctMasks returns the sorted distinct masks of words.
func DistinctMasks(words []string) []uint32 {
	masks := make([]uint32, len(words))
	for i, w := range words {
		masks[i] = Mask(w)
	}
	slices.Sort(masks)
	return slices.Compact(masks)
}

// BruteForceCliques returns every ascending k-combination of masks whose
// members are pairwise disjoint, by plain recursion over all combinations.
// masks must be sorted and distinct.
func BruteForceCliques(masks []uint32, k int) [][]uint32 {
	var out [][]uint32
	var rec func(start int, used uint32, path []uint32)
	rec = func(start int, used uint32, path []uint32) {
		if len(path) == k {
			out = append(out, slices.Clone(path))
			return
		}
		for i := start; i < len(masks); i++ {
			if masks[i]&used != 0 {
				continue
			}
			rec(i+1, used|masks[i], append(path, masks[i]))
		}
	}
	rec(0, 0, make([]uint32, 0, k))
	return out
}

// Popcount returns the number of letters in a mask.
func Popcount(m uint32) int {
	return bits.OnesCount32(m)
}
