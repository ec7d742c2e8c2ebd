package wordcliques

// DefaultCliqueSize is the number of words in a group.
const DefaultCliqueSize = 5

// Clique is an ascending tuple of pairwise disjoint letter masks.
type Clique []LetterMask

// Coverage returns the total number of letters the clique uses.
// For a five-word clique of valid words it is always 25.
func (c Clique) Coverage() int {
	var n int
	for _, m := range c {
		n += m.Len()
	}
	return n
}

// Letters returns the union of the clique's letter sets.
func (c Clique) Letters() LetterMask {
	var u LetterMask
	for _, m := range c {
		u |= m
	}
	return u
}

// Valid reports whether c is strictly ascending and pairwise disjoint.
func (c Clique) Valid() bool {
	for i := range c {
		for j := i + 1; j < len(c); j++ {
			if c[i] >= c[j] || c[i]&c[j] != 0 {
				return false
			}
		}
	}
	return true
}
