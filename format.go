package wordcliques

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// WordSeparator joins the anagrams that share one letter mask.
	WordSeparator = "|"

	// GroupSeparator joins the word groups of a clique.
	GroupSeparator = ","
)

// Format renders c using the word groups of idx.
//
// Each mask becomes its group's words, sorted and joined with WordSeparator;
// the segments are then sorted and joined with GroupSeparator. The result
// depends only on the words involved, not on mask values.
//
// Every mask of c must be a key of idx. A missing mask means the clique was
// found in a graph built from a different index; Format panics with an
// *ErrUnknownMask in that case.
func Format(c Clique, idx *GroupIndex) string {
	segs := make([]string, len(c))
	for i, m := range c {
		s, ok := idx.segment(m)
		if !ok {
			panic(&ErrUnknownMask{Mask: m})
		}
		segs[i] = s
	}
	slices.Sort(segs)
	return strings.Join(segs, GroupSeparator)
}

// FormatAll formats every clique and returns the lines in lexicographic
// order, the stable output order of the tool. It returns an error wrapping
// ErrDuplicateClique if two cliques render the same line.
func FormatAll(cliques []Clique, idx *GroupIndex) ([]string, error) {
	lines := make([]string, len(cliques))
	for i, c := range cliques {
		lines[i] = Format(c, idx)
	}
	slices.Sort(lines)

	for i := 1; i < len(lines); i++ {
		if lines[i] == lines[i-1] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClique, lines[i])
		}
	}
	return lines, nil
}
