package wordcliques

import (
	"maps"
	"slices"
	"strings"
)

// GroupIndex groups words by their LetterMask (anagram collapsing).
//
// Distinct masks are stored densely in ascending order. The position of a mask
// in that order is its ID, so ID order and mask order agree, which is what the
// triangular Graph relies on. A GroupIndex is immutable once built and safe for
// concurrent readers.
type GroupIndex struct {
	masks    []LetterMask
	ids      map[LetterMask]uint32
	groups   [][]string // by ID, insertion order
	segments []string   // by ID, sorted words joined with WordSeparator
	count    int
}

// BuildIndex encodes every word and groups it under its mask, preserving the
// order in which words of the same group were seen.
//
// All words must satisfy the Encode precondition; filter with Valid first.
func BuildIndex(words []string) *GroupIndex {
	byMask := make(map[LetterMask][]string)
	for _, w := range words {
		m := Encode(w)
		byMask[m] = append(byMask[m], w)
	}

	masks := slices.Sorted(maps.Keys(byMask))

	idx := &GroupIndex{
		masks:    masks,
		ids:      make(map[LetterMask]uint32, len(masks)),
		groups:   make([][]string, len(masks)),
		segments: make([]string, len(masks)),
		count:    len(words),
	}
	for id, m := range masks {
		group := byMask[m]
		idx.ids[m] = uint32(id)
		idx.groups[id] = group
		idx.segments[id] = joinSorted(group, WordSeparator)
	}
	return idx
}

// Len returns the number of distinct masks.
func (idx *GroupIndex) Len() int {
	return len(idx.masks)
}

// WordCount returns the number of words the index was built from.
func (idx *GroupIndex) WordCount() int {
	return idx.count
}

// Masks returns the distinct masks in ascending order.
// The returned slice must not be modified.
func (idx *GroupIndex) Masks() []LetterMask {
	return idx.masks
}

// Words returns the words sharing mask, in insertion order, or nil if the mask
// is not indexed. The returned slice must not be modified.
func (idx *GroupIndex) Words(mask LetterMask) []string {
	id, ok := idx.ids[mask]
	if !ok {
		return nil
	}
	return idx.groups[id]
}

// ID returns the dense ID of mask.
func (idx *GroupIndex) ID(mask LetterMask) (uint32, bool) {
	id, ok := idx.ids[mask]
	return id, ok
}

// Mask returns the mask with the given ID. It panics if id is out of range.
func (idx *GroupIndex) Mask(id uint32) LetterMask {
	return idx.masks[id]
}

// segment returns the formatted word group of mask.
func (idx *GroupIndex) segment(mask LetterMask) (string, bool) {
	id, ok := idx.ids[mask]
	if !ok {
		return "", false
	}
	return idx.segments[id], true
}

func joinSorted(words []string, sep string) string {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	return strings.Join(sorted, sep)
}
