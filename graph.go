package wordcliques

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Graph is the triangular disjointness graph over distinct letter masks.
//
// Nodes are identified by dense IDs assigned in ascending mask order. The
// neighbor set of a node holds only the IDs of nodes that are greater than it
// and share no letters with it. Every unordered edge is therefore stored once,
// and walking neighbor sets can only ever produce ascending tuples.
//
// A Graph is immutable once built and safe for concurrent readers.
type Graph struct {
	masks     []LetterMask
	ids       map[LetterMask]uint32
	neighbors []*roaring.Bitmap
	edges     uint64
}

// BuildGraph builds the triangular adjacency over masks.
//
// masks is expected to be the ascending, duplicate-free key set of a
// GroupIndex (GroupIndex.Masks). Other input is sorted and deduplicated first.
// The build is quadratic in the number of distinct masks.
func BuildGraph(masks []LetterMask) *Graph {
	if !isStrictlyAscending(masks) {
		masks = slices.Compact(slices.Sorted(slices.Values(masks)))
	}

	g := &Graph{
		masks:     masks,
		ids:       make(map[LetterMask]uint32, len(masks)),
		neighbors: make([]*roaring.Bitmap, len(masks)),
	}

	// Reused across rows; ToBitmap copies it into a compact bitmap.
	scratch := make([]uint32, 0, len(masks))
	for i, k1 := range masks {
		g.ids[k1] = uint32(i)

		scratch = scratch[:0]
		for j := i + 1; j < len(masks); j++ {
			if k1.Disjoint(masks[j]) {
				scratch = append(scratch, uint32(j))
			}
		}

		bm := roaring.New()
		bm.AddMany(scratch)
		bm.RunOptimize()
		g.neighbors[i] = bm
		g.edges += uint64(len(scratch))
	}

	return g
}

func isStrictlyAscending(masks []LetterMask) bool {
	for i := 1; i < len(masks); i++ {
		if masks[i-1] >= masks[i] {
			return false
		}
	}
	return true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.masks)
}

// EdgeCount returns the number of stored (directed, ascending) edges.
func (g *Graph) EdgeCount() uint64 {
	return g.edges
}

// Mask returns the mask of node id. It panics if id is out of range.
func (g *Graph) Mask(id uint32) LetterMask {
	return g.masks[id]
}

// ID returns the node ID of mask.
func (g *Graph) ID(mask LetterMask) (uint32, bool) {
	id, ok := g.ids[mask]
	return id, ok
}

// Neighbors returns the masks adjacent to mask, in ascending order.
// All of them are greater than mask and disjoint from it.
func (g *Graph) Neighbors(mask LetterMask) []LetterMask {
	id, ok := g.ids[mask]
	if !ok {
		return nil
	}
	bm := g.neighbors[id]
	out := make([]LetterMask, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, g.masks[it.Next()])
	}
	return out
}

// Degree returns the number of stored neighbors of node id.
func (g *Graph) Degree(id uint32) int {
	return int(g.neighbors[id].GetCardinality())
}

// HasEdge reports whether b is a stored neighbor of a. Because only ascending
// edges are stored, HasEdge(a, b) and HasEdge(b, a) are never both true.
func (g *Graph) HasEdge(a, b LetterMask) bool {
	ia, ok := g.ids[a]
	if !ok {
		return false
	}
	ib, ok := g.ids[b]
	if !ok {
		return false
	}
	return g.neighbors[ia].Contains(ib)
}

// SizeInBytes estimates the memory held by the neighbor sets.
func (g *Graph) SizeInBytes() uint64 {
	var n uint64
	for _, bm := range g.neighbors {
		n += bm.GetSizeInBytes()
	}
	return n + uint64(len(g.masks))*4
}

// adjacency returns the neighbor set of node id. Callers must not modify it.
func (g *Graph) adjacency(id uint32) *roaring.Bitmap {
	return g.neighbors[id]
}
