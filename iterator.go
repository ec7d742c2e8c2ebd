package wordcliques

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// level is one frame of the search stack: the candidates that are adjacent to
// every node chosen so far, and the cursor over them.
type level struct {
	cands *roaring.Bitmap
	it    roaring.IntIterator
}

// Iterator enumerates cliques one at a time.
//
// It keeps its traversal state explicitly: the chosen node IDs and, per depth,
// the intersection of their neighbor sets. Each frame only narrows the frame
// below it, so the Graph is never written to. An Iterator is single-pass and
// not safe for concurrent use; start a new one to enumerate again.
type Iterator struct {
	g     *Graph
	k     int
	roots []uint32
	next  int

	path   []uint32
	levels []level

	// scratch[d] holds the candidates of depth d > 0 and is overwritten on
	// every push at that depth.
	scratch []*roaring.Bitmap
}

func newIterator(g *Graph, k int, roots []uint32) *Iterator {
	scratch := make([]*roaring.Bitmap, k)
	for i := 1; i < k; i++ {
		scratch[i] = roaring.New()
	}
	return &Iterator{
		g:       g,
		k:       k,
		roots:   roots,
		path:    make([]uint32, 0, k),
		levels:  make([]level, 0, k),
		scratch: scratch,
	}
}

// Next returns the next clique, or false once the traversal is exhausted.
// The returned clique is freshly allocated and owned by the caller.
func (it *Iterator) Next() (Clique, bool) {
	for {
		depth := len(it.path)

		if depth == 0 {
			if it.next >= len(it.roots) {
				return nil, false
			}
			root := it.roots[it.next]
			it.next++

			if it.k == 1 {
				return Clique{it.g.Mask(root)}, true
			}

			cands := it.g.adjacency(root)
			if cands.GetCardinality() < uint64(it.k-1) {
				continue
			}
			it.push(root, cands)
			continue
		}

		top := &it.levels[depth-1]
		if !top.it.HasNext() {
			it.pop()
			continue
		}
		id := top.it.Next()

		if depth == it.k-1 {
			return it.emit(id), true
		}

		cands := it.scratch[depth]
		cands.Clear()
		cands.Or(top.cands)
		cands.And(it.g.adjacency(id))
		// Fewer candidates than slots left: no clique can complete here.
		if cands.GetCardinality() < uint64(it.k-depth-1) {
			continue
		}
		it.push(id, cands)
	}
}

func (it *Iterator) push(id uint32, cands *roaring.Bitmap) {
	it.path = append(it.path, id)
	it.levels = append(it.levels, level{cands: cands})
	top := &it.levels[len(it.levels)-1]
	top.it.Initialize(cands)
}

func (it *Iterator) pop() {
	n := len(it.path) - 1
	it.path = it.path[:n]
	it.levels[n] = level{}
	it.levels = it.levels[:n]
}

func (it *Iterator) emit(last uint32) Clique {
	c := make(Clique, 0, it.k)
	for _, id := range it.path {
		c = append(c, it.g.Mask(id))
	}
	return append(c, it.g.Mask(last))
}
