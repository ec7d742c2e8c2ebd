// Package wordcliques finds groups of five-letter words that together use
// twenty-five distinct letters.
//
// Every word is reduced to the set of its letters, a 26-bit LetterMask.
// Anagrams share a mask and are collapsed into one node, which keeps the graph
// small. Two nodes are connected when their masks share no bits, and a group of
// five words is a 5-clique in that graph.
//
// # Quick Start
//
//	idx := wordcliques.BuildIndex(words) // words already filtered with Valid
//	g := wordcliques.BuildGraph(idx.Masks())
//
//	var lines []string
//	for c := range wordcliques.FindCliques(g) {
//	    lines = append(lines, wordcliques.Format(c, idx))
//	}
//	slices.Sort(lines)
//
// # Triangular Adjacency
//
// The graph stores an edge only from the smaller mask to the larger one. A
// clique can then only be reached in ascending order, so each group is found
// exactly once and no permutation check is needed.
//
// # Parallel Search
//
// The index and graph are immutable after construction. Finder.Collect splits
// the top-level nodes into chunks and searches them on an errgroup; Solver
// wraps the whole pipeline with logging, metrics and progress reporting:
//
//	s := wordcliques.NewSolver(
//	    wordcliques.WithLogger(wordcliques.NewTextLogger(slog.LevelInfo)),
//	    wordcliques.WithFinderOptions(wordcliques.WithWorkers(8)),
//	)
//	res, err := s.Solve(ctx, words)
//
// # Output Format
//
// A clique is rendered as its word groups separated by GroupSeparator, where a
// group lists its anagrams separated by WordSeparator:
//
//	abcde|bcdea,fghij,klmno,pqrst,uvwxy
//
// Both levels are sorted, and the lines themselves are sorted, so output is
// byte-for-byte reproducible.
package wordcliques
