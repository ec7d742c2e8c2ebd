// Package testutil provides deterministic fixtures for wordcliques tests.
//
// This package is intended for use in tests and benchmarks only. It works on
// plain strings and uint32 letter masks so that the tests of any package can
// use it without import cycles.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Words(1000)                     // five distinct letters each
//	dense := rng.WordsFrom("abcdefghijkl", 80)   // small alphabet, many cliques
//	other := rng.Anagram(words[0])
//
// # Reference Cliques
//
//	want := testutil.BruteForceCliques(testutil.DistinctMasks(words), 5)
package testutil
