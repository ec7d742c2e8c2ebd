package wordcliques

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCliqueSize is returned when the clique size is not positive.
	ErrInvalidCliqueSize = errors.New("clique size must be positive")

	// ErrDuplicateClique is returned when two cliques format identically.
	// The triangular adjacency makes this impossible for a correct graph, so
	// seeing it means the graph or index was built from inconsistent input.
	ErrDuplicateClique = errors.New("duplicate clique")

	// ErrMemoryLimit is returned when the graph does not fit the configured
	// memory budget.
	ErrMemoryLimit = errors.New("graph exceeds memory limit")
)

// ErrInvalidWord indicates a word that does not consist of exactly five
// distinct lowercase letters.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidWord struct {
	Word   string
	Reason string
	cause  error
}

func (e *ErrInvalidWord) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

func (e *ErrInvalidWord) Unwrap() error { return e.cause }

// ErrUnknownMask indicates a LetterMask that is not a key of the index or graph
// it was looked up in.
type ErrUnknownMask struct {
	Mask LetterMask
}

func (e *ErrUnknownMask) Error() string {
	return fmt.Sprintf("unknown letter mask %#07x (%s)", uint32(e.Mask), e.Mask)
}
