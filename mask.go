package wordcliques

import (
	"math/bits"
	"strings"
)

const (
	// WordLength is the number of letters in every accepted word.
	WordLength = 5

	// AlphabetSize is the number of letters a LetterMask can represent.
	AlphabetSize = 26

	// alphabetBits has one bit set per alphabet letter.
	alphabetBits LetterMask = 1<<AlphabetSize - 1
)

// LetterMask is the letter set of a word: bit i is set iff the letter 'a'+i
// occurs in it. Only the low 26 bits are meaningful.
type LetterMask uint32

// Encode returns the LetterMask of word.
//
// word must consist of exactly five distinct lowercase ASCII letters. Input is
// filtered before it reaches Encode (see Valid), so a violation is a programming
// error: Encode panics with an *ErrInvalidWord instead of producing a mask that
// would break the disjointness guarantees downstream.
func Encode(word string) LetterMask {
	m, err := encode(word)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate reports whether word satisfies the Encode precondition.
// It returns nil or an *ErrInvalidWord describing the first violation.
func Validate(word string) error {
	_, err := encode(word)
	return err
}

// Valid is the boolean form of Validate.
func Valid(word string) bool {
	return Validate(word) == nil
}

func encode(word string) (LetterMask, error) {
	if len(word) != WordLength {
		return 0, &ErrInvalidWord{Word: word, Reason: "length is not 5"}
	}

	var m LetterMask
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return 0, &ErrInvalidWord{Word: word, Reason: "not a lowercase letter"}
		}
		if m.Has(c) {
			return 0, &ErrInvalidWord{Word: word, Reason: "repeated letter"}
		}
		m |= 1 << (c - 'a')
	}
	return m, nil
}

// Len returns the number of letters in the set.
func (m LetterMask) Len() int {
	return bits.OnesCount32(uint32(m))
}

// Has reports whether letter is in the set.
func (m LetterMask) Has(letter byte) bool {
	if letter < 'a' || letter > 'z' {
		return false
	}
	return m&(1<<(letter-'a')) != 0
}

// Disjoint reports whether m and other share no letters.
func (m LetterMask) Disjoint(other LetterMask) bool {
	return m&other == 0
}

// Missing returns the letters of the alphabet that are not in m.
func (m LetterMask) Missing() LetterMask {
	return ^m & alphabetBits
}

// String returns the letters of the set in alphabetical order.
func (m LetterMask) String() string {
	var sb strings.Builder
	sb.Grow(m.Len())
	for v := uint32(m & alphabetBits); v != 0; v &= v - 1 {
		sb.WriteByte('a' + byte(bits.TrailingZeros32(v)))
	}
	return sb.String()
}
