package wordlist

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode"

	"github.com/hupe1980/wordcliques"
)

const maxLineSize = 1 << 20

// Stats counts the lines seen by a Reader.
type Stats struct {
	Lines    int `json:"lines"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// Reader yields the valid words of a line-oriented stream.
type Reader struct {
	sc    *bufio.Scanner
	stats Stats
	word  string
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next advances to the next valid word. It returns false at the end of the
// stream or on error; check Err afterwards.
func (r *Reader) Next() bool {
	for r.sc.Scan() {
		r.stats.Lines++
		w := strings.TrimRightFunc(r.sc.Text(), unicode.IsSpace)
		if !wordcliques.Valid(w) {
			r.stats.Rejected++
			continue
		}
		r.stats.Accepted++
		r.word = w
		return true
	}
	r.word = ""
	return false
}

// Word returns the word found by the last successful Next.
func (r *Reader) Word() string {
	return r.word
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	return r.sc.Err()
}

// Stats returns the counts so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// ReadAll reads every valid word from r, checking ctx every few thousand lines.
func ReadAll(ctx context.Context, r io.Reader) ([]string, Stats, error) {
	wr := NewReader(r)
	var words []string
	for wr.Next() {
		words = append(words, wr.Word())
		if wr.stats.Lines%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, wr.stats, err
			}
		}
	}
	if err := wr.Err(); err != nil {
		return nil, wr.stats, err
	}
	return words, wr.stats, ctx.Err()
}
