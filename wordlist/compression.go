package wordlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names a stream compression format.
type Compression string

const (
	None Compression = "none"
	Gzip Compression = "gzip"
	Zstd Compression = "zstd"
	LZ4  Compression = "lz4"
)

// CompressionFor picks the format from the extension of name.
func CompressionFor(name string) Compression {
	switch n := strings.ToLower(name); {
	case strings.HasSuffix(n, ".gz"), strings.HasSuffix(n, ".gzip"):
		return Gzip
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	case strings.HasSuffix(n, ".lz4"):
		return LZ4
	default:
		return None
	}
}

// ParseCompression parses a format name as printed by Compression.
// The empty string means None.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(s)); c {
	case "":
		return None, nil
	case None, Gzip, Zstd, LZ4:
		return c, nil
	default:
		return "", fmt.Errorf("wordlist: unknown compression %q", s)
	}
}

// decompress wraps r. Closing the result releases decoder resources only.
func decompress(c Compression, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case None, "":
		return io.NopCloser(r), nil
	case Gzip:
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return z, nil
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("wordlist: unknown compression %q", c)
	}
}

// compress wraps w. Closing the result flushes the encoder but leaves w open.
func compress(c Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None, "":
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		e, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return e, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("wordlist: unknown compression %q", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
