// Package codec encodes the machine-readable run summary.
//
// The summary format is selected by name on the command line, so every
// codec has a stable Name.
package codec

import (
	"fmt"
	"slices"
)

// Codec encodes and decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Indenter is implemented by codecs that can produce human-readable output.
type Indenter interface {
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
}

// Default is the codec used when none is named.
var Default Codec = GoJSON{}

var builtin = map[string]Codec{
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns a built-in codec by its stable name. The empty name selects
// Default.
func ByName(name string) (Codec, bool) {
	if name == "" {
		return Default, true
	}
	c, ok := builtin[name]
	return c, ok
}

// Names returns the names of the built-in codecs in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Pretty marshals v indented by two spaces when c supports it, and compactly
// otherwise. The result always ends with a newline.
func Pretty(c Codec, v any) ([]byte, error) {
	if c == nil {
		c = Default
	}

	var (
		b   []byte
		err error
	)
	if ind, ok := c.(Indenter); ok {
		b, err = ind.MarshalIndent(v, "", "  ")
	} else {
		b, err = c.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return append(b, '\n'), nil
}
