// Package codec centralizes element-array encoding for the contiguous
// collections.
//
// Codec selection is a breaking-change boundary: bytes produced by one codec
// may not decode with another. Embedders that persist encoded collections
// should record the codec name alongside the bytes and resolve it with
// ByName on load.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the default codec used by the library.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
//
// Compressed variants compose: "zstd+json" is a Zstd wrapper around the JSON
// codec, "lz4+go-json" an LZ4 wrapper around GoJSON, and so on.
func ByName(name string) (Codec, bool) {
	if outer, rest, ok := strings.Cut(name, "+"); ok {
		inner, found := ByName(rest)
		if !found {
			return nil, false
		}
		switch outer {
		case "zstd":
			return Zstd{Inner: inner}, true
		case "lz4":
			return LZ4{Inner: inner}, true
		default:
			return nil, false
		}
	}
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
