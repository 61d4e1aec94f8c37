// Package codec serializes values for output.  Every Codec is symmetric, so
// anything written can be read back.
package codec

import (
	"fmt"
	"sort"
	"strings"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Format names a built-in Codec.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
	FormatCBOR    Format = "cbor"
)

// Binary returns true iff the format's output is not human-readable text.
func (f Format) Binary() bool {
	return f == FormatMsgpack || f == FormatCBOR
}

// Formats lists the names accepted by ForFormat.
func Formats() []string {
	out := []string{string(FormatJSON), string(FormatYAML), string(FormatMsgpack), string(FormatCBOR)}
	sort.Strings(out)
	return out
}

// ForFormat returns the Codec for the named format.
func ForFormat[V any](name string) (Codec[V], error) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return JSON[V]{Indent: "  "}, nil
	case FormatYAML:
		return YAML[V]{}, nil
	case FormatMsgpack:
		return Msgpack[V]{}, nil
	case FormatCBOR:
		c, err := NewCBOR[V](true)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("codec: unknown format %q (want one of %s)", name, strings.Join(Formats(), ", "))
	}
}
