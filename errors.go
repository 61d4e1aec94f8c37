package huffcode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a tree is requested for an empty
	// FrequencyTable.  There is nothing to build a tree from.
	ErrEmptyInput = errors.New("huffcode: empty input")

	// ErrInvalidFrequency is returned when a FrequencyTable holds a zero
	// count or an invalid Symbol.
	ErrInvalidFrequency = errors.New("huffcode: invalid frequency table")

	// ErrCodeTooLong is returned when a tree is deeper than MaxBitsPerCode.
	ErrCodeTooLong = errors.New("huffcode: code exceeds maximum length")

	// ErrNotPrefixFree is returned by Decoder.Init when one code in the
	// table is a prefix of another.
	ErrNotPrefixFree = errors.New("huffcode: code table is not prefix-free")

	// ErrUnknownSymbol is matched by *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("huffcode: symbol not in code table")

	// ErrTruncated is returned when a bit string ends partway through a
	// code.
	ErrTruncated = errors.New("huffcode: truncated bit string")

	// ErrInvalidBit is returned when a bit string holds a value other than
	// 0 or 1, or a bit that leads nowhere in the tree.
	ErrInvalidBit = errors.New("huffcode: invalid bit")
)

// UnknownSymbolError reports a Symbol that has no code.
type UnknownSymbolError struct {
	Symbol Symbol
	Index  int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffcode: symbol %s at index %d not in code table", e.Symbol, e.Index)
}

func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

var _ error = (*UnknownSymbolError)(nil)
