package huffcode

import (
	"fmt"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
//
// Bytes and runes both map onto Symbol without loss, so the same tree builder
// serves byte-oriented and text-oriented callers.
//
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes also carry it.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is non-negative.
func (sym Symbol) IsValid() bool {
	return sym >= 0
}

// String returns a human-readable representation of this Symbol.  Printable
// runes are quoted; everything else is shown in U+XXXX notation.
func (sym Symbol) String() string {
	if !sym.IsValid() {
		return "<invalid>"
	}
	r := rune(sym)
	if utf8.ValidRune(r) && unicode.IsPrint(r) {
		return strconv.QuoteRune(r)
	}
	return fmt.Sprintf("U+%04X", uint32(sym))
}

// SymbolsFromBytes converts each byte of data into a Symbol.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for i, b := range data {
		out[i] = Symbol(b)
	}
	return out
}

// SymbolsFromString converts each rune of str into a Symbol.  Invalid UTF-8
// sequences become utf8.RuneError.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(str))
	for _, r := range str {
		out = append(out, Symbol(r))
	}
	return out
}
