package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"sort"
)

// CodeTable maps each Symbol to its Code.
//
// Map iteration order is unspecified; use Sorted for a reproducible order.
type CodeTable map[Symbol]Code

// Entry is one (Symbol, Code) pair of a CodeTable.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// Len returns the number of symbols with codes.
func (ct CodeTable) Len() int {
	return len(ct)
}

// Encode returns the Code for sym.
func (ct CodeTable) Encode(sym Symbol) (Code, bool) {
	hc, found := ct[sym]
	return hc, found
}

// Sorted returns every entry, ordered by (Code.Size, Symbol) ascending.
func (ct CodeTable) Sorted() []Entry {
	list := make(byCodeSize, 0, len(ct))
	for sym, hc := range ct {
		list = append(list, Entry{sym, hc})
	}
	list.Sort()
	return list
}

// MinSize is the bit length of the shortest code, or 0 if empty.
func (ct CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range ct {
		if minSize == 0 || hc.Size < minSize {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 if empty.
func (ct CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range ct {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// IsPrefixFree returns true iff no code is a prefix of another code.
func (ct CodeTable) IsPrefixFree() bool {
	_, _, ok := ct.findPrefixPair()
	return ok
}

func (ct CodeTable) findPrefixPair() (Entry, Entry, bool) {
	list := ct.Sorted()
	for i, a := range list {
		if a.Code.Size == 0 {
			return a, a, false
		}
		for _, b := range list[i+1:] {
			if b.Code.HasPrefix(a.Code) {
				return a, b, false
			}
		}
	}
	return Entry{}, Entry{}, true
}

// KraftSum returns the exact sum over all codes of 2^-Size.
//
// For a complete binary code over two or more symbols the sum is exactly 1.
// The one-symbol table produced by AssignCodes sums to 1/2.
//
func (ct CodeTable) KraftSum() *big.Rat {
	sum := new(big.Rat)
	for _, hc := range ct {
		denom := new(big.Int).Lsh(big.NewInt(1), uint(hc.Size))
		sum.Add(sum, new(big.Rat).SetFrac(big.NewInt(1), denom))
	}
	return sum
}

// WeightedLength returns the sum over all symbols of frequency times code
// length, i.e. the number of bits needed to encode the counted input.
// Symbols in ft without a code are ignored.
func (ct CodeTable) WeightedLength(ft FrequencyTable) uint64 {
	var total uint64
	for sym, n := range ft {
		if hc, found := ct[sym]; found {
			total = saturatingAdd(total, saturatingMul(n, uint64(hc.Size)))
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.MaxSize())
	for _, entry := range ct.Sorted() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCodeSize {{{

type byCodeSize []Entry

func (list byCodeSize) Sort() {
	sort.Sort(list)
}

func (list byCodeSize) Len() int {
	return len(list)
}

func (list byCodeSize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCodeSize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Code.Size != b.Code.Size {
		return a.Code.Size < b.Code.Size
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = byCodeSize(nil)

// }}}
