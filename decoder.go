package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder implements a table-driven decoder for any prefix-free CodeTable.
// Unlike Tree.Decode, it needs only the codes, not the tree they came from.
type Decoder struct {
	table   map[Code]decoderData
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from the given CodeTable.
//
// Every code must be non-empty, and no code may be a prefix of another;
// otherwise Init returns an error wrapping ErrNotPrefixFree.  An empty
// CodeTable is permitted and yields a Decoder that decodes nothing.
//
func (d *Decoder) Init(ct CodeTable) error {
	if len(ct) == 0 {
		*d = Decoder{}
		return nil
	}

	if a, b, ok := ct.findPrefixPair(); !ok {
		return fmt.Errorf("%w: code %s for %s is a prefix of code %s for %s", ErrNotPrefixFree, a.Code, a.Symbol, b.Code, b.Symbol)
	}

	// len(table) is approximately n×log2(n) when filled.
	numSymbols := uint32(len(ct))
	numTableSlots := numSymbols * log2uint32(numSymbols)

	*d = Decoder{
		table:   make(map[Code]decoderData, numTableSlots),
		minSize: ct.MinSize(),
		maxSize: ct.MaxSize(),
	}

	for _, entry := range ct.Sorted() {
		fillTable(d.table, entry.Symbol, entry.Code)
	}

	return nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize.
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size) additional bits will be required.
//
// If the Decode fails due to unreasonable input, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize byte, maxSize byte) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// DecodeBits decodes a whole bit string, one bit at a time.
func (d Decoder) DecodeBits(bits Bits) ([]Symbol, error) {
	var out []Symbol
	var hc Code
	for index, bit := range bits {
		if bit > 1 {
			return nil, fmt.Errorf("%w: %d at offset %d", ErrInvalidBit, bit, index)
		}
		hc = hc.Append(bit)

		symbol, minSize, _ := d.Decode(hc)
		switch {
		case symbol.IsValid():
			out = append(out, symbol)
			hc = Code{}
		case minSize == 0:
			return nil, fmt.Errorf("%w: no code begins with %s (offset %d)", ErrInvalidBit, hc, index)
		}
	}
	if hc.Size != 0 {
		return nil, fmt.Errorf("%w: %s is incomplete", ErrTruncated, hc)
	}
	return out, nil
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize byte
	maxSize byte
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, hc.Size, hc.Size}
	table[hc] = dd

	for hc.Size != 0 {
		// For a code "x...xa", compute its sibling "x...xA" where
		// A = NOT a, i.e. flip the last bit.

		bit := uint64(1) << (hc.Size - 1)
		hc.Bits ^= bit

		// Merge the dd's from "x...xa" (dd) and "x...xA" (ddSibling)
		// into ddNew (the new parent for dd and ddSibling).

		ddNew := decoderData{InvalidSymbol, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "x...xA" to "x...x".

		hc.Size--
		hc.Bits &^= bit

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Digits() < b.Digits()
}

var _ sort.Interface = byCode(nil)

// }}}
