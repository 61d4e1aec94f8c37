package huffcode

import (
	"fmt"
	"strings"
)

// Bits is an unpacked bit string: one element per bit, each 0 or 1.
//
// It exists to check codes end to end; it is not a compact wire format.
type Bits []byte

// AppendCode appends every bit of hc, first bit first.
func (bits Bits) AppendCode(hc Code) Bits {
	for i := byte(0); i < hc.Size; i++ {
		bits = append(bits, hc.Bit(i))
	}
	return bits
}

// String returns the bits as a string of '0' and '1'.
func (bits Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

var _ fmt.Stringer = Bits(nil)

// Encode concatenates the code of each symbol in seq.
func Encode(ct CodeTable, seq []Symbol) (Bits, error) {
	var size uint64
	for index, sym := range seq {
		hc, found := ct[sym]
		if !found {
			return nil, &UnknownSymbolError{Symbol: sym, Index: index}
		}
		size += uint64(hc.Size)
	}

	out := make(Bits, 0, size)
	for _, sym := range seq {
		out = out.AppendCode(ct[sym])
	}
	return out, nil
}

// Decode reverses Encode by walking the tree from the root, one bit at a
// time, and emitting a symbol each time a leaf is reached.
//
// A tree whose root is a Leaf consumes one 0 bit per symbol.
//
func (t Tree) Decode(bits Bits) ([]Symbol, error) {
	if t.IsEmpty() {
		if len(bits) != 0 {
			return nil, fmt.Errorf("%w: %d bits for an empty tree", ErrInvalidBit, len(bits))
		}
		return nil, nil
	}

	root := t.Root()
	if t.Node(root).IsLeaf() {
		sym := t.Node(root).Symbol
		out := make([]Symbol, len(bits))
		for index, bit := range bits {
			if bit != 0 {
				return nil, fmt.Errorf("%w: %d at offset %d", ErrInvalidBit, bit, index)
			}
			out[index] = sym
		}
		return out, nil
	}

	var out []Symbol
	cur := root
	for index, bit := range bits {
		node := t.Node(cur)
		switch bit {
		case 0:
			cur = node.Left
		case 1:
			cur = node.Right
		default:
			return nil, fmt.Errorf("%w: %d at offset %d", ErrInvalidBit, bit, index)
		}

		if leaf := t.Node(cur); leaf.IsLeaf() {
			out = append(out, leaf.Symbol)
			cur = root
		}
	}

	if cur != root {
		return nil, ErrTruncated
	}
	return out, nil
}
