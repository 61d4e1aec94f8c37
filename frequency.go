package huffcode

import (
	"fmt"
	"sort"
)

// FrequencyTable maps each distinct Symbol to the number of times it occurs.
//
// A table produced by Count never holds a zero count, and the sum of its
// values equals the length of the counted sequence.
//
type FrequencyTable map[Symbol]uint64

// Count tallies the occurrences of each Symbol in seq in a single pass.  An
// empty seq yields an empty, non-nil table.
func Count(seq []Symbol) FrequencyTable {
	ft := make(FrequencyTable)
	for _, sym := range seq {
		ft[sym]++
	}
	return ft
}

// CountBytes is like Count, but treats each byte of data as a Symbol.
func CountBytes(data []byte) FrequencyTable {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	ft := make(FrequencyTable)
	for b, n := range counts {
		if n != 0 {
			ft[Symbol(b)] = n
		}
	}
	return ft
}

// CountString is like Count, but treats each rune of str as a Symbol.
func CountString(str string) FrequencyTable {
	ft := make(FrequencyTable)
	for _, r := range str {
		ft[Symbol(r)]++
	}
	return ft
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft)
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range ft {
		total = saturatingAdd(total, n)
	}
	return total
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ft))
	for sym := range ft {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// Validate checks that every symbol is valid and every count is non-zero.
func (ft FrequencyTable) Validate() error {
	for _, sym := range ft.Symbols() {
		if !sym.IsValid() {
			return fmt.Errorf("%w: symbol %d is negative", ErrInvalidFrequency, int32(sym))
		}
		if ft[sym] == 0 {
			return fmt.Errorf("%w: symbol %s has a count of zero", ErrInvalidFrequency, sym)
		}
	}
	return nil
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
