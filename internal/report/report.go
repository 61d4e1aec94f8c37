// Package report turns a code table into a stable, serializable summary.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chronos-tachyon/huffcode"
)

// Entry describes the code of one symbol.
type Entry struct {
	Symbol  int32  `json:"symbol" yaml:"symbol" msgpack:"symbol" cbor:"symbol"`
	Display string `json:"display" yaml:"display" msgpack:"display" cbor:"display"`
	Freq    uint64 `json:"freq" yaml:"freq" msgpack:"freq" cbor:"freq"`
	Code    string `json:"code" yaml:"code" msgpack:"code" cbor:"code"`
	Length  int    `json:"length" yaml:"length" msgpack:"length" cbor:"length"`
}

// Report summarizes a code table built from some input.
type Report struct {
	Symbols        int     `json:"symbols" yaml:"symbols" msgpack:"symbols" cbor:"symbols"`
	TotalCount     uint64  `json:"total_count" yaml:"total_count" msgpack:"total_count" cbor:"total_count"`
	WeightedLength uint64  `json:"weighted_length" yaml:"weighted_length" msgpack:"weighted_length" cbor:"weighted_length"`
	AverageLength  float64 `json:"average_length" yaml:"average_length" msgpack:"average_length" cbor:"average_length"`
	Entropy        float64 `json:"entropy" yaml:"entropy" msgpack:"entropy" cbor:"entropy"`
	Entries        []Entry `json:"entries" yaml:"entries" msgpack:"entries" cbor:"entries"`
	Encoded        string  `json:"encoded,omitempty" yaml:"encoded,omitempty" msgpack:"encoded,omitempty" cbor:"encoded,omitempty"`
}

// Build produces a Report whose entries are ordered by (code length, symbol).
func Build(ft huffcode.FrequencyTable, ct huffcode.CodeTable) Report {
	sorted := ct.Sorted()
	r := Report{
		Symbols:        ct.Len(),
		TotalCount:     ft.Total(),
		WeightedLength: ct.WeightedLength(ft),
		Entries:        make([]Entry, 0, len(sorted)),
	}

	for _, entry := range sorted {
		r.Entries = append(r.Entries, Entry{
			Symbol:  int32(entry.Symbol),
			Display: entry.Symbol.String(),
			Freq:    ft[entry.Symbol],
			Code:    entry.Code.Digits(),
			Length:  int(entry.Code.Size),
		})
	}

	if r.TotalCount != 0 {
		total := float64(r.TotalCount)
		r.AverageLength = float64(r.WeightedLength) / total
		for _, sym := range ft.Symbols() {
			p := float64(ft[sym]) / total
			r.Entropy -= p * math.Log2(p)
		}
	}
	return r
}

// WithEncoded returns a copy of r that also carries the encoded input.
func (r Report) WithEncoded(bits huffcode.Bits) Report {
	r.Encoded = bits.String()
	return r
}

// IsEmpty returns true iff the report has no entries.
func (r Report) IsEmpty() bool {
	return len(r.Entries) == 0
}

// Style decorates the pieces of a text report.  The zero Style leaves text
// unchanged.
type Style struct {
	Header func(string) string
	Symbol func(string) string
	Code   func(string) string
	Muted  func(string) string
}

func apply(fn func(string) string, str string) string {
	if fn == nil {
		return str
	}
	return fn(str)
}

func padRight(str string, width int) string {
	if n := runewidth.StringWidth(str); n < width {
		return str + strings.Repeat(" ", width-n)
	}
	return str
}

// WriteText writes a human-readable table to w.
func (r Report) WriteText(w io.Writer, style Style) error {
	if r.IsEmpty() {
		return nil
	}

	// Widths are measured in terminal cells, not bytes.
	width := runewidth.StringWidth("symbol")
	for _, e := range r.Entries {
		if n := runewidth.StringWidth(e.Display); n > width {
			width = n
		}
	}

	var sb strings.Builder
	sb.WriteString(apply(style.Header, padRight("symbol", width)+fmt.Sprintf("  %8s  %6s  %s", "freq", "length", "code")))
	sb.WriteByte('\n')
	for _, e := range r.Entries {
		sb.WriteString(apply(style.Symbol, padRight(e.Display, width)))
		fmt.Fprintf(&sb, "  %8d  %6d  ", e.Freq, e.Length)
		sb.WriteString(apply(style.Code, e.Code))
		sb.WriteByte('\n')
	}
	sb.WriteString(apply(style.Muted, fmt.Sprintf(
		"%d symbols, %d occurrences, %d bits (%.3f bits/symbol, entropy %.3f)",
		r.Symbols, r.TotalCount, r.WeightedLength, r.AverageLength, r.Entropy)))
	sb.WriteByte('\n')
	if r.Encoded != "" {
		sb.WriteString(apply(style.Header, "encoded"))
		sb.WriteByte('\n')
		sb.WriteString(apply(style.Code, r.Encoded))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
