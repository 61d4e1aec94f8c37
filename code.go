package huffcode

import (
	"fmt"
	"strings"
)

// MaxBitsPerCode is the longest Code that can be represented.
const MaxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxBitsPerCode {
		return Code{}, fmt.Errorf("%w: %d bits", ErrCodeTooLong, len(str))
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, str[i], i)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i byte) byte {
	return byte((hc.Bits >> i) & 1)
}

// Append returns a copy of this Code with one more bit on the end.  The
// caller is responsible for checking Size < MaxBitsPerCode.
func (hc Code) Append(bit byte) Code {
	hc.Bits |= uint64(bit&1) << hc.Size
	hc.Size++
	return hc
}

// HasPrefix returns true iff the first prefix.Size bits of this Code equal
// prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.truncate(prefix.Size).Bits == prefix.Bits
}

func (hc Code) truncate(size byte) Code {
	if size >= MaxBitsPerCode {
		return hc
	}
	return Code{Size: size, Bits: hc.Bits & (uint64(1)<<size - 1)}
}

// Digits returns the bits as a string of '0' and '1', first bit first.
func (hc Code) Digits() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return "\"" + hc.Digits() + "\""
}

var _ fmt.Stringer = Code{}
