package huffcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Append(t *testing.T) {
	var hc Code
	hc = hc.Append(1)
	hc = hc.Append(0)
	hc = hc.Append(1)
	hc = hc.Append(1)

	assert.Equal(t, MakeCode(4, 0x0d), hc)
	assert.Equal(t, "1011", hc.Digits())
	assert.Equal(t, "\"1011\"", hc.String())
	assert.Equal(t, byte(1), hc.Bit(0))
	assert.Equal(t, byte(0), hc.Bit(1))
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "1011", prefix: "", expect: true},
		{code: "1011", prefix: "1", expect: true},
		{code: "1011", prefix: "10", expect: true},
		{code: "1011", prefix: "1011", expect: true},
		{code: "1011", prefix: "11", expect: false},
		{code: "1011", prefix: "10110", expect: false},
		{code: "0", prefix: "1", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, err := ParseCode(row.code)
			require.NoError(t, err)
			prefix, err := ParseCode(row.prefix)
			require.NoError(t, err)
			assert.Equal(t, row.expect, hc.HasPrefix(prefix))
		})
	}
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0110")
	require.NoError(t, err)
	assert.Equal(t, "0110", hc.Digits())

	_, err = ParseCode("01x")
	assert.ErrorIs(t, err, ErrInvalidBit)

	long := make([]byte, MaxBitsPerCode+1)
	for i := range long {
		long[i] = '1'
	}
	_, err = ParseCode(string(long))
	assert.ErrorIs(t, err, ErrCodeTooLong)

	full, err := ParseCode(string(long[:MaxBitsPerCode]))
	require.NoError(t, err)
	assert.Equal(t, byte(MaxBitsPerCode), full.Size)
	assert.Equal(t, ^uint64(0), full.Bits)
	assert.True(t, full.HasPrefix(full))
}
