package huffcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	ft := Count(SymbolsFromString("abbcccddddeeeeeeefffffffffffffffff"))

	expect := FrequencyTable{'a': 1, 'b': 2, 'c': 3, 'd': 4, 'e': 7, 'f': 17}
	assert.Equal(t, expect, ft)
	assert.Equal(t, 6, ft.Len())
	assert.Equal(t, uint64(34), ft.Total())
	assert.Equal(t, []Symbol{'a', 'b', 'c', 'd', 'e', 'f'}, ft.Symbols())
	require.NoError(t, ft.Validate())
}

func TestCount_Empty(t *testing.T) {
	ft := Count(nil)
	require.NotNil(t, ft)
	assert.Equal(t, 0, ft.Len())
	assert.Equal(t, uint64(0), ft.Total())
	assert.Empty(t, ft.Symbols())
}

func TestCountBytes(t *testing.T) {
	data := []byte{0x00, 0xff, 0x00, 'x'}
	ft := CountBytes(data)
	assert.Equal(t, FrequencyTable{0x00: 2, 0xff: 1, 'x': 1}, ft)
	assert.Equal(t, Count(SymbolsFromBytes(data)), ft)
}

func TestCountString(t *testing.T) {
	ft := CountString("héllo, wörld")
	assert.Equal(t, uint64(3), ft['l'])
	assert.Equal(t, uint64(1), ft['é'])
	assert.Equal(t, uint64(1), ft['ö'])
	assert.Equal(t, uint64(12), ft.Total())
	assert.Equal(t, Count(SymbolsFromString("héllo, wörld")), ft)
}

func TestFrequencyTable_Validate(t *testing.T) {
	type testRow struct {
		name string
		ft   FrequencyTable
		ok   bool
	}

	testData := [...]testRow{
		{name: "empty", ft: FrequencyTable{}, ok: true},
		{name: "valid", ft: FrequencyTable{'a': 1, 'b': 9}, ok: true},
		{name: "zero-count", ft: FrequencyTable{'a': 1, 'b': 0}, ok: false},
		{name: "negative-symbol", ft: FrequencyTable{-5: 1}, ok: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := row.ft.Validate()
			if row.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidFrequency)
			}
		})
	}
}

func TestFrequencyTable_TotalSaturates(t *testing.T) {
	ft := FrequencyTable{'a': ^uint64(0), 'b': 2}
	assert.Equal(t, ^uint64(0), ft.Total())
}
