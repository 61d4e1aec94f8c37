package huffcode

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForceOptimum returns the least Σ freq×length over every assignment of
// lengths 1..n-1 that satisfies the Kraft inequality.  By Kraft's theorem
// each such assignment is realized by some prefix code.
func bruteForceOptimum(ft FrequencyTable) uint64 {
	symbols := ft.Symbols()
	n := len(symbols)
	if n <= 1 {
		return ft.Total()
	}

	maxLen := n - 1
	best := ^uint64(0)

	var search func(i int, used uint64, cost uint64)
	search = func(i int, used uint64, cost uint64) {
		if cost >= best {
			return
		}
		if i == n {
			best = cost
			return
		}
		for l := 1; l <= maxLen; l++ {
			weight := uint64(1) << uint(maxLen-l)
			if used+weight > uint64(1)<<uint(maxLen) {
				continue
			}
			search(i+1, used+weight, cost+ft[symbols[i]]*uint64(l))
		}
	}
	search(0, 0, 0)
	return best
}

func randomFrequencyTable(rng *rand.Rand, numSymbols int, maxFreq int) FrequencyTable {
	ft := make(FrequencyTable, numSymbols)
	for len(ft) < numSymbols {
		sym := Symbol('a' + rng.Intn(26))
		ft[sym] = uint64(1 + rng.Intn(maxFreq))
	}
	return ft
}

func TestCodes_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	one := big.NewRat(1, 1)

	for iter := 0; iter < 200; iter++ {
		numSymbols := 2 + rng.Intn(5)
		ft := randomFrequencyTable(rng, numSymbols, 1+rng.Intn(40))

		ct, tree, err := CodesFor(ft)
		require.NoError(t, err)

		require.Equal(t, ft.Len(), ct.Len())
		for sym := range ft {
			_, found := ct[sym]
			require.True(t, found, "missing code for %s in %v", sym, ft)
		}

		require.True(t, ct.IsPrefixFree(), "not prefix-free: %v", ct)
		require.Zero(t, one.Cmp(ct.KraftSum()), "Kraft sum %s for %v", ct.KraftSum().RatString(), ft)
		require.Equal(t, bruteForceOptimum(ft), ct.WeightedLength(ft), "not optimal for %v", ft)
		require.Equal(t, tree.WeightedPathLength(), ct.WeightedLength(ft))
	}
}

func TestCodes_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	inputs := []string{
		"abbcccddddeeeeeeefffffffffffffffff",
		"aaaa",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"héllo, wörld",
	}
	for i := 0; i < 20; i++ {
		buf := make([]byte, rng.Intn(200)+1)
		for j := range buf {
			buf[j] = byte('a' + rng.Intn(1+rng.Intn(26)))
		}
		inputs = append(inputs, string(buf))
	}

	for _, input := range inputs {
		seq := SymbolsFromString(input)
		ct, tree, err := CodesFor(Count(seq))
		require.NoError(t, err)

		bits, err := Encode(ct, seq)
		require.NoError(t, err)
		assert.Equal(t, ct.WeightedLength(Count(seq)), uint64(len(bits)))

		decoded, err := tree.Decode(bits)
		require.NoError(t, err)
		assert.Equal(t, seq, decoded, "tree round trip of %q", input)

		var d Decoder
		require.NoError(t, d.Init(ct))
		decoded, err = d.DecodeBits(bits)
		require.NoError(t, err)
		assert.Equal(t, seq, decoded, "table round trip of %q", input)
	}
}

func TestCodes_Scenarios(t *testing.T) {
	t.Run("sample", func(t *testing.T) {
		ct, err := Codes(SymbolsFromString("abbcccddddeeeeeeefffffffffffffffff"))
		require.NoError(t, err)
		assert.Equal(t, byte(1), ct['f'].Size)
		assert.Equal(t, byte(5), ct.MaxSize())
		assert.GreaterOrEqual(t, ct['a'].Size, byte(5))
	})

	t.Run("single", func(t *testing.T) {
		ct, err := Codes(SymbolsFromString("aaaa"))
		require.NoError(t, err)
		require.Len(t, ct, 1)
		assert.Equal(t, "0", ct['a'].Digits())
	})

	t.Run("empty", func(t *testing.T) {
		ct, err := Codes(nil)
		require.NoError(t, err)
		require.NotNil(t, ct)
		assert.Empty(t, ct)

		ct, tree, err := CodesFor(FrequencyTable{})
		require.NoError(t, err)
		assert.Empty(t, ct)
		assert.True(t, tree.IsEmpty())
	})
}

func TestEncode_UnknownSymbol(t *testing.T) {
	ct, err := Codes(SymbolsFromString("ab"))
	require.NoError(t, err)

	_, err = Encode(ct, SymbolsFromString("abz"))
	require.ErrorIs(t, err, ErrUnknownSymbol)

	var use *UnknownSymbolError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, Symbol('z'), use.Symbol)
	assert.Equal(t, 2, use.Index)
}

func TestTree_Decode(t *testing.T) {
	tree := MustBuildTree(CountString("abbcccddddeeeeeeefffffffffffffffff"))

	out, err := tree.Decode(Bits{0, 1, 0, 1, 1, 1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, SymbolsFromString("fea"), out)

	_, err = tree.Decode(Bits{1, 1})
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = tree.Decode(Bits{3})
	assert.ErrorIs(t, err, ErrInvalidBit)

	single := MustBuildTree(CountString("aaaa"))
	out, err = single.Decode(Bits{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, SymbolsFromString("aaa"), out)

	_, err = single.Decode(Bits{0, 1})
	assert.ErrorIs(t, err, ErrInvalidBit)

	out, err = Tree{}.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = Tree{}.Decode(Bits{0})
	assert.ErrorIs(t, err, ErrInvalidBit)
}

func TestBits_String(t *testing.T) {
	ct, err := Codes(SymbolsFromString("abbcccddddeeeeeeefffffffffffffffff"))
	require.NoError(t, err)

	bits, err := Encode(ct, SymbolsFromString("fed"))
	require.NoError(t, err)
	assert.Equal(t, "010110", bits.String())
}
