package huffcode

import (
	"testing"
)

func TestSaturatingArithmetic(t *testing.T) {
	const max = ^uint64(0)

	type testRow struct {
		a, b uint64
		add  uint64
		mul  uint64
	}

	testData := [...]testRow{
		{a: 0, b: 0, add: 0, mul: 0},
		{a: 3, b: 7, add: 10, mul: 21},
		{a: max, b: 1, add: max, mul: max},
		{a: max, b: 0, add: max, mul: 0},
		{a: 1 << 32, b: 1 << 32, add: 1 << 33, mul: max},
		{a: 1 << 31, b: 1 << 32, add: 1<<31 + 1<<32, mul: 1 << 63},
	}
	for _, row := range testData {
		if actual := saturatingAdd(row.a, row.b); actual != row.add {
			t.Errorf("saturatingAdd(%d, %d): expected %d, got %d", row.a, row.b, row.add, actual)
		}
		if actual := saturatingMul(row.a, row.b); actual != row.mul {
			t.Errorf("saturatingMul(%d, %d): expected %d, got %d", row.a, row.b, row.mul, actual)
		}
	}
}

func TestWeightedLength_Saturates(t *testing.T) {
	ft := FrequencyTable{'a': ^uint64(0) / 2, 'b': ^uint64(0) / 2}
	ct := CodeTable{'a': MakeCode(4, 0), 'b': MakeCode(4, 1)}
	if actual := ct.WeightedLength(ft); actual != ^uint64(0) {
		t.Errorf("expected WeightedLength to saturate, got %d", actual)
	}

	tree := MustBuildTree(FrequencyTable{'a': ^uint64(0) / 2, 'b': ^uint64(0)/2 + 1, 'c': 5})
	if actual := tree.WeightedPathLength(); actual != ^uint64(0) {
		t.Errorf("expected WeightedPathLength to saturate, got %d", actual)
	}
}
