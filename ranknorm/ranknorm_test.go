package ranknorm_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/ranknorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRanks_Distinct verifies distinct values rank as a permutation of 1..n.
func TestRanks_Distinct(t *testing.T) {
	got := ranknorm.Ranks([]float64{30, 10, 20, 40})
	assert.Equal(t, []float64{3, 1, 2, 4}, got)
}

// TestRanks_Ties verifies tied values share the average of their ranks.
func TestRanks_Ties(t *testing.T) {
	got := ranknorm.Ranks([]float64{10, 20, 10})
	assert.Equal(t, []float64{1.5, 3, 1.5}, got, "two-way tie averages ranks 1 and 2")

	got = ranknorm.Ranks([]float64{5, 5, 5, 5})
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, got, "all tied at the middle rank")
}

// TestRanks_InputUntouched verifies Ranks never reorders its input.
func TestRanks_InputUntouched(t *testing.T) {
	x := []float64{3, 1, 2}
	_ = ranknorm.Ranks(x)
	assert.Equal(t, []float64{3, 1, 2}, x)
}

// TestNormalize_MonotoneAndCentered verifies z-scores preserve order, pin
// the middle rank of an odd count at exactly zero, and come out symmetric.
func TestNormalize_MonotoneAndCentered(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{{12, -4, 0, 100, 3}}, "x")
	require.NoError(t, err)

	z := ranknorm.Normalize(arr)
	require.Equal(t, arr.Draws(), z.Draws())
	require.Equal(t, arr.Names(), z.Names())

	// Order preserved: argsort of input equals argsort of output.
	in := arr.Chain(0, 0)
	out := z.Chain(0, 0)
	inOrder := argsort(in)
	outOrder := argsort(out)
	assert.Equal(t, inOrder, outOrder, "rank-normal transform is monotone")

	// The median draw (rank 3 of 5) maps to Phi^-1(1/2) = 0.
	assert.InDelta(t, 0.0, out[4], 1e-12, "middle rank maps to zero")

	// Blom fractions are symmetric, so the scores pair up by sign.
	assert.InDelta(t, -out[3], out[1], 1e-12, "extreme ranks mirror")
	assert.InDelta(t, -out[0], out[2], 1e-12, "inner ranks mirror")
}

// TestNormalize_PoolsAcrossChains verifies ranks pool over all chains of a
// parameter: a chain sitting entirely above another must map to entirely
// positive scores.
func TestNormalize_PoolsAcrossChains(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{
		{1, 2, 3, 4},
		{11, 12, 13, 14},
	}, "x")
	require.NoError(t, err)

	z := ranknorm.Normalize(arr)
	for d := 0; d < 4; d++ {
		assert.Negative(t, z.At(d, 0, 0), "low chain maps below zero")
		assert.Positive(t, z.At(d, 1, 0), "high chain maps above zero")
	}
}

// TestNormalize_ConstantParameter verifies a constant parameter maps to all
// zeros (every rank ties at the middle), keeping degeneracy visible.
func TestNormalize_ConstantParameter(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{{7, 7, 7}, {7, 7, 7}}, "c")
	require.NoError(t, err)

	z := ranknorm.Normalize(arr)
	for c := 0; c < 2; c++ {
		for d := 0; d < 3; d++ {
			assert.InDelta(t, 0.0, z.At(d, c, 0), 1e-12)
		}
	}
}

// TestFold_AroundMedian verifies folding measures distance from the pooled
// median.
func TestFold_AroundMedian(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{{1, 2, 3, 4, 5}}, "x")
	require.NoError(t, err)

	folded := ranknorm.Fold(arr)
	assert.Equal(t, []float64{2, 1, 0, 1, 2}, folded.Chain(0, 0))
}

// TestFold_LeavesInputUntouched verifies the source Array is not mutated.
func TestFold_LeavesInputUntouched(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{{4, 8, 15}}, "x")
	require.NoError(t, err)

	_ = ranknorm.Fold(arr)
	assert.Equal(t, []float64{4, 8, 15}, arr.Chain(0, 0))

	_ = ranknorm.Normalize(arr)
	assert.Equal(t, []float64{4, 8, 15}, arr.Chain(0, 0))
}

// TestFold_SeparatesScales verifies folding exposes scale disagreement:
// two chains with equal means but very different spread fold into visibly
// different magnitude series.
func TestFold_SeparatesScales(t *testing.T) {
	narrow := []float64{-0.1, 0.1, -0.1, 0.1, -0.1, 0.1}
	wide := []float64{-10, 10, -10, 10, -10, 10}
	arr, err := chain.FromSeries([][]float64{narrow, wide}, "x")
	require.NoError(t, err)

	folded := ranknorm.Fold(arr)
	meanNarrow := mean(folded.Chain(0, 0))
	meanWide := mean(folded.Chain(1, 0))
	assert.Greater(t, meanWide, 10*meanNarrow, "fold separates scales")
}

// argsort returns the permutation that sorts x ascending.
func argsort(x []float64) []int {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })

	return idx
}

// mean is a tiny helper to keep assertions readable.
func mean(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}

	return s / float64(len(x))
}

// TestNormalize_FiniteScores verifies every score is finite even at the
// extreme ranks (the Blom fraction never reaches 0 or 1).
func TestNormalize_FiniteScores(t *testing.T) {
	series := make([]float64, 101)
	for i := range series {
		series[i] = float64(i)
	}
	arr, err := chain.FromSeries([][]float64{series}, "x")
	require.NoError(t, err)

	z := ranknorm.Normalize(arr)
	for d := range series {
		v := z.At(d, 0, 0)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "draw %d", d)
	}
}
