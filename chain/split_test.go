package chain_test

import (
	"testing"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitIndices_EvenSplit verifies the plain case: two chains of four
// draws halved into four sub-chains with consecutive new ids.
func TestSplitIndices_EvenSplit(t *testing.T) {
	ids := []int{1, 1, 1, 1, 2, 2, 2, 2}

	out, err := chain.SplitIndices(ids, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 4}, out)
}

// TestSplitIndices_RemainderRule pins the exact remainder placement: for
// L=5, split=2 the first block takes 3 draws and the second takes 2. A
// greedy even partition would flip this and must fail here.
func TestSplitIndices_RemainderRule(t *testing.T) {
	out, err := chain.SplitIndices([]int{7, 7, 7, 7, 7}, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 1, 2, 2}, out, "first r blocks get q+1 draws")

	// L=7, split=3: q=2, r=1 → block sizes 3,2,2.
	out, err = chain.SplitIndices([]int{4, 4, 4, 4, 4, 4, 4}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 3, 3}, out)
}

// TestSplitIndices_Identity verifies split == 1 returns an unchanged copy.
func TestSplitIndices_Identity(t *testing.T) {
	ids := []int{3, 3, 1, 1, 2}

	out, err := chain.SplitIndices(ids, 1)
	require.NoError(t, err)

	assert.Equal(t, ids, out, "split=1 must be the identity")
	out[0] = 99
	assert.Equal(t, 3, ids[0], "split=1 must copy, not alias")
}

// TestSplitIndices_SortedIDOrder verifies distinct ids are processed in
// ascending id order, not first-seen order, so output ids are reproducible
// for any arrangement of the groups.
func TestSplitIndices_SortedIDOrder(t *testing.T) {
	out, err := chain.SplitIndices([]int{5, 5, 3, 3}, 2)
	require.NoError(t, err)

	// id 3 is processed first (1,2), id 5 second (3,4).
	assert.Equal(t, []int{3, 4, 1, 2}, out)
}

// TestSplitIndices_EmptyBlocks verifies L < split yields empty blocks
// without error and the id counter still advances past them.
func TestSplitIndices_EmptyBlocks(t *testing.T) {
	// Chain 1 has 3 draws under split=5: q=0, r=3 → sizes 1,1,1,0,0.
	// Chain 2 starts at new id 6 regardless of chain 1's empty blocks.
	out, err := chain.SplitIndices([]int{1, 1, 1, 2, 2, 2}, 5)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 6, 7, 8}, out)
}

// TestSplitIndices_BadSplit verifies the split < 1 guard.
func TestSplitIndices_BadSplit(t *testing.T) {
	_, err := chain.SplitIndices([]int{1, 1}, 0)
	assert.ErrorIs(t, err, chain.ErrBadSplit)

	_, err = chain.SplitIndices([]int{1, 1}, -3)
	assert.ErrorIs(t, err, chain.ErrBadSplit)
}

// TestSplitIndices_Properties checks the splitter invariants across several
// split factors: draw count preserved, exactly numOriginal*split ids minus
// empty blocks, and within-chain draw order preserved (new ids
// non-decreasing along each original chain).
func TestSplitIndices_Properties(t *testing.T) {
	ids := make([]int, 0, 23)
	for i := 0; i < 10; i++ {
		ids = append(ids, 1)
	}
	for i := 0; i < 9; i++ {
		ids = append(ids, 2)
	}
	for i := 0; i < 4; i++ {
		ids = append(ids, 6)
	}
	const numOriginal = 3

	for _, split := range []int{1, 2, 3, 5} {
		out, err := chain.SplitIndices(ids, split)
		require.NoError(t, err, "split=%d", split)
		require.Len(t, out, len(ids), "split=%d: total draw count preserved", split)

		distinct := make(map[int]struct{})
		for _, id := range out {
			distinct[id] = struct{}{}
		}
		empty := 0
		for _, l := range []int{10, 9, 4} {
			if l < split {
				empty += split - l
			}
		}
		assert.Len(t, distinct, numOriginal*split-empty,
			"split=%d: one new id per non-empty block", split)

		// Within each original chain the new ids must be non-decreasing.
		last := make(map[int]int)
		for i, orig := range ids {
			if prev, ok := last[orig]; ok {
				assert.GreaterOrEqual(t, out[i], prev,
					"split=%d: order within original chain %d", split, orig)
			}
			last[orig] = out[i]
		}
	}
}

// TestArraySplit_Even verifies the array form doubles chains and halves
// draws, preserving per-chain prefix order.
func TestArraySplit_Even(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{
		{0, 1, 2, 3, 4, 5},
		{10, 11, 12, 13, 14, 15},
	}, "x")
	require.NoError(t, err)

	half, err := arr.Split(2)
	require.NoError(t, err)

	assert.Equal(t, 3, half.Draws())
	assert.Equal(t, 4, half.Chains())
	assert.Equal(t, []float64{0, 1, 2}, half.Chain(0, 0))
	assert.Equal(t, []float64{3, 4, 5}, half.Chain(1, 0))
	assert.Equal(t, []float64{10, 11, 12}, half.Chain(2, 0))
	assert.Equal(t, []float64{13, 14, 15}, half.Chain(3, 0))
}

// TestArraySplit_DropsRemainder verifies odd lengths drop the trailing
// draw of each original chain to keep sub-chains equal.
func TestArraySplit_DropsRemainder(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{{1, 2, 3, 4, 5}}, "x")
	require.NoError(t, err)

	half, err := arr.Split(2)
	require.NoError(t, err)

	assert.Equal(t, 2, half.Draws())
	assert.Equal(t, []float64{1, 2}, half.Chain(0, 0))
	assert.Equal(t, []float64{3, 4}, half.Chain(1, 0), "draw 5 is dropped")
}

// TestArraySplit_Degenerate verifies guards and the split=1 fast path.
func TestArraySplit_Degenerate(t *testing.T) {
	arr, err := chain.FromSeries([][]float64{{1, 2, 3}}, "x")
	require.NoError(t, err)

	same, err := arr.Split(1)
	require.NoError(t, err)
	assert.Same(t, arr, same, "split=1 shares the immutable receiver")

	_, err = arr.Split(0)
	assert.ErrorIs(t, err, chain.ErrBadSplit)

	_, err = arr.Split(4)
	assert.ErrorIs(t, err, chain.ErrTooFewDraws)
}
