package ranknorm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mcmcdiag/chain"
)

// blomOffset is the continuity correction of the rank-to-fraction map
// (r - 3/8)/(n + 1/4); it keeps fractions strictly inside (0, 1) so the
// inverse normal CDF stays finite.
const blomOffset = 0.375

// Ranks returns the 1-based ranks of x, ties resolved by averaging the
// ranks of the tied run. The input is not modified.
//
// Steps:
//  1. Argsort the positions of x ascending.
//  2. Walk runs of equal values; every member of a run of positions
//     lo..hi-1 receives the mean of ranks lo+1..hi.
//
// Complexity: O(n log n) time, O(n) space.
func Ranks(x []float64) []float64 {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })

	out := make([]float64, n)
	var lo, hi int
	for lo < n {
		hi = lo + 1
		for hi < n && x[idx[hi]] == x[idx[lo]] {
			hi++
		}
		avg := float64(lo+hi+1) / 2
		for k := lo; k < hi; k++ {
			out[idx[k]] = avg
		}
		lo = hi
	}

	return out
}

// Normalize replaces every draw by its rank-based standard-normal score:
// pooled tied ranks across all chains of a parameter, mapped through
// (r - 3/8)/(n + 1/4) and the inverse normal CDF. The result is a fresh
// Array with identical shape and names.
//
// Heavy tails and multimodality distort moment-based diagnostics; the
// rank-normal transform makes ESS and R-hat respond to the ordering of the
// draws only. A constant parameter maps to all zeros (every rank ties at
// the middle), so downstream degeneracy handling still triggers.
//
// Complexity: O(params · chains·draws · log(chains·draws)).
func Normalize(arr *chain.Array) *chain.Array {
	std := distuv.Normal{Mu: 0, Sigma: 1}

	return arr.MapPooled(func(_ int, dst, src []float64) {
		ranks := Ranks(src)
		n := float64(len(src))
		for i, r := range ranks {
			dst[i] = std.Quantile((r - blomOffset) / (n + 0.25))
		}
	})
}

// Fold replaces every draw by its absolute deviation from the pooled
// empirical median, |x - median|. Folding turns scale disagreement between
// chains into location disagreement, which the tail variants of ESS and
// R-hat can then detect.
//
// Complexity: O(params · chains·draws · log(chains·draws)).
func Fold(arr *chain.Array) *chain.Array {
	return arr.MapPooled(func(_ int, dst, src []float64) {
		med := pooledMedian(src)
		for i, v := range src {
			dst[i] = math.Abs(v - med)
		}
	})
}

// pooledMedian returns the empirical median of x without modifying it.
func pooledMedian(x []float64) float64 {
	tmp := make([]float64, len(x))
	copy(tmp, x)
	sort.Float64s(tmp)

	return stat.Quantile(0.5, stat.Empirical, tmp, nil)
}
