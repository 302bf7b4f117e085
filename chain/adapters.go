// Package chain - input adapters that normalize external draw layouts into
// the canonical Array shape. The diagnostics engine itself parses no file
// formats; anything that can render itself as an Array plugs in through
// Source.
package chain

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Source is implemented by anything that can render itself as a chain
// array: adapters over samplers, storage layouts, foreign containers.
type Source interface {
	// ChainArray returns the draws in canonical (draw × chain × parameter)
	// form together with any shape error.
	ChainArray() (*Array, error)
}

// From resolves a Source into an Array.
func From(src Source) (*Array, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return src.ChainArray()
}

// GroupedDraws is the flat single-parameter layout: one value and one chain
// id per draw, draws pre-ordered by iteration within each chain. It is the
// native input of SplitIndices and implements Source for everything else.
//
// Chains are ordered by ascending id in the resulting Array, matching the
// deterministic id ordering of SplitIndices. Equal chain lengths are
// required here; the Array invariant allows nothing else.
type GroupedDraws struct {
	Values   []float64
	ChainIDs []int
	Name     string
}

// ChainArray groups Values by ChainIDs and returns the canonical Array.
//
// Errors: ErrShapeMismatch when len(Values) != len(ChainIDs), ErrNoDraws on
// empty input, ErrRaggedChains when ids imply unequal chain lengths, plus
// the constructor's finiteness errors.
//
// Complexity: O(L + K log K) for L draws over K distinct ids.
func (g GroupedDraws) ChainArray() (*Array, error) {
	if len(g.Values) != len(g.ChainIDs) {
		return nil, ErrShapeMismatch
	}
	if len(g.Values) == 0 {
		return nil, ErrNoDraws
	}

	order := distinctSorted(g.ChainIDs)

	// Bucket values by id, preserving within-chain draw order.
	buckets := make(map[int][]float64, len(order))
	for i, id := range g.ChainIDs {
		buckets[id] = append(buckets[id], g.Values[i])
	}

	series := make([][]float64, len(order))
	for c, id := range order {
		series[c] = buckets[id]
	}

	return FromSeries(series, g.Name)
}

// FromMatrices builds an Array from one draws×params matrix per chain.
// Row i of each matrix is draw i; column p is parameter p. All matrices
// must agree on both dimensions. Optional names label the columns.
//
// Errors: ErrNoChains, ErrNoDraws, ErrShapeMismatch, ErrRaggedChains,
// ErrNonFinite, ErrDuplicateName.
//
// Complexity: O(chains·draws·params) matrix reads.
func FromMatrices(names []string, chains ...mat.Matrix) (*Array, error) {
	if len(chains) == 0 {
		return nil, ErrNoChains
	}
	for _, m := range chains {
		if m == nil {
			return nil, ErrShapeMismatch
		}
	}

	nDraws, nParams := chains[0].Dims()
	if nDraws == 0 {
		return nil, ErrNoDraws
	}
	if nParams == 0 {
		return nil, ErrShapeMismatch
	}
	for _, m := range chains[1:] {
		r, k := m.Dims()
		if k != nParams {
			return nil, ErrShapeMismatch
		}
		if r != nDraws {
			return nil, ErrRaggedChains
		}
	}

	draws := make([][][]float64, len(chains))
	for c, m := range chains {
		draws[c] = make([][]float64, nDraws)
		for d := 0; d < nDraws; d++ {
			row := make([]float64, nParams)
			for p := 0; p < nParams; p++ {
				row[p] = m.At(d, p)
			}
			draws[c][d] = row
		}
	}

	return New(draws, names...)
}

// distinctSorted returns the distinct values of ids in ascending order.
func distinctSorted(ids []int) []int {
	seen := make(map[int]struct{}, 8)
	out := make([]int, 0, 8)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
