// Package chain - chain splitting in both of its forms.
//
// Splitting subdivides each chain into k contiguous blocks so that
// within-chain non-stationarity (a drifting first half vs. a settled second
// half) shows up as between-chain disagreement, where split R-hat and split
// ESS can see it. SplitIndices relabels a flat id vector and keeps every
// draw; Array.Split produces a new equal-length array and drops the
// per-chain remainder.
package chain

import "sort"

// SplitIndices relabels per-draw chain ids so that each original chain's
// draws divide into split contiguous blocks of (nearly) equal size.
//
// Contract:
//   - ids holds one chain-id label per draw, draws pre-ordered by iteration
//     within each original chain (the function never sorts draws).
//   - Distinct original ids are processed in ascending order of the id
//     value, not first-seen order, so the output relabeling is
//     deterministic regardless of how the groups are arranged.
//   - For an original chain of L draws with q, r = L/split, L%split, the
//     first r blocks receive q+1 draws and the remaining split-r blocks
//     receive q draws. A greedy even partition changes the remainder
//     placement and is wrong here.
//   - New ids are 1..numOriginal*split; the counter advances across empty
//     blocks (L < split), which are permitted.
//   - split == 1 returns a copy of ids unchanged.
//
// Errors: ErrBadSplit when split < 1.
//
// Complexity: O(L + K log K) for L draws over K distinct ids.
func SplitIndices(ids []int, split int) ([]int, error) {
	if split < 1 {
		return nil, ErrBadSplit
	}

	out := make([]int, len(ids))
	if split == 1 {
		copy(out, ids)

		return out, nil
	}

	// Count draws per original id.
	counts := make(map[int]int, 8)
	for _, id := range ids {
		counts[id]++
	}
	order := make([]int, 0, len(counts))
	for id := range counts {
		order = append(order, id)
	}
	sort.Ints(order)

	// base[id] is the first new id assigned to that original chain; each
	// original chain consumes exactly split new ids, empty blocks included.
	base := make(map[int]int, len(order))
	next := 1
	for _, id := range order {
		base[id] = next
		next += split
	}

	// Walk draws in input order; the k-th occurrence of an id lands in the
	// block holding position k under the first-r-blocks-get-q+1 rule.
	cursor := make(map[int]int, len(order))
	var k, q, r, block int
	for i, id := range ids {
		k = cursor[id]
		cursor[id] = k + 1

		q, r = counts[id]/split, counts[id]%split
		if k < r*(q+1) {
			block = k / (q + 1)
		} else {
			block = r + (k-r*(q+1))/q
		}
		out[i] = base[id] + block
	}

	return out, nil
}

// Split returns a new Array in which every chain is divided into split
// contiguous sub-chains of exactly Draws()/split draws; the trailing
// Draws()%split draws of each original chain are dropped so the equal-length
// invariant holds. Sub-chains appear in original-chain-major order, so chain
// c becomes chains c*split .. c*split+split-1. split == 1 returns the
// receiver (arrays are immutable, sharing is safe).
//
// Errors: ErrBadSplit when split < 1, ErrTooFewDraws when split > Draws().
//
// Complexity: O(draws·chains·params) copy.
func (a *Array) Split(split int) (*Array, error) {
	if split < 1 {
		return nil, ErrBadSplit
	}
	if split == 1 {
		return a, nil
	}
	q := a.draws / split
	if q == 0 {
		return nil, ErrTooFewDraws
	}

	out := newArray(q, a.chains*split, a.params, a.names)
	var src, dst []float64
	for p := 0; p < a.params; p++ {
		for c := 0; c < a.chains; c++ {
			src = a.Chain(c, p)
			for j := 0; j < split; j++ {
				dst = out.data[((p*out.chains)+c*split+j)*q : ((p*out.chains)+c*split+j)*q+q]
				copy(dst, src[j*q:(j+1)*q])
			}
		}
	}

	return out, nil
}
