// Package chain - construction and validation of chain arrays.
//
// This file contains the canonical constructors. All of them fail fast on
// malformed shape, so every Array in circulation satisfies the invariants:
// at least one chain, equal chain lengths, at least one parameter, finite
// values, unique parameter names.
package chain

import "math"

// New builds an Array from draws indexed [chain][draw][parameter], the
// natural shape of multi-chain sampler output. Optional names label the
// parameters; when omitted, neutral names are synthesized.
//
// Contracts:
//   - len(draws) >= 1, len(draws[c]) >= 1 and equal across chains.
//   - Every draw vector has the same parameter count >= 1.
//   - Every value is finite.
//   - If names are given, len(names) equals the parameter count and the
//     names are unique.
//
// Errors: ErrNoChains, ErrNoDraws, ErrRaggedChains, ErrShapeMismatch,
// ErrNonFinite, ErrDuplicateName.
//
// Complexity: O(chains·draws·params) time, one backing allocation.
func New(draws [][][]float64, names ...string) (*Array, error) {
	// Stage 1: outer shape.
	nChains := len(draws)
	if nChains == 0 {
		return nil, ErrNoChains
	}
	nDraws := len(draws[0])
	if nDraws == 0 {
		return nil, ErrNoDraws
	}
	for c := 1; c < nChains; c++ {
		if len(draws[c]) != nDraws {
			return nil, ErrRaggedChains
		}
	}

	// Stage 2: inner shape (parameter count per draw).
	nParams := len(draws[0][0])
	if nParams == 0 {
		return nil, ErrShapeMismatch
	}
	for c := 0; c < nChains; c++ {
		for d := 0; d < nDraws; d++ {
			if len(draws[c][d]) != nParams {
				return nil, ErrShapeMismatch
			}
		}
	}

	// Stage 3: names.
	if err := validateNames(names, nParams); err != nil {
		return nil, err
	}

	// Stage 4: copy into parameter-major storage, checking finiteness on the way.
	arr := newArray(nDraws, nChains, nParams, names)
	var v float64
	for c := 0; c < nChains; c++ {
		for d := 0; d < nDraws; d++ {
			for p := 0; p < nParams; p++ {
				v = draws[c][d][p]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, ErrNonFinite
				}
				arr.data[(p*nChains+c)*nDraws+d] = v
			}
		}
	}

	return arr, nil
}

// FromSeries builds a single-parameter Array from per-chain series indexed
// [chain][draw], the common shape when diagnosing one scalar quantity.
// An empty name synthesizes a neutral one.
//
// Errors: ErrNoChains, ErrNoDraws, ErrRaggedChains, ErrNonFinite.
//
// Complexity: O(chains·draws).
func FromSeries(series [][]float64, name string) (*Array, error) {
	nChains := len(series)
	if nChains == 0 {
		return nil, ErrNoChains
	}
	nDraws := len(series[0])
	if nDraws == 0 {
		return nil, ErrNoDraws
	}
	for c := 1; c < nChains; c++ {
		if len(series[c]) != nDraws {
			return nil, ErrRaggedChains
		}
	}

	var names []string
	if name != "" {
		names = []string{name}
	}
	arr := newArray(nDraws, nChains, 1, names)
	var v float64
	for c := 0; c < nChains; c++ {
		for d := 0; d < nDraws; d++ {
			v = series[c][d]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFinite
			}
			arr.data[c*nDraws+d] = v
		}
	}

	return arr, nil
}

// MapPooled returns a new Array built by rewriting each parameter's pooled
// block. fn receives the parameter index, the destination block to fill and
// the source block (a read-only view, chains back-to-back in chain order);
// it must fill dst completely with finite values. Shape and names carry
// over. This is the hook array transforms (rank normalization, folding)
// are built on.
func (a *Array) MapPooled(fn func(p int, dst, src []float64)) *Array {
	out := newArray(a.draws, a.chains, a.params, a.names)
	block := a.chains * a.draws
	for p := 0; p < a.params; p++ {
		fn(p, out.data[p*block:(p+1)*block], a.Pooled(p))
	}

	return out
}

// validateNames enforces the optional-names contract: either no names at
// all, or exactly one unique name per parameter.
func validateNames(names []string, nParams int) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) != nParams {
		return ErrShapeMismatch
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return ErrDuplicateName
		}
		seen[name] = struct{}{}
	}

	return nil
}
