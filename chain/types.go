package chain

import (
	"errors"
	"fmt"
)

// ErrNoChains is returned when an input carries zero chains.
var ErrNoChains = errors.New("chain: at least one chain required")

// ErrNoDraws is returned when a chain carries zero draws.
var ErrNoDraws = errors.New("chain: chains must contain at least one draw")

// ErrRaggedChains is returned when chains disagree on length.
var ErrRaggedChains = errors.New("chain: all chains must have equal length")

// ErrNonFinite is returned when any draw is NaN or ±Inf.
// Callers must pre-filter incomplete output; the engine fails fast instead
// of propagating silent NaNs through the estimators.
var ErrNonFinite = errors.New("chain: draws must be finite")

// ErrShapeMismatch is returned when adapter inputs disagree on dimensions
// (values vs. chain ids, matrix columns vs. names, and so on).
var ErrShapeMismatch = errors.New("chain: input dimensions disagree")

// ErrDuplicateName is returned when two parameters share a name.
var ErrDuplicateName = errors.New("chain: parameter names must be unique")

// ErrBadSplit is returned when a split factor is below 1.
var ErrBadSplit = errors.New("chain: split factor must be >= 1")

// ErrTooFewDraws is returned when splitting would leave zero draws per
// sub-chain (split factor exceeds the chain length).
var ErrTooFewDraws = errors.New("chain: too few draws per chain for requested split")

// ErrNilSource is returned by From when handed a nil Source.
var ErrNilSource = errors.New("chain: nil source")

// Array is an immutable (draw × chain × parameter) container of sampler
// output. All chains have equal length and every value is finite; both
// invariants are enforced at construction.
//
// The backing store is a single flat slice in parameter-major order
// (((p*chains)+c)*draws + d), so each (chain, parameter) series and each
// parameter's pooled block are contiguous. Estimators read shared views and
// never write; transforms allocate fresh arrays.
type Array struct {
	draws  int
	chains int
	params int
	names  []string
	data   []float64
}

// Draws reports the number of draws per chain.
func (a *Array) Draws() int { return a.draws }

// Chains reports the number of chains.
func (a *Array) Chains() int { return a.chains }

// Params reports the number of parameters.
func (a *Array) Params() int { return a.params }

// Name returns the name of parameter p.
func (a *Array) Name(p int) string { return a.names[p] }

// Names returns a copy of the parameter names in parameter order.
func (a *Array) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)

	return out
}

// At returns the draw at (draw d, chain c, parameter p).
func (a *Array) At(d, c, p int) float64 {
	return a.data[(p*a.chains+c)*a.draws+d]
}

// Chain returns the series of chain c for parameter p as a shared read-only
// view into the backing store. Callers must not modify it.
func (a *Array) Chain(c, p int) []float64 {
	base := (p*a.chains + c) * a.draws

	return a.data[base : base+a.draws]
}

// Pooled returns all chains of parameter p back-to-back (chain-major) as a
// shared read-only view of length Chains()*Draws(). Callers must not modify
// it; pooled statistics (ranks, medians, quantiles) copy before sorting.
func (a *Array) Pooled(p int) []float64 {
	base := p * a.chains * a.draws

	return a.data[base : base+a.chains*a.draws]
}

// newArray allocates an Array of the given shape with zeroed data.
// When names is empty, neutral names param0..param(params-1) are synthesized.
func newArray(draws, chains, params int, names []string) *Array {
	if len(names) == 0 {
		names = make([]string, params)
		for p := 0; p < params; p++ {
			names[p] = fmt.Sprintf("param%d", p)
		}
	} else {
		owned := make([]string, len(names))
		copy(owned, names)
		names = owned
	}

	return &Array{
		draws:  draws,
		chains: chains,
		params: params,
		names:  names,
		data:   make([]float64, draws*chains*params),
	}
}
