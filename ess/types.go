// Package ess defines the strategy and composition selectors plus the
// options shared by all effective-sample-size estimators.
package ess

import (
	"errors"

	"github.com/katalvlaran/mcmcdiag/autocov"
)

// Method selects the truncation strategy for the autocorrelation sum.
//
//   - FFT    — Geyer's initial monotone positive sequence over FFT-computed
//     autocovariances. The default; use it whenever chains are reasonably
//     long.
//   - Direct — the same Geyer rule over the O(N²) direct autocovariance
//     backend. Reference strategy for cross-checks and very short chains.
//   - BDA    — the alternative textbook rule: sum raw autocorrelations and
//     stop at the first lag whose value drops below a small positive
//     threshold, with no pairing or monotonization.
//
// All strategies share the blended-variance normalization, the degenerate
// handling and the (0, total draws] bound.
type Method int

const (
	// FFT strategy: Geyer truncation, FFT autocovariance backend. Default.
	FFT Method = iota

	// Direct strategy: Geyer truncation, direct O(N²) backend.
	Direct

	// BDA strategy: threshold truncation of raw autocorrelations.
	BDA
)

// Kind selects what series the estimator runs on.
//
//   - Bulk  — split, rank-normalized draws; efficiency in the body of the
//     distribution. The default headline number.
//   - Tail  — the smaller of the 5% and 95% quantile-indicator ESS values;
//     efficiency in the tails.
//   - Basic — split raw draws, no transform.
type Kind int

const (
	// Bulk kind: rank-normalized split ESS. Default.
	Bulk Kind = iota

	// Tail kind: min of the 5% and 95% quantile-indicator ESS.
	Tail

	// Basic kind: split ESS of the raw draws.
	Basic
)

// DefaultSplit is the chain-splitting factor applied when Options.Split is
// left zero; halving chains is the standard way to expose within-chain
// drift.
const DefaultSplit = 2

// minDraws is the fewest post-split draws per chain the truncation rules
// can work with.
const minDraws = 4

// bdaThreshold is the cutoff of the BDA strategy: summation stops at the
// first lag whose raw autocorrelation falls below it.
const bdaThreshold = 0.05

// tailLow and tailHigh are the quantile probabilities probed by Kind Tail.
const (
	tailLow  = 0.05
	tailHigh = 0.95
)

// ErrTooFewDraws is returned when chains are shorter than four draws after
// splitting; the paired-lag truncation is meaningless below that.
var ErrTooFewDraws = errors.New("ess: fewer than four draws per chain after splitting")

// ErrUnknownMethod is returned for a Method outside {FFT, Direct, BDA}.
var ErrUnknownMethod = errors.New("ess: unknown method")

// ErrUnknownKind is returned for a Kind outside {Bulk, Tail, Basic}.
var ErrUnknownKind = errors.New("ess: unknown kind")

// ErrBadProbability is returned when a quantile probability lies outside
// the open interval (0, 1).
var ErrBadProbability = errors.New("ess: quantile probability must lie in (0, 1)")

// ErrNilArray is returned when the input array is nil.
var ErrNilArray = errors.New("ess: nil chain array")

// Options configures ESS estimation.
//
// Fields:
//   - Kind   — Bulk (default), Tail or Basic composition.
//   - Method — FFT (default), Direct or BDA truncation strategy.
//   - Split  — chain-splitting factor; 0 means DefaultSplit, 1 disables
//     splitting.
//   - AutocovMethod — autocovariance backend for the FFT and BDA
//     strategies (zero value is the FFT backend). The Direct strategy is
//     by definition the direct backend and ignores this field.
//   - SaturateDegenerate — report the saturating convention (ESS = total
//     draws) instead of NaN for zero-variance parameters.
//   - Workers — parameter fan-out width; 0 means GOMAXPROCS.
type Options struct {
	Kind               Kind
	Method             Method
	Split              int
	AutocovMethod      autocov.Method
	SaturateDegenerate bool
	Workers            int
}

// DefaultOptions returns the canonical configuration: bulk ESS, FFT
// strategy, split factor DefaultSplit.
func DefaultOptions() Options {
	return Options{Kind: Bulk, Method: FFT, Split: DefaultSplit}
}

// normalize fills zero values with their defaults.
func (o Options) normalize() Options {
	if o.Split == 0 {
		o.Split = DefaultSplit
	}

	return o
}

// validate rejects selector values outside the closed enum sets.
func (o Options) validate() error {
	switch o.Method {
	case FFT, Direct, BDA:
	default:
		return ErrUnknownMethod
	}
	switch o.Kind {
	case Bulk, Tail, Basic:
	default:
		return ErrUnknownKind
	}
	switch o.AutocovMethod {
	case autocov.FFT, autocov.Direct:
	default:
		return autocov.ErrUnknownMethod
	}

	return nil
}

// backend resolves the autocovariance backend implied by the strategy.
func (o Options) backend() autocov.Method {
	if o.Method == Direct {
		return autocov.Direct
	}

	return o.AutocovMethod
}
