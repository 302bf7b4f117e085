package rhat

import "errors"

// DefaultSplit is the number of sub-chains each chain is divided into
// before the variance comparison, matching the split-R-hat convention.
const DefaultSplit = 2

// minChains is the smallest post-split chain count with a defined
// between-chain variance.
const minChains = 2

// minDraws is the smallest post-split chain length with a defined
// within-chain sample variance.
const minDraws = 2

// ErrNilArray reports a nil chain array.
var ErrNilArray = errors.New("rhat: nil chain array")

// ErrInsufficientChains reports fewer than two chains after splitting;
// between-chain variance is undefined for a single chain.
var ErrInsufficientChains = errors.New("rhat: fewer than two chains after splitting")

// ErrTooFewDraws reports post-split chains too short for a sample variance.
var ErrTooFewDraws = errors.New("rhat: fewer than two draws per chain after splitting")

// Options configure the potential scale reduction estimate.
//
//   - Split: sub-chains per chain (0 means DefaultSplit, 1 disables
//     splitting).
//   - RankNormalize: replace draws by pooled rank-based normal scores
//     before the variance comparison.
//   - Fold: fold draws around the pooled median first, turning scale
//     drift into location drift (applied before rank normalization).
//   - SaturateDegenerate: report 1 instead of NaN for a constant
//     parameter.
//   - Workers: parameter-level parallelism (0 means GOMAXPROCS).
type Options struct {
	Split              int
	RankNormalize      bool
	Fold               bool
	SaturateDegenerate bool
	Workers            int
}

// DefaultOptions returns the rank-normalized split configuration used by
// the headline diagnostic.
func DefaultOptions() Options {
	return Options{Split: DefaultSplit, RankNormalize: true}
}

// normalize fills unset fields with their defaults.
func (o Options) normalize() Options {
	if o.Split == 0 {
		o.Split = DefaultSplit
	}

	return o
}
