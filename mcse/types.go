package mcse

import (
	"errors"

	"github.com/katalvlaran/mcmcdiag/ess"
)

// minEffectiveBatches is the smallest ESS-weighted batch count the quantile
// estimator accepts; below it the between-batch variance is mostly noise.
const minEffectiveBatches = 4

// ErrBadProbability reports a quantile probability outside (0, 1).
var ErrBadProbability = errors.New("mcse: probability must lie inside (0, 1)")

// ErrTooFewBatches reports that the chains cannot support the batch-means
// quantile estimate: zero whole batches, or an effective batch count below
// minEffectiveBatches once autocorrelation is accounted for.
var ErrTooFewBatches = errors.New("mcse: too few effective batches for a quantile standard error")

// Options configure the Monte Carlo standard error estimates.
//
//   - ESS: forwarded to the effective-sample-size runs underneath; the
//     Kind field is overridden per estimator (Bulk for Mean, Basic for SD,
//     indicator for Quantile). Split, Method, SaturateDegenerate and
//     Workers apply as usual.
//   - BatchSize: draws per batch for the quantile estimator; 0 or negative
//     selects floor(sqrt(draws per chain)).
type Options struct {
	ESS       ess.Options
	BatchSize int
}

// DefaultOptions returns the standard configuration: default ESS pipeline,
// square-root batch size.
func DefaultOptions() Options {
	return Options{ESS: ess.DefaultOptions()}
}
