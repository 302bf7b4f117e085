// Package ess - the public entry points: kind composition, strategy
// dispatch, and the per-parameter fan-out.
package ess

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcmcdiag/autocov"
	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/ranknorm"
)

// ESS estimates the effective sample size of every parameter in arr,
// returning one value per parameter in parameter order.
//
// The pipeline is: split each chain (Options.Split), apply the Kind's
// transform (rank normalization for Bulk, quantile indicators for Tail,
// nothing for Basic), then run the strategy selected by Options.Method.
// Parameters are processed independently on a bounded worker pool; a
// degenerate parameter yields NaN (or the saturating total) in its slot
// without disturbing its siblings.
//
// Errors: ErrNilArray, ErrUnknownMethod, ErrUnknownKind, ErrTooFewDraws,
// chain.ErrBadSplit, chain.ErrTooFewDraws, autocov.ErrUnknownMethod.
//
// Complexity: O(params · chains · draws log draws) with the FFT backend.
func ESS(arr *chain.Array, opts Options) ([]float64, error) {
	work, opts, err := prepare(arr, opts)
	if err != nil {
		return nil, err
	}

	if opts.Kind == Tail {
		return tailESS(work, opts)
	}
	if opts.Kind == Bulk {
		work = ranknorm.Normalize(work)
	}

	return runCore(work, opts)
}

// Quantile estimates the effective sample size of the indicator series
// I(x ≤ Q_p), where Q_p is the pooled empirical p-quantile of each split
// parameter. This is the resolution at which a p-quantile estimate can be
// trusted, and the guard input of quantile Monte Carlo errors.
//
// Errors: ErrBadProbability plus everything ESS returns. Kind is ignored;
// indicators always run the basic core.
func Quantile(arr *chain.Array, p float64, opts Options) ([]float64, error) {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return nil, ErrBadProbability
	}
	work, opts, err := prepare(arr, opts)
	if err != nil {
		return nil, err
	}

	return runCore(indicator(work, p), opts)
}

// prepare validates options, splits the chains and enforces the minimum
// draw count shared by every estimation path.
func prepare(arr *chain.Array, opts Options) (*chain.Array, Options, error) {
	if arr == nil {
		return nil, opts, ErrNilArray
	}
	opts = opts.normalize()
	if err := opts.validate(); err != nil {
		return nil, opts, err
	}

	work, err := arr.Split(opts.Split)
	if err != nil {
		return nil, opts, err
	}
	if work.Draws() < minDraws {
		return nil, opts, ErrTooFewDraws
	}

	return work, opts, nil
}

// runCore fans the shared numeric core out across parameters. Each worker
// owns its autocovariance estimator; the FFT plan inside is scratch state
// and must not be shared.
func runCore(work *chain.Array, opts Options) ([]float64, error) {
	out := make([]float64, work.Params())
	err := chain.EachParam(opts.Workers, work.Params(), func(p int) error {
		est, err := autocov.NewEstimator(work.Draws(), opts.backend())
		if err != nil {
			return err
		}
		out[p], err = corePerParam(work, p, est, opts.Method, opts.SaturateDegenerate)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// tailESS reports, per parameter, the smaller of the two quantile-indicator
// ESS values at the tail probabilities. NaN from a degenerate indicator
// propagates through the minimum.
func tailESS(work *chain.Array, opts Options) ([]float64, error) {
	low, err := runCore(indicator(work, tailLow), opts)
	if err != nil {
		return nil, err
	}
	high, err := runCore(indicator(work, tailHigh), opts)
	if err != nil {
		return nil, err
	}

	for p := range low {
		low[p] = math.Min(low[p], high[p])
	}

	return low, nil
}

// indicator maps each parameter to the series I(x ≤ Q_p) with Q_p the
// pooled empirical p-quantile of that parameter.
func indicator(work *chain.Array, p float64) *chain.Array {
	return work.MapPooled(func(_ int, dst, src []float64) {
		tmp := make([]float64, len(src))
		copy(tmp, src)
		sort.Float64s(tmp)
		q := stat.Quantile(p, stat.Empirical, tmp, nil)

		for i, v := range src {
			if v <= q {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		}
	})
}
