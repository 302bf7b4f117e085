// Package rhat - the potential scale reduction estimator and the combined
// bulk/tail diagnostic.
package rhat

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/ranknorm"
)

// Rhat estimates the potential scale reduction factor of every parameter in
// arr, one value per parameter in parameter order.
//
// The pipeline follows Options literally: split each chain (Options.Split),
// optionally fold around the pooled median (Options.Fold), optionally
// rank-normalize (Options.RankNormalize), then compare within-chain and
// between-chain variance:
//
//	W    = mean over chains of the per-chain sample variance
//	B    = N · variance across chains of the chain means
//	var̂ = (N-1)/N · W + B/N
//	R̂   = sqrt(var̂ / W)
//
// Values near 1 mean the chains agree on the parameter; the usual alarm
// threshold is 1.01. A constant parameter yields NaN (or 1 under
// Options.SaturateDegenerate); chains that are each frozen at different
// values yield +Inf, the honest limit of total disagreement.
//
// Errors: ErrNilArray, ErrInsufficientChains, ErrTooFewDraws,
// chain.ErrBadSplit, chain.ErrTooFewDraws.
//
// Complexity: O(params · chains·draws · log(chains·draws)) with rank
// normalization, O(params · chains·draws) without.
func Rhat(arr *chain.Array, opts Options) ([]float64, error) {
	work, opts, err := prepare(arr, opts)
	if err != nil {
		return nil, err
	}
	if opts.Fold {
		work = ranknorm.Fold(work)
	}
	if opts.RankNormalize {
		work = ranknorm.Normalize(work)
	}

	out := make([]float64, work.Params())
	err = chain.EachParam(opts.Workers, work.Params(), func(p int) error {
		out[p] = perParam(work, p, opts.SaturateDegenerate)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Diagnostic reports max(bulk, tail) R-hat per parameter: the bulk run is
// rank-normalized, the tail run folds around the pooled median before rank
// normalization, and the worse of the two is returned. Options.RankNormalize
// and Options.Fold are ignored; Split, SaturateDegenerate and Workers apply
// to both runs.
//
// This is the single number to gate a sampler on: location drift surfaces
// in the bulk term, scale drift in the tail term, and NaN from a degenerate
// parameter survives the maximum.
func Diagnostic(arr *chain.Array, opts Options) ([]float64, error) {
	bulk := opts
	bulk.RankNormalize = true
	bulk.Fold = false
	out, err := Rhat(arr, bulk)
	if err != nil {
		return nil, err
	}

	tail := bulk
	tail.Fold = true
	folded, err := Rhat(arr, tail)
	if err != nil {
		return nil, err
	}

	for p := range out {
		out[p] = math.Max(out[p], folded[p])
	}

	return out, nil
}

// prepare validates shape and applies the split shared by every variant.
func prepare(arr *chain.Array, opts Options) (*chain.Array, Options, error) {
	if arr == nil {
		return nil, opts, ErrNilArray
	}
	opts = opts.normalize()

	work, err := arr.Split(opts.Split)
	if err != nil {
		return nil, opts, err
	}
	if work.Chains() < minChains {
		return nil, opts, ErrInsufficientChains
	}
	if work.Draws() < minDraws {
		return nil, opts, ErrTooFewDraws
	}

	return work, opts, nil
}

// perParam runs the variance comparison for one parameter of the prepared
// (split, transformed) array.
func perParam(work *chain.Array, p int, saturate bool) float64 {
	if isConstant(work.Pooled(p)) {
		if saturate {
			return 1
		}

		return math.NaN()
	}

	m := work.Chains()
	n := float64(work.Draws())
	chainVars := make([]float64, m)
	chainMeans := make([]float64, m)
	var xs []float64
	for c := 0; c < m; c++ {
		xs = work.Chain(c, p)
		chainMeans[c] = stat.Mean(xs, nil)
		chainVars[c] = stat.Variance(xs, nil)
	}

	// After the constancy check, w == 0 implies b > 0: frozen chains at
	// different levels. The division then yields +Inf, which is the answer.
	w := stat.Mean(chainVars, nil)
	b := n * stat.Variance(chainMeans, nil)
	varHat := (n-1)/n*w + b/n

	return math.Sqrt(varHat / w)
}

// isConstant reports whether every element of x equals the first.
func isConstant(x []float64) bool {
	for _, v := range x {
		if v != x[0] {
			return false
		}
	}

	return true
}
