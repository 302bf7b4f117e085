// Package mcse - Monte Carlo standard errors for the mean, the standard
// deviation and quantiles of MCMC output.
package mcse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/ess"
)

// Mean estimates the Monte Carlo standard error of the posterior mean for
// every parameter: sqrt(pooled sample variance / bulk ESS). The pooled
// variance uses all draws of all chains (denominator m·N-1); the divisor is
// the bulk effective sample size, so the error honestly widens when the
// chains are autocorrelated or disagree.
//
// A constant parameter reports NaN, or exactly 0 when
// Options.ESS.SaturateDegenerate is set (a frozen value has no Monte Carlo
// noise, and no information either).
//
// Errors: ess.ErrNilArray plus everything ess.ESS returns.
func Mean(arr *chain.Array, opts Options) ([]float64, error) {
	essOpts := opts.ESS
	essOpts.Kind = ess.Bulk
	bulk, err := ess.ESS(arr, essOpts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, arr.Params())
	err = chain.EachParam(essOpts.Workers, arr.Params(), func(p int) error {
		pooled := arr.Pooled(p)
		if isConstant(pooled) {
			out[p] = degenerate(essOpts.SaturateDegenerate)

			return nil
		}
		out[p] = math.Sqrt(stat.Variance(pooled, nil) / bulk[p])

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SD estimates the Monte Carlo standard error of the posterior standard
// deviation per parameter, by the delta method: with c = x - pooled mean,
//
//	evar   = mean(c²)                    (biased pooled variance)
//	varvar = (mean(c⁴) - evar²) / essC   (essC = basic ESS of the c² series)
//	se     = sqrt(varvar / (4·evar))
//
// The c² series carries the sampling noise of the variance estimate, so its
// own effective sample size is the right denominator. A constant parameter
// reports NaN (or 0 under Options.ESS.SaturateDegenerate); a parameter whose
// squared deviations are exactly constant reports 0, since the variance
// estimate then has no sampling noise at all.
//
// Errors: ess.ErrNilArray plus everything ess.ESS returns.
func SD(arr *chain.Array, opts Options) ([]float64, error) {
	if arr == nil {
		return nil, ess.ErrNilArray
	}
	c2 := arr.MapPooled(func(_ int, dst, src []float64) {
		mu := stat.Mean(src, nil)
		var d float64
		for i, v := range src {
			d = v - mu
			dst[i] = d * d
		}
	})

	essOpts := opts.ESS
	essOpts.Kind = ess.Basic
	essC, err := ess.ESS(c2, essOpts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, arr.Params())
	err = chain.EachParam(essOpts.Workers, arr.Params(), func(p int) error {
		if isConstant(arr.Pooled(p)) {
			out[p] = degenerate(essOpts.SaturateDegenerate)

			return nil
		}
		block := c2.Pooled(p)
		if isConstant(block) {
			out[p] = 0

			return nil
		}

		evar := stat.Mean(block, nil)
		num := floats.Dot(block, block)/float64(len(block)) - evar*evar
		if num <= 0 {
			out[p] = 0

			return nil
		}
		out[p] = math.Sqrt(num / essC[p] / (4 * evar))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Quantile estimates the Monte Carlo standard error of the empirical
// prob-quantile per parameter with the batch-means method: each unsplit
// chain is cut into K = N/b whole batches of b draws (b from
// Options.BatchSize, default floor(sqrt(N)); the per-chain remainder is
// dropped), the prob-quantile is computed inside every batch, and the
// standard error is sqrt(Var(batch quantiles) / (m·K)).
//
// Batch means only work when the batches are roughly independent, so the
// call is guarded: the effective batch count m·K scaled by the information
// ratio essQ/(m·N) - essQ being the quantile indicator ESS - must reach
// minEffectiveBatches, else ErrTooFewBatches. A degenerate parameter fails
// the guard the same way unless Options.ESS.SaturateDegenerate is set, in
// which case its batches tie exactly and the error is 0.
//
// Errors: ErrBadProbability, ErrTooFewBatches, ess.ErrNilArray, plus
// everything ess.Quantile returns.
func Quantile(arr *chain.Array, prob float64, opts Options) ([]float64, error) {
	if math.IsNaN(prob) || prob <= 0 || prob >= 1 {
		return nil, ErrBadProbability
	}
	essQ, err := ess.Quantile(arr, prob, opts.ESS)
	if err != nil {
		return nil, err
	}

	m := arr.Chains()
	n := arr.Draws()
	b := opts.BatchSize
	if b <= 0 {
		b = int(math.Sqrt(float64(n)))
	}
	k := n / b
	if k == 0 {
		return nil, ErrTooFewBatches
	}

	batches := m * k
	total := float64(m * n)
	out := make([]float64, arr.Params())
	err = chain.EachParam(opts.ESS.Workers, arr.Params(), func(p int) error {
		// NaN essQ (degenerate parameter) fails the comparison and the guard.
		if eff := float64(batches) * (essQ[p] / total); !(eff >= minEffectiveBatches) {
			return ErrTooFewBatches
		}

		qs := make([]float64, 0, batches)
		scratch := make([]float64, b)
		var xs []float64
		for c := 0; c < m; c++ {
			xs = arr.Chain(c, p)
			for j := 0; j < k; j++ {
				copy(scratch, xs[j*b:(j+1)*b])
				sort.Float64s(scratch)
				qs = append(qs, stat.Quantile(prob, stat.Empirical, scratch, nil))
			}
		}
		out[p] = math.Sqrt(stat.Variance(qs, nil) / float64(batches))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// degenerate maps the constant-parameter policy to its value.
func degenerate(saturate bool) float64 {
	if saturate {
		return 0
	}

	return math.NaN()
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
