package ess

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mcmcdiag/autocov"
	"github.com/katalvlaran/mcmcdiag/chain"
)

// corePerParam — multi-chain effective sample size of one parameter
//
// Description:
//
//	Combines per-chain autocovariances into one ESS value. The chains are
//	assumed already split and transformed by the caller; this function is
//	the shared numeric core of every strategy and kind.
//
// Algorithm Outline:
//  1. Per chain c: biased autocovariance acov_c (all lags), chain mean,
//     and sample variance acov_c[0]·N/(N-1).
//  2. W = mean of the chain sample variances. The marginal variance
//     estimate blends within- and between-chain information:
//     var⁺ = W·(N-1)/N + Var(chain means), the same blend R-hat uses.
//     This coupling is what lets multiple chains expose mixing problems a
//     single-chain autocorrelation sum cannot see.
//  3. ρ̂[0] = 1; for k ≥ 1, ρ̂[k] = 1 − (W − mean_c acov_c[k]) / var⁺.
//  4. Geyer truncation (FFT/Direct strategies): pair sums
//     P[i] = ρ̂[2i] + ρ̂[2i+1]; stop before the first P[i] ≤ 0 (pair sums
//     of a valid autocorrelation sequence are eventually positive and
//     decreasing even when individual lags oscillate); enforce
//     monotonicity with a running minimum; τ̂ = −1 + 2·ΣP.
//  5. BDA truncation: sum raw ρ̂[k] and stop at the first lag below a
//     small positive threshold; τ̂ = 1 + 2·Σρ̂.
//  6. ESS = total/τ̂ clamped into (0, total]; τ̂ ≤ 0 reports total, the
//     maximal plausible value.
//
// Degenerate input (pooled constant series) reports NaN, or total when the
// saturating convention is requested.
//
// Complexity: O(m·N log N) with the FFT backend, O(m·N²) direct.
func corePerParam(arr *chain.Array, p int, est *autocov.Estimator, method Method, saturate bool) (float64, error) {
	n := arr.Draws()
	m := arr.Chains()
	total := float64(n * m)

	if isConstant(arr.Pooled(p)) {
		return degenerate(saturate, total), nil
	}

	// Stage 1: per-chain autocovariances and moments.
	acovs := make([][]float64, m)
	chainVars := make([]float64, m)
	chainMeans := make([]float64, m)
	var err error
	for c := 0; c < m; c++ {
		x := arr.Chain(c, p)
		chainMeans[c] = stat.Mean(x, nil)
		acovs[c], err = est.Estimate(nil, x)
		if err != nil {
			return 0, err
		}
		chainVars[c] = acovs[c][0] * float64(n) / float64(n-1)
	}

	// Stage 2: blended variance.
	w := stat.Mean(chainVars, nil)
	varPlus := w * float64(n-1) / float64(n)
	if m > 1 {
		varPlus += stat.Variance(chainMeans, nil)
	}
	if varPlus <= 0 || math.IsNaN(varPlus) || math.IsInf(varPlus, 0) {
		return degenerate(saturate, total), nil
	}

	// Stage 3: multi-chain autocorrelations on demand.
	rho := func(k int) float64 {
		s := 0.0
		for c := 0; c < m; c++ {
			s += acovs[c][k]
		}

		return 1 - (w-s/float64(m))/varPlus
	}

	// Stages 4-5: truncated sum per strategy.
	var tau float64
	if method == BDA {
		tau = tauBDA(rho, n)
	} else {
		tau = tauGeyer(rho, n)
	}

	// Stage 6: clamp into (0, total].
	if tau <= 0 || math.IsNaN(tau) {
		return total, nil
	}
	out := total / tau
	if out > total {
		out = total
	}

	return out, nil
}

// tauGeyer sums Geyer pairs with the initial-positive cutoff and the
// monotone (running minimum) correction, returning the integrated
// autocorrelation time τ̂ = −1 + 2·ΣP.
func tauGeyer(rho func(int) float64, n int) float64 {
	sum := 0.0
	minPair := math.Inf(1)
	var even, pair float64
	for i := 0; 2*i+1 < n; i++ {
		even = 1.0
		if i > 0 {
			even = rho(2 * i)
		}
		pair = even + rho(2*i+1)
		if pair <= 0 {
			break
		}
		// Noisy tail pairs may bounce upward; taking the running minimum
		// keeps the sequence non-increasing and the sum from inflating.
		if pair > minPair {
			pair = minPair
		} else {
			minPair = pair
		}
		sum += pair
	}

	return -1 + 2*sum
}

// tauBDA sums raw autocorrelations up to the first lag below the
// threshold, returning τ̂ = 1 + 2·Σρ̂. No pairing, no monotonization.
func tauBDA(rho func(int) float64, n int) float64 {
	sum := 0.0
	var r float64
	for k := 1; k < n; k++ {
		r = rho(k)
		if r < bdaThreshold {
			break
		}
		sum += r
	}

	return 1 + 2*sum
}

// degenerate reports the configured convention for zero-variance input.
func degenerate(saturate bool, total float64) float64 {
	if saturate {
		return total
	}

	return math.NaN()
}

// isConstant reports whether every entry of x equals the first.
func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}

	return true
}
