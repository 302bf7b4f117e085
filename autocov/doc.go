// Package autocov estimates the biased autocovariance function of a
// numeric series, the building block under effective-sample-size and
// Monte Carlo error computations.
//
// 🚀 What is it?
//
//	acov[k] measures how strongly a series co-varies with itself k steps
//	apart. MCMC draws are autocorrelated, and the whole point of ESS is
//	summing this function correctly, so getting the estimator right
//	(denominator N at every lag, no circular wraparound) matters more
//	than it looks.
//
// ✨ Key features:
//   - biased estimator: acov[0] = variance·(N−1)/N, positive semi-definite
//   - FFT backend (default): zero-padding to ≥ 2N, O(N log N)
//   - Direct backend: O(N²) reference, bit-for-bit comparable in tests
//   - reusable Estimator with a cached FFT plan for fixed-length batches
//   - exact zeros on constant input, clamped lag-0 noise
//
// ⚙️ Usage:
//
//	acov, err := autocov.Autocovariance(x, autocov.FFT)
//
//	// or, for many same-length series (one per chain):
//	est, _ := autocov.NewEstimator(len(x), autocov.FFT)
//	buf, _ = est.Estimate(buf, x)
//
// Performance: FFT — O(N log N) time, O(N) space; Direct — O(N²).
//
// An Estimator is not goroutine-safe (it owns FFT scratch); build one per
// worker.
package autocov
