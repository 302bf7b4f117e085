// Package ess estimates the effective sample size (ESS) of MCMC output:
// the number of independent draws that would carry the same estimating
// power as the correlated draws actually produced.
//
// 🚀 What you get:
//
//   - ESS - one estimate per parameter, with Bulk (rank-normalized),
//     Tail (worst of the 5%/95% quantile indicators) and Basic (raw
//     series) kinds.
//   - Quantile - ESS of the indicator I(x ≤ Q_p) for an arbitrary
//     probability p, the quantity behind quantile standard errors.
//   - Three strategies: FFT (Geyer-paired, FFT autocovariance), Direct
//     (same estimator, O(N²) autocovariance), and BDA (truncated
//     positive-sum rule).
//
// ✨ Why it matters:
//
// Raw draw counts overstate what a sampler delivered; autocorrelation can
// shrink the information content by orders of magnitude. ESS is the
// honest denominator for every Monte Carlo standard error and the first
// number to check before trusting a posterior summary.
//
// ⚙️ How it behaves:
//
//   - Chains are always split (Options.Split, default 2) before any
//     transform, so slow trends inflate the between-chain variance
//     instead of hiding in a single long chain.
//   - Between-chain disagreement deflates the estimate through the
//     pooled-variance correlation ρ̂(k); agreement across chains is part
//     of the definition, not a separate check.
//   - A constant (degenerate) parameter yields NaN by default, or the
//     total draw count when Options.SaturateDegenerate is set.
//   - Estimates are clamped to (0, total]; a non-positive correlation
//     time reports the total draw count.
//
// See ESS and Quantile for the exact contracts, and Options for tuning.
package ess
