// Package mcse turns diagnostics into error bars: Monte Carlo standard
// errors for the posterior mean, standard deviation and quantiles.
//
// 🚀 What you get:
//
//   - Mean - sqrt(pooled variance / bulk ESS), the uncertainty of the
//     reported posterior mean.
//   - SD - a delta-method error for the posterior standard deviation,
//     driven by the ESS of the squared deviations.
//   - Quantile - a batch-means error for any posterior quantile, guarded
//     by an effective-batch-count check.
//
// ✨ Why it matters:
//
// An MCMC estimate without a standard error is a number without units of
// trust. Dividing by the effective sample size - not the raw draw count -
// keeps the error bar honest when chains are slow or disagree: the worse
// the mixing, the wider the admitted uncertainty.
//
// ⚙️ How it behaves:
//
//   - Every estimator forwards Options.ESS to the effective-sample-size
//     machinery underneath, so split, strategy and worker settings apply
//     uniformly.
//   - A constant parameter reports NaN by default or 0 when saturating;
//     zero spread means zero Monte Carlo noise.
//   - The quantile estimator refuses to fake precision: too few
//     effectively independent batches is ErrTooFewBatches, not a number.
//
// See Mean, SD and Quantile for the exact contracts.
package mcse
