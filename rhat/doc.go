// Package rhat measures between-chain agreement through the potential scale
// reduction factor R̂: the factor by which the pooled posterior scale
// estimate would shrink if sampling continued forever.
//
// 🚀 What you get:
//
//   - Rhat - the split-R̂ statistic with independently selectable rank
//     normalization and folding, one value per parameter.
//   - Diagnostic - the reported number in practice: the worse of the bulk
//     (rank-normalized) and tail (folded, rank-normalized) statistics.
//
// ✨ Why it matters:
//
// A single chain cannot testify about its own convergence. R̂ compares the
// variance between chains to the variance within them; when the chains have
// mixed, the two agree and R̂ ≈ 1. Splitting each chain first also catches a
// chain that drifts between its own halves, and the folded variant catches
// chains that agree on location while disagreeing on spread.
//
// ⚙️ How it behaves:
//
//   - Splitting (default 2) always happens before any transform.
//   - A constant parameter yields NaN by default, or exactly 1 with
//     Options.SaturateDegenerate.
//   - Chains frozen at different values yield +Inf.
//   - Fewer than two chains after splitting is an error, not a number;
//     between-chain variance does not exist for one chain.
//
// See Rhat and Diagnostic for exact contracts, Options for tuning.
package rhat
