// Package mcmcdiag is your toolbox for judging MCMC sampler output —
// convergence and efficiency diagnostics over multiple parallel chains,
// from raw draws to defensible error bars.
//
// 🚀 What is mcmcdiag?
//
//	A focused, numeric library that brings together:
//		• Chain arrays: validated, immutable multi-chain storage & adapters
//		• Chain splitting: the split-diagnostic transform with exact remainder rules
//		• Autocovariance: direct and FFT-accelerated estimators, biased normalization
//		• ESS: bulk, tail and basic effective sample size (Geyer & BDA truncation)
//		• R-hat: rank-normalized split potential scale reduction, bulk + folded tail
//		• MCSE: Monte Carlo standard errors for means, spreads and quantiles
//
// ✨ Why choose mcmcdiag?
//
//   - Honest numbers – between-chain disagreement always widens the result
//   - Rock-solid edges – constant chains, frozen chains and short chains
//     answer with NaN, ±Inf or a sentinel error, never a silent lie
//   - Parallel by default – parameters fan out across a bounded worker pool
//   - Pure computation – deterministic, allocation-conscious, no hidden state
//
// Under the hood, everything is organized per concern:
//
//	chain/    — the ChainArray type, constructors, adapters, splitting, fan-out
//	autocov/  — autocovariance of a single series (direct / FFT backends)
//	ranknorm/ — rank-based normal scores & median folding transforms
//	ess/      — effective sample size strategies and quantile indicators
//	rhat/     — potential scale reduction & the combined bulk/tail diagnostic
//	mcse/     — standard errors built on ESS and batch means
//
// Quick sketch of the pipeline:
//
//	draws ──▶ split ──▶ (rank/fold) ──▶ autocov ──▶ ESS ─▶ MCSE
//	                     └───────────▶ R-hat
//
// Dive into examples/ for complete programs: a convergence report over a
// multi-parameter run and a sampler-tuning comparison.
//
//	go get github.com/katalvlaran/mcmcdiag
package mcmcdiag
