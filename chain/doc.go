// Package chain holds the canonical container for MCMC sampler output and
// the machinery every diagnostic builds on: input adapters, chain splitting,
// and the per-parameter fan-out helper.
//
// 🚀 What lives here?
//
//	The Array type — an immutable (draw × chain × parameter) block of
//	draws with equal-length chains and finite values, enforced at
//	construction. Everything downstream (ess, rhat, mcse) consumes it.
//
// ✨ Key pieces:
//   - New / FromSeries — canonical constructors from nested slices
//   - GroupedDraws / FromMatrices — adapters from flat id-labelled draws
//     and from gonum matrices; Source for everything else
//   - SplitIndices — relabel per-draw chain ids into split sub-chains
//     (first r blocks take the extra draw; deterministic id order)
//   - Array.Split — equal-length array form of the same subdivision
//   - EachParam — bounded errgroup fan-out across parameter columns
//
// ⚙️ Usage:
//
//	arr, err := chain.FromSeries([][]float64{chain0, chain1}, "mu")
//	if err != nil { ... }
//	half, _ := arr.Split(2) // 2 chains → 4 sub-chains
//
// Invariants: an Array in circulation always has >= 1 chain, >= 1 draw,
// equal chain lengths, finite values, unique parameter names. Estimators
// never mutate one; transforms allocate fresh arrays.
package chain
