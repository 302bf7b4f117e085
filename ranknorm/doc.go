// Package ranknorm provides the rank-based transforms that make ESS and
// R-hat robust: pooled tied ranks, the rank-normal (inverse normal CDF)
// transform, and folding around the pooled median.
//
// Rank normalization replaces each draw by the standard-normal score of its
// pooled rank, so diagnostics depend only on the ordering of the draws and
// stop caring about heavy tails or infinite variance. Folding maps x to
// |x - median(x)| first, turning differences in spread into differences in
// location; a rank-normalized diagnostic on folded draws is the "tail"
// variant, sensitive to scale non-convergence the plain ("bulk") variant
// misses.
//
// Both transforms are pure Array → Array pipeline stages composed in front
// of the estimators, never inside them.
package ranknorm
