// Package autocov defines the backend selector for autocovariance
// estimation.
package autocov

import "errors"

// Method selects how the autocovariance function is computed.
//
//   - FFT    — O(N log N) circular convolution with zero-padding to the
//     next power of two ≥ 2N, which removes wraparound. The default.
//   - Direct — the O(N²) definition, lag by lag. Reference backend for
//     cross-checks and very short series.
//
// Both produce the biased estimator (denominator N at every lag) and agree
// to floating-point tolerance.
type Method int

const (
	// FFT mode: zero-padded real FFT, multiply by own conjugate, inverse
	// transform. Default.
	FFT Method = iota

	// Direct mode: lag-by-lag dot products of the centered series.
	Direct
)

// ErrUnknownMethod is returned for a Method outside {FFT, Direct}.
var ErrUnknownMethod = errors.New("autocov: unknown method")

// ErrLengthMismatch is returned when a series handed to an Estimator does
// not match the length the estimator was built for.
var ErrLengthMismatch = errors.New("autocov: series length does not match estimator size")
