package autocov

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Autocovariance — biased autocovariance function of a single series
//
// Description:
//
//	For a series x of length N the biased autocovariance at lag k is
//
//	  acov[k] = (1/N) · Σ_{t=0}^{N-k-1} (x[t]-x̄)(x[t+k]-x̄),  k = 0..N-1.
//
//	The denominator is N for every lag (not N-k), which keeps the
//	sequence positive semi-definite; lag 0 therefore equals
//	variance(x)·(N-1)/N. This is the estimator effective-sample-size
//	computations are built on.
//
// Algorithm Outline (FFT mode):
//  1. Center: s[t] = x[t] - x̄, zero-padded to L = nextPow2(2N) so the
//     circular convolution cannot wrap around.
//  2. Forward real FFT of s (gonum dsp/fourier), L/2+1 coefficients.
//  3. Multiply each coefficient by its own conjugate: re²+im², purely real.
//  4. Inverse transform; entry k now holds L·Σ_t s[t]s[t+k] (the
//     Coefficients→Sequence round trip scales by L).
//  5. acov[k] = entry[k] / (L·N) for k < N; a negative lag-0 entry from
//     floating-point noise is clamped to zero.
//
// Direct mode computes the definition with one dot product per lag.
//
// Degenerate input: N == 0 yields an empty vector, N == 1 or a constant
// series yields all zeros. Downstream estimators must treat the zero
// variance per their degeneracy policy rather than divide by it.
//
// Complexity:
//
//	FFT    — O(N log N) time, O(N) extra space.
//	Direct — O(N²) time, O(N) extra space.
//
// Errors: ErrUnknownMethod.
func Autocovariance(x []float64, method Method) ([]float64, error) {
	est, err := NewEstimator(len(x), method)
	if err != nil {
		return nil, err
	}

	return est.Estimate(nil, x)
}

// Estimator computes biased autocovariances for series of one fixed length,
// reusing the FFT plan and scratch buffers across calls. It is not safe for
// concurrent use; build one per goroutine.
type Estimator struct {
	method Method
	n      int
	padded int

	fft   *fourier.FFT
	seq   []float64
	coeff []complex128
}

// NewEstimator builds an Estimator for series of length n.
//
// Errors: ErrUnknownMethod.
func NewEstimator(n int, method Method) (*Estimator, error) {
	switch method {
	case FFT, Direct:
	default:
		return nil, ErrUnknownMethod
	}

	est := &Estimator{method: method, n: n}
	if method == FFT && n > 1 {
		est.padded = nextPow2(2 * n)
		est.fft = fourier.NewFFT(est.padded)
		est.seq = make([]float64, est.padded)
		est.coeff = make([]complex128, est.padded/2+1)
	}

	return est, nil
}

// Len reports the series length the estimator was built for.
func (e *Estimator) Len() int { return e.n }

// Estimate computes the autocovariance vector of x into dst (grown as
// needed) and returns it. len(x) must equal Len().
//
// Errors: ErrLengthMismatch.
func (e *Estimator) Estimate(dst, x []float64) ([]float64, error) {
	if len(x) != e.n {
		return nil, ErrLengthMismatch
	}
	if cap(dst) < e.n {
		dst = make([]float64, e.n)
	}
	dst = dst[:e.n]

	// Degenerate sizes first: nothing to transform.
	if e.n == 0 {
		return dst, nil
	}
	if e.n == 1 || isConstant(x) {
		for k := range dst {
			dst[k] = 0
		}

		return dst, nil
	}

	if e.method == Direct {
		e.direct(dst, x)
	} else {
		e.viaFFT(dst, x)
	}

	// FFT noise can push the lag-0 entry a hair below zero; a variance
	// cannot be negative, so clamp.
	if dst[0] < 0 {
		dst[0] = 0
	}

	return dst, nil
}

// direct evaluates the definition lag by lag on the centered series.
func (e *Estimator) direct(dst, x []float64) {
	mean := stat.Mean(x, nil)
	centered := make([]float64, e.n)
	for t, v := range x {
		centered[t] = v - mean
	}

	inv := 1.0 / float64(e.n)
	for k := 0; k < e.n; k++ {
		dst[k] = floats.Dot(centered[:e.n-k], centered[k:]) * inv
	}
}

// viaFFT evaluates all lags at once in the frequency domain.
func (e *Estimator) viaFFT(dst, x []float64) {
	mean := stat.Mean(x, nil)
	for t := 0; t < e.n; t++ {
		e.seq[t] = x[t] - mean
	}
	for t := e.n; t < e.padded; t++ {
		e.seq[t] = 0
	}

	coeff := e.fft.Coefficients(e.coeff, e.seq)
	var re, im float64
	for i, c := range coeff {
		re, im = real(c), imag(c)
		coeff[i] = complex(re*re+im*im, 0)
	}

	// Sequence scales the round trip by the padded length; fold that and
	// the biased 1/N denominator into one factor.
	acTime := e.fft.Sequence(e.seq, coeff)
	scale := 1.0 / (float64(e.padded) * float64(e.n))
	for k := 0; k < e.n; k++ {
		dst[k] = acTime[k] * scale
	}
}

// isConstant reports whether every entry equals the first. Constant series
// are detected exactly, value by value, so degenerate inputs yield exact
// zeros instead of centering noise.
func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}

	return true
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
