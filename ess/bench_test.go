package ess_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/ess"
)

// benchmarkESS runs the estimator on 4 fixed-seed AR(1) chains of the given
// length, excluding setup from the timing.
func benchmarkESS(b *testing.B, draws int, opts ess.Options) {
	rng := rand.New(rand.NewPCG(42, 43))
	series := make([][]float64, 4)
	for c := range series {
		series[c] = make([]float64, draws)
		x := rng.NormFloat64()
		for d := range series[c] {
			x = 0.7*x + 0.3*rng.NormFloat64()
			series[c][d] = x
		}
	}
	arr, err := chain.FromSeries(series, "theta")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ess.ESS(arr, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkESS_Bulk1k(b *testing.B) {
	benchmarkESS(b, 1_000, ess.DefaultOptions())
}

func BenchmarkESS_Tail1k(b *testing.B) {
	opts := ess.DefaultOptions()
	opts.Kind = ess.Tail
	benchmarkESS(b, 1_000, opts)
}

func BenchmarkESS_Direct1k(b *testing.B) {
	opts := ess.DefaultOptions()
	opts.Method = ess.Direct
	benchmarkESS(b, 1_000, opts)
}

func BenchmarkESS_Bulk16k(b *testing.B) {
	benchmarkESS(b, 16_000, ess.DefaultOptions())
}
