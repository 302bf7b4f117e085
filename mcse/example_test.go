package mcse_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/mcse"
)

// ExampleMean checks that a healthy run reports its posterior mean with an
// error bar well under the posterior scale.
func ExampleMean() {
	rng := rand.New(rand.NewPCG(7, 8))
	series := make([][]float64, 4)
	for c := range series {
		series[c] = make([]float64, 500)
		for d := range series[c] {
			series[c][d] = rng.NormFloat64()
		}
	}
	arr, err := chain.FromSeries(series, "mu")
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	out, err := mcse.Mean(arr, mcse.DefaultOptions())
	if err != nil {
		fmt.Println("mcse:", err)
		return
	}

	fmt.Printf("%s: standard error under 5%% of the posterior scale: %t\n", arr.Name(0), out[0] < 0.05)
	// Output: mu: standard error under 5% of the posterior scale: true
}
