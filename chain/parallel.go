package chain

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EachParam runs fn(p) for every parameter index 0..nparams-1 on a bounded
// worker pool and returns the first error. Parameters are independent
// columns of an immutable Array, so fn instances share nothing as long as
// each writes only to its own output slot; estimators rely on exactly that.
//
// workers <= 0 uses GOMAXPROCS. The work is pure CPU, nothing blocks, so no
// context plumbing is involved.
func EachParam(workers, nparams int, fn func(p int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for p := 0; p < nparams; p++ {
		g.Go(func() error { return fn(p) })
	}

	return g.Wait()
}
