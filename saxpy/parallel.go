package saxpy

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-saxpy/internal/vecmath"
)

// parallelThreshold is the minimum vector length worth decomposing across
// goroutines. Below it the scheduling overhead exceeds the kernel cost.
const parallelThreshold = 1 << 17

// computeInto runs the kernel over dst, sequentially or chunked across
// workers. Each chunk covers a disjoint slice of dst, so no synchronization
// is needed beyond the final join, and every element is computed by the
// same single add-then-multiply regardless of the decomposition.
func computeInto(dst, x, y []float64, a float64, cfg Config) {
	n := len(dst)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < parallelThreshold {
		vecmath.AddMulBlock(dst, x, y, a)
		return
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			vecmath.AddMulBlock(dst[start:end], x[start:end], y[start:end], a)
			return nil
		})
	}

	// Chunk kernels cannot fail; Wait only serves as the join barrier.
	_ = g.Wait()
}
