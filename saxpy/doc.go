// Package saxpy computes the fused vector operation out[i] = a * (x[i] + y[i])
// over float64 vectors.
//
// The kernel is a variant of the classic SAXPY ("scalar a times x plus y")
// micro-kernel. Each output element is produced by exactly one IEEE-754
// double addition followed by one multiplication, so results are bitwise
// reproducible across calls, backends, and worker counts.
//
// # Usage
//
//	out, err := saxpy.Compute(x, y, 2.1)
//
// Large inputs are decomposed across CPU cores automatically; each goroutine
// writes a disjoint slice of the output, so the decomposition affects only
// throughput, never results:
//
//	out, err := saxpy.Compute(x, y, 2.1, saxpy.WithWorkers(4))
//
// The per-block work is dispatched at runtime to the best available kernel
// (SIMD-backed via algo-vecmath, or a pure Go scalar loop).
package saxpy
