// Package vecmath provides the block operations behind the saxpy kernel
// with runtime implementation dispatch.
//
// Two implementation variants register themselves with the internal
// registry:
//
//   - accel: delegates to github.com/cwbudde/algo-vecmath, which picks
//     SIMD kernels (AVX2 on amd64, NEON on arm64) for the current CPU
//   - generic: pure Go scalar loops, always available
//
// The highest-priority usable variant is bound on first use. Operations an
// entry does not implement fall back to the next usable entry, so the
// reductions always resolve to the generic loops.
//
// All operations are deterministic: for a given input they produce bitwise
// identical results on every variant, because each element undergoes the
// same sequence of IEEE-754 roundings (one add, then one multiply for
// AddMulBlock) regardless of how the block is traversed.
//
// Block operations panic on mismatched slice lengths. Public packages
// validate lengths before calling into this layer.
package vecmath
