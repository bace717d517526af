package accel

import vecmath "github.com/cwbudde/algo-vecmath"

// AddMulBlock performs the fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// Slices must have equal length. Panics if lengths differ.
//
// The work is delegated to the algo-vecmath block operations, which select
// SIMD kernels (AVX2, NEON) for the current CPU internally. The addition
// pass completes before the scaling pass, so each element sees exactly one
// rounded add followed by one rounded multiply - bitwise identical to the
// scalar fallback.
func AddMulBlock(dst, a, b []float64, scale float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	// dst may fully alias either input; partial overlap is not supported.
	switch {
	case &dst[0] == &a[0]:
		vecmath.AddBlockInPlace(dst, b)
	case &dst[0] == &b[0]:
		vecmath.AddBlockInPlace(dst, a)
	default:
		copy(dst, a)
		vecmath.AddBlockInPlace(dst, b)
	}
	vecmath.ScaleBlock(dst, dst, scale)
}
