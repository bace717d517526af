package generic

// AddMulBlock performs the fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// The addition is rounded before the multiplication, matching the element
// contract of the saxpy kernel. Slices must have equal length. Panics if
// lengths differ. This is the pure Go fallback implementation.
func AddMulBlock(dst, a, b []float64, scale float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = (a[i] + b[i]) * scale
	}
}
