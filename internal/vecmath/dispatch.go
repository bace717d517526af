package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-saxpy/internal/cpu"
	"github.com/cwbudde/algo-saxpy/internal/vecmath/registry"
)

var (
	bindOnce sync.Once

	implName   string
	addMulImpl func(dst, a, b []float64, scale float64)
	sumImpl    func(x []float64) float64
	minMaxImpl func(x []float64) (minVal, maxVal float64)
)

// bind selects implementations for all operations based on the detected
// CPU features. The best usable entry names the implementation; operations
// it leaves nil are resolved from lower-priority entries.
func bind() {
	features := cpu.DetectFeatures()
	entries := registry.Global.ListEntries()

	for i := range entries {
		e := &entries[i]
		if !e.Usable(features) {
			continue
		}
		if implName == "" {
			implName = e.Name
		}
		if addMulImpl == nil && e.AddMulBlock != nil {
			addMulImpl = e.AddMulBlock
		}
		if sumImpl == nil && e.Sum != nil {
			sumImpl = e.Sum
		}
		if minMaxImpl == nil && e.MinMax != nil {
			minMaxImpl = e.MinMax
		}
	}

	if addMulImpl == nil || sumImpl == nil || minMaxImpl == nil {
		panic("vecmath: no implementation registered for required operation")
	}
}

// AddMulBlock performs the fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
// Slices must have equal length. Panics if lengths differ.
// The best implementation for the current CPU is selected on first use.
func AddMulBlock(dst, a, b []float64, scale float64) {
	bindOnce.Do(bind)
	addMulImpl(dst, a, b, scale)
}

// Sum returns the sum of all elements in x. Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	bindOnce.Do(bind)
	return sumImpl(x)
}

// MinMax returns the minimum and maximum element of x.
// Returns (0, 0) for an empty slice.
func MinMax(x []float64) (minVal, maxVal float64) {
	bindOnce.Do(bind)
	return minMaxImpl(x)
}

// ImplementationName reports which implementation variant the kernel
// dispatch selected for this process (e.g. "accel", "generic").
func ImplementationName() string {
	bindOnce.Do(bind)
	return implName
}
