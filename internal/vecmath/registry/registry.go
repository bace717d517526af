// Package registry provides the implementation registry for vecmath operations.
//
// The registry-based dispatch system allows multiple kernel variants
// (generic scalar, SIMD-accelerated) to coexist. Implementation packages
// register themselves via init() functions, and the vecmath package selects
// the best variant for the current CPU at runtime.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-saxpy/internal/cpu"
)

// OpEntry represents a registered implementation variant for vecmath operations.
//
// Not all operation fields need to be populated. Dispatch falls back to a
// lower-priority entry for any operation an entry leaves nil, so the lowest
// priority registration must implement everything.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation
	// (e.g. "accel", "generic").
	Name string

	// Priority determines selection order when multiple supported
	// implementations exist. Higher priority wins. Suggested priorities:
	//   - Generic scalar: 0
	//   - SIMD-accelerated: 20
	Priority int

	// Supported reports whether this implementation may run with the given
	// CPU features. A nil Supported means always usable.
	Supported func(cpu.Features) bool

	// AddMulBlock performs the fused add-multiply: dst[i] = (a[i] + b[i]) * scale.
	AddMulBlock func(dst, a, b []float64, scale float64)

	// Sum returns the sum of all elements: sum(x[i]).
	Sum func(x []float64) float64

	// MinMax returns the minimum and maximum element of x.
	MinMax func(x []float64) (minVal, maxVal float64)
}

// Usable reports whether the entry may run with the given CPU features.
func (e *OpEntry) Usable(features cpu.Features) bool {
	return e.Supported == nil || e.Supported(features)
}

// OpRegistry manages the registration and lookup of implementation variants.
//
// Implementations register themselves via init() functions. All registrations
// should complete before the first call to Lookup or ListEntries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all vecmath operations.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
// Safe to call concurrently.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority usable entry, or nil if none is usable
// (which should never happen once a generic fallback is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Usable(features) {
			return entry
		}
	}

	return nil
}

// ListEntries returns a copy of all registered entries, sorted by priority
// in descending order.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for testing only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
