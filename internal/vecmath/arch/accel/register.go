package accel

import (
	"github.com/cwbudde/algo-saxpy/internal/cpu"
	"github.com/cwbudde/algo-saxpy/internal/vecmath/registry"
)

// init registers the algo-vecmath backed implementation with the vecmath
// registry.
//
// The block operations run everywhere (algo-vecmath carries its own scalar
// fallback), so the entry is usable on every architecture unless
// ForceGeneric is set. Reduction operations are left nil and fall back to
// the generic entry.
//
// Priority: 20 (preferred over generic whenever usable)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "accel",
		Priority: 20,
		Supported: func(f cpu.Features) bool {
			return !f.ForceGeneric
		},

		AddMulBlock: AddMulBlock,
	})
}
