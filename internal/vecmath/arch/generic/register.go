package generic

import "github.com/cwbudde/algo-saxpy/internal/vecmath/registry"

// init registers the generic (pure Go) implementations with the vecmath
// registry.
//
// Generic implementations serve as the baseline fallback when no accelerated
// kernels are available or when ForceGeneric is enabled for testing. They
// implement every operation, so dispatch never fails.
//
// Priority: 0 (lowest - used only when no accelerated alternative exists)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "generic",
		Priority: 0,

		AddMulBlock: AddMulBlock,
		Sum:         Sum,
		MinMax:      MinMax,
	})
}
