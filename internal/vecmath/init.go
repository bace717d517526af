package vecmath

// Blank imports trigger the init() functions of the implementation
// packages, which register their kernels with the global registry.

import (
	_ "github.com/cwbudde/algo-saxpy/internal/vecmath/arch/accel"
	_ "github.com/cwbudde/algo-saxpy/internal/vecmath/arch/generic"
)
