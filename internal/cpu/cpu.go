// Package cpu provides CPU feature detection for kernel selection.
//
// It detects the SIMD extensions relevant to the saxpy block kernels
// (AVX2 on amd64, NEON on arm64) and caches the result. Detection runs
// lazily on the first call to DetectFeatures and is thread-safe.
package cpu

import "sync"

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64
	HasAVX2 bool // Advanced Vector Extensions 2

	// ARM
	HasNEON bool // ARM Advanced SIMD (NEON)

	// ForceGeneric disables all accelerated kernels (for testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

// SIMDName returns a short label for the best SIMD extension available,
// or "scalar" when none is.
func (f Features) SIMDName() string {
	switch {
	case f.ForceGeneric:
		return "scalar"
	case f.HasAVX2:
		return "AVX2"
	case f.HasNEON:
		return "NEON"
	default:
		return "scalar"
	}
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection for testing.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once and cached. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified
// features. Intended for testing only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// Intended for testing only.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
