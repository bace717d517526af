// Package randvec generates vectors of uniformly distributed random float64
// values for benchmark inputs.
//
// Generation is deterministic per seed, so benchmark runs are repeatable.
package randvec

import (
	"errors"
	"math"
	"math/rand/v2"
)

var (
	// ErrInvalidLength is returned when a non-positive vector length is requested.
	ErrInvalidLength = errors.New("randvec: length must be positive")

	// ErrTooLarge is returned when the requested vector cannot be allocated.
	ErrTooLarge = errors.New("randvec: length exceeds maximum allocatable size")
)

// MaxLen is the largest vector length Uniform will attempt to allocate,
// bounded by the address space a []float64 can span (8 bytes per element).
const MaxLen = math.MaxInt / 8

// Uniform returns a vector of n independent uniform values in [0,1),
// drawn from a PCG source seeded with seed.
func Uniform(n int, seed uint64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if n > MaxLen {
		return nil, ErrTooLarge
	}

	out := make([]float64, n)
	Fill(out, New(seed))

	return out, nil
}

// New returns a deterministic random source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fill overwrites dst with independent uniform values in [0,1) drawn
// from rng.
func Fill(dst []float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = rng.Float64()
	}
}
