package saxpy

import (
	"math/rand/v2"
	"testing"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"1K", 1024},
	{"64K", 65536},
	{"1M", 1 << 20},
	{"10M", 10_000_000},
}

func BenchmarkCompute(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			rng := rand.New(rand.NewPCG(1, 2))
			x := randomVector(tc.size, rng)
			y := randomVector(tc.size, rng)
			dst := make([]float64, tc.size)

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := ComputeInto(dst, x, y, 2.1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkComputeSequential(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			rng := rand.New(rand.NewPCG(1, 2))
			x := randomVector(tc.size, rng)
			y := randomVector(tc.size, rng)
			dst := make([]float64, tc.size)

			b.SetBytes(int64(tc.size * 8 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := ComputeInto(dst, x, y, 2.1, WithWorkers(1)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
