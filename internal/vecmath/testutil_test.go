package vecmath

import "strconv"

// Benchmark sizes shared across benchmark files.
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"1K", 1024},
	{"16K", 16384},
	{"64K", 65536},
	{"1M", 1 << 20},
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

// fillRamp fills a and b with deterministic, non-trivial values.
func fillRamp(a, b []float64) {
	n := len(a)
	for i := range a {
		a[i] = float64(i) + 0.5
		b[i] = float64(n-i) * 0.1
	}
}
