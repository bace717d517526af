package bench

import (
	"math"
	"sort"
)

// Stats holds aggregate statistics over timing samples, in seconds.
type Stats struct {
	Runs   int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // population standard deviation
	Total  float64
}

// Calculate computes aggregate statistics over the given samples in a
// single pass, using Welford's online algorithm for the variance so short
// sample sets with large means stay numerically stable.
func Calculate(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
	)

	var (
		minVal = samples[0]
		maxVal = samples[0]
		total  float64
	)

	for i, s := range samples {
		delta := s - mean
		mean += delta / float64(i+1)
		m2 += delta * (s - mean)

		total += s

		if s < minVal {
			minVal = s
		}
		if s > maxVal {
			maxVal = s
		}
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Stats{
		Runs:   n,
		Min:    minVal,
		Max:    maxVal,
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(m2 / float64(n)),
		Total:  total,
	}
}
