package generic

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	var total float64
	for _, v := range x {
		total += v
	}
	return total
}

// MinMax returns the minimum and maximum element of x.
// Returns (0, 0) for an empty slice.
func MinMax(x []float64) (minVal, maxVal float64) {
	if len(x) == 0 {
		return 0, 0
	}
	minVal, maxVal = x[0], x[0]
	for _, v := range x[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}
