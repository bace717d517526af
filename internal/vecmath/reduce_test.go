package vecmath

import (
	"math"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3.5}, 3.5},
		{"mixed", []float64{1, -2, 3, -4}, -2},
		{"fractions", []float64{0.25, 0.25, 0.5}, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sum(tc.x); got != tc.want {
				t.Errorf("Sum = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		wantMin float64
		wantMax float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{-1.5}, -1.5, -1.5},
		{"ordered", []float64{1, 2, 3}, 1, 3},
		{"reversed", []float64{3, 2, 1}, 1, 3},
		{"negative", []float64{-0.5, -3, 2, 0}, -3, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotMin, gotMax := MinMax(tc.x)
			if gotMin != tc.wantMin || gotMax != tc.wantMax {
				t.Errorf("MinMax = (%v, %v), want (%v, %v)", gotMin, gotMax, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestSumLarge(t *testing.T) {
	const n = 10000

	x := make([]float64, n)
	var want float64
	for i := range x {
		x[i] = float64(i%7) * 0.125 // exact in binary, sum carries no rounding error
		want += x[i]
	}

	if got := Sum(x); math.Abs(got-want) > 1e-9 {
		t.Errorf("Sum = %v, want %v", got, want)
	}
}
