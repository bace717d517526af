package generic

import "testing"

func TestSum_Generic(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
	if got := Sum([]float64{0.5, 1.5, -2}); got != 0 {
		t.Errorf("Sum = %v, want 0", got)
	}
	if got := Sum([]float64{1, 2, 3, 4}); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
}

func TestMinMax_Generic(t *testing.T) {
	gotMin, gotMax := MinMax(nil)
	if gotMin != 0 || gotMax != 0 {
		t.Errorf("MinMax(nil) = (%v, %v), want (0, 0)", gotMin, gotMax)
	}

	gotMin, gotMax = MinMax([]float64{2, -7, 4, 0})
	if gotMin != -7 || gotMax != 4 {
		t.Errorf("MinMax = (%v, %v), want (-7, 4)", gotMin, gotMax)
	}
}
