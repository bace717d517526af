package saxpy

import "errors"

// ErrLengthMismatch is returned when the input vectors (and destination,
// for ComputeInto) do not share a single length.
var ErrLengthMismatch = errors.New("saxpy: input vectors must have equal length")

// Compute returns a new vector out with out[i] = a * (x[i] + y[i]).
//
// x and y must have equal length; otherwise ErrLengthMismatch is returned
// and no output is produced. Zero-length inputs yield an empty output
// vector and no error. The inputs are never written to.
func Compute(x, y []float64, a float64, opts ...Option) ([]float64, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(x))
	computeInto(out, x, y, a, applyOptions(opts...))

	return out, nil
}

// ComputeInto writes a * (x[i] + y[i]) into dst, avoiding an allocation.
//
// dst, x and y must all have equal length; otherwise ErrLengthMismatch is
// returned and dst is left untouched. dst may fully alias x or y but must
// not partially overlap either input.
func ComputeInto(dst, x, y []float64, a float64, opts ...Option) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLengthMismatch
	}

	computeInto(dst, x, y, a, applyOptions(opts...))

	return nil
}
