package pcurve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mesh returns n evenly spaced values from start to stop, both inclusive.
// A mesh with n == 1 consists of start alone; start == stop is a legal
// degenerate mesh. Mesh returns an error wrapping [ErrInvalidMesh] if n is
// not positive or if start > stop.
func Mesh(start, stop float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("mesh needs at least one point, got %d: %w", n, ErrInvalidMesh)
	}
	if start > stop {
		return nil, fmt.Errorf("mesh bounds [%g, %g] are inverted: %w", start, stop, ErrInvalidMesh)
	}
	if n == 1 {
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, stop), nil
}
