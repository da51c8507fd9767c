package geom

import "fmt"

// Tolerance is the maximum allowed distance between an exact curve or
// surface and its discretized approximation. It is always positive.
type Tolerance struct {
	inner float64
}

// NewTolerance creates a tolerance from a positive value.
// Returns an error if the value is zero or negative.
func NewTolerance(value float64) (Tolerance, error) {
	if value <= 0 {
		return Tolerance{}, fmt.Errorf("tolerance must be positive, got %v", value)
	}
	return Tolerance{inner: value}, nil
}

// MustTolerance creates a tolerance from a positive value and panics
// if the value is zero or negative. For use with constants known to be
// valid.
func MustTolerance(value float64) Tolerance {
	t, err := NewTolerance(value)
	if err != nil {
		panic(err)
	}
	return t
}

// Value returns the tolerance as a float64.
func (t Tolerance) Value() float64 {
	return t.inner
}
