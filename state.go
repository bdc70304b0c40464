package lasso

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// State is the mutable state of a single fit: coefficients, residuals and
// intercept. It is owned by one fit at a time and is not safe for concurrent use.
//
// Between updates Resid ≈ y − X·diag(1/scale)·Beta − Intercept holds.
type State struct {
	Beta      []float64
	Resid     []float64
	Intercept float64
}

// NewState returns the null-model state for target y: zero coefficients,
// zero intercept and residuals equal to y.
func NewState(x Design, y []float64) *State {
	n, p := x.Dims()
	if len(y) != n {
		panic(fmt.Errorf("design has %d rows, target has %d: %w", n, len(y), ErrDimensionMismatch))
	}
	resid := make([]float64, n)
	copy(resid, y)
	return &State{
		Beta:  make([]float64, p),
		Resid: resid,
	}
}

// Clone returns a deep copy, e.g. to warm start the next λ of a path
// without losing the current solution.
func (s *State) Clone() *State {
	return &State{
		Beta:      append([]float64(nil), s.Beta...),
		Resid:     append([]float64(nil), s.Resid...),
		Intercept: s.Intercept,
	}
}

// MSE returns the mean of the squared residuals.
func (s *State) MSE() float64 {
	return floats.Dot(s.Resid, s.Resid) / float64(len(s.Resid))
}

// ActiveCount returns the number of nonzero coefficients.
func (s *State) ActiveCount() int {
	count := 0
	for _, b := range s.Beta {
		if b != 0 {
			count++
		}
	}
	return count
}

// Validate checks the state against the design and scaling dimensions.
func (s *State) Validate(x Design, sc Scaling) error {
	n, p := x.Dims()
	if len(s.Resid) != n {
		return fmt.Errorf("residuals %d, rows %d: %w", len(s.Resid), n, ErrDimensionMismatch)
	}
	if len(s.Beta) != p || len(sc.Scale) != p || len(sc.Center) != p {
		return fmt.Errorf("beta %d, scale %d, center %d, columns %d: %w",
			len(s.Beta), len(sc.Scale), len(sc.Center), p, ErrDimensionMismatch)
	}
	return nil
}
