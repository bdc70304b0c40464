package lasso

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scaling holds the per-column scale and center vectors consumed by the
// descent kernel. Both have one entry per design column.
type Scaling struct {
	Scale  []float64
	Center []float64
}

// NewScaling derives scale and center vectors from the sparsity pattern of x.
// Center is the column mean of an indicator column, i.e. the proportion of
// nonzero rows. The cross product currently accepts but does not apply it.
func NewScaling(x Design) Scaling {
	return Scaling{
		Scale:  Scale(x),
		Center: ProportionNonZero(x),
	}
}

// Validate reports ErrDimensionMismatch when Scale and Center differ in
// length and ErrBadScale for a scale entry that is not finite and positive.
// A single-row design fails here: its ScaleFloor is 0.
func (s Scaling) Validate() error {
	if len(s.Scale) != len(s.Center) {
		return fmt.Errorf("scale %d, center %d: %w", len(s.Scale), len(s.Center), ErrDimensionMismatch)
	}
	for j, v := range s.Scale {
		if !(v > 0) || math.IsInf(v, 1) {
			return fmt.Errorf("column %d scale %v: %w", j, v, ErrBadScale)
		}
	}
	return nil
}

// UnitScaling returns scale 1 and center 0 for every column, which makes the
// kernel fit the raw indicator columns.
func UnitScaling(p int) Scaling {
	s := Scaling{Scale: make([]float64, p), Center: make([]float64, p)}
	for j := range s.Scale {
		s.Scale[j] = 1
	}
	return s
}

// NonZeroCounts returns the number of stored entries in every column of x.
func NonZeroCounts(x Design) []int {
	_, p := x.Dims()
	counts := make([]int, p)
	for j := range counts {
		counts[j] = len(x.ColumnRows(j))
	}
	return counts
}

// ProportionNonZero returns NonZeroCounts divided by the number of rows.
func ProportionNonZero(x Design) []float64 {
	n, _ := x.Dims()
	counts := NonZeroCounts(x)
	pnz := make([]float64, len(counts))
	for j, c := range counts {
		pnz[j] = float64(c)
	}
	if n > 0 {
		floats.Scale(1/float64(n), pnz)
	}
	return pnz
}

// ScaleFloor is the smallest scale assigned to a column of a matrix with n rows:
// sqrt((n-1)/n²). Near-constant columns are clamped up to it. It is 0 for
// n ≤ 1, which Scaling.Validate rejects.
func ScaleFloor(n int) float64 {
	if n <= 0 {
		return 0
	}
	nf := float64(n)
	return math.Sqrt((nf - 1) / (nf * nf))
}

// Scale returns sqrt(p̂(1-p̂)) for each column, where p̂ is the proportion of
// nonzero rows, clamped below at ScaleFloor(n).
func Scale(x Design) []float64 {
	n, _ := x.Dims()
	pnz := ProportionNonZero(x)
	minScale := ScaleFloor(n)
	scale := make([]float64, len(pnz))
	for j, q := range pnz {
		s := math.Sqrt(q * (1 - q))
		// NaN cannot survive the clamp: the comparison fails and the floor wins.
		if !(s >= minScale) {
			s = minScale
		}
		scale[j] = s
	}
	return scale
}
