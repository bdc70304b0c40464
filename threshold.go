package lasso

import "math"

const (
	// EqualTolerance is the absolute difference below which a proposed
	// coefficient is considered equal to the current one.
	EqualTolerance = 1e-16

	// ImprovementTolerance is the relative decrease in residual sum of squares
	// (within a sweep) or mean squared error (across sweeps) that counts as progress.
	ImprovementTolerance = 1e-7
)

// SoftThreshold applies the soft-thresholding operator, the proximal map of
// the L1 penalty: it shrinks z toward zero by lambda and returns 0 when
// |z| <= lambda.
func SoftThreshold(z, lambda float64) float64 {
	if z > lambda {
		return z - lambda
	} else if z < -lambda {
		return z + lambda
	}
	return 0
}

// EqualDouble reports whether x and y differ by less than EqualTolerance.
func EqualDouble(x, y float64) bool {
	return math.Abs(x-y) < EqualTolerance
}
