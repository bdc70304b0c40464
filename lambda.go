package lasso

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LambdaMaxMode selects how LambdaMaxWith reduces the column cross products.
type LambdaMaxMode int

const (
	// SignedMax takes the largest signed cross product, floored at 0. A column
	// with a large negative cross product is not detected.
	SignedMax LambdaMaxMode = iota
	// AbsMax takes the largest absolute cross product, the smallest λ at which
	// every coefficient stays at zero.
	AbsMax
)

// LambdaMax returns max_j CrossProduct(x, resid, j) / n using SignedMax.
func LambdaMax(x Design, resid, scale, center []float64) float64 {
	return LambdaMaxWith(x, resid, scale, center, SignedMax)
}

// LambdaMaxWith returns the largest cross product over all columns divided by
// the number of rows, reduced according to mode.
func LambdaMaxWith(x Design, resid, scale, center []float64, mode LambdaMaxMode) float64 {
	checkDims(x, len(resid), len(scale))
	checkDims(x, -1, len(center))
	_, p := x.Dims()

	maxCP := 0.0
	for j := 0; j < p; j++ {
		cp := crossProduct(x.ColumnRows(j), resid, scale[j])
		if mode == AbsMax {
			cp = math.Abs(cp)
		}
		if cp > maxCP {
			maxCP = cp
		}
	}
	return maxCP / float64(len(resid))
}

// LambdaSequence returns count values spaced evenly on a log scale from
// lambdaMax down to lambdaMax*minRatio. Deciding which values to fit and in
// what order is left to the caller.
func LambdaSequence(lambdaMax, minRatio float64, count int) ([]float64, error) {
	if lambdaMax <= 0 || math.IsNaN(lambdaMax) || math.IsInf(lambdaMax, 0) {
		return nil, fmt.Errorf("lambda max %v: %w", lambdaMax, ErrBadLambda)
	}
	if minRatio <= 0 || minRatio >= 1 {
		return nil, fmt.Errorf("min ratio %v outside (0,1): %w", minRatio, ErrBadLambda)
	}
	if count < 1 {
		return nil, fmt.Errorf("count %d: %w", count, ErrBadShape)
	}
	if count == 1 {
		return []float64{lambdaMax}, nil
	}
	seq := floats.LogSpan(make([]float64, count), lambdaMax, lambdaMax*minRatio)
	return seq, nil
}
