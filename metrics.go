package lasso

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// RSquared returns the coefficient of determination of yPred against yTrue.
// A constant target leaves no variance to explain and yields 1.
func RSquared(yTrue, yPred []float64) float64 {
	if len(yTrue) != len(yPred) {
		panic(fmt.Errorf("target %d, predictions %d: %w", len(yTrue), len(yPred), ErrDimensionMismatch))
	}
	if len(yTrue) == 0 || stat.PopVariance(yTrue, nil) < 1e-15 {
		return 1
	}
	return stat.RSquaredFrom(yPred, yTrue, nil)
}

// Score returns the R² of a fitted state on its target y, predicting through
// the same scaling the state was fitted with.
func Score(x Design, st *State, sc Scaling, y []float64) float64 {
	checkDims(x, len(y), -1)
	return RSquared(y, PredictState(x, st, sc))
}
