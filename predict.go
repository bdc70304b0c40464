package lasso

import "fmt"

// Predict returns X·beta for an indicator design: every row accumulates the
// coefficients of the columns stored at that row. Columns with a zero
// coefficient are skipped. The inputs are not modified.
func Predict(x Design, beta []float64) []float64 {
	n, p := x.Dims()
	checkDims(x, -1, len(beta))
	pred := make([]float64, n)
	for j := 0; j < p; j++ {
		b := beta[j]
		if b == 0 {
			continue
		}
		for _, i := range x.ColumnRows(j) {
			pred[i] += b
		}
	}
	return pred
}

// PredictState returns fitted values on the scale of the target for a state
// fitted with the given scaling: each coefficient is divided by its column
// scale and the intercept is added.
func PredictState(x Design, st *State, sc Scaling) []float64 {
	if st == nil {
		panic(fmt.Errorf("state: %w", ErrNilArgument))
	}
	if err := st.Validate(x, sc); err != nil {
		panic(err)
	}
	raw := RawCoefficients(st.Beta, sc)
	pred := Predict(x, raw)
	for i := range pred {
		pred[i] += st.Intercept
	}
	return pred
}

// RawCoefficients maps coefficients fitted on scaled columns back to the
// units of the unscaled indicator columns.
func RawCoefficients(beta []float64, sc Scaling) []float64 {
	if len(beta) != len(sc.Scale) {
		panic(fmt.Errorf("beta %d, scale %d: %w", len(beta), len(sc.Scale), ErrDimensionMismatch))
	}
	raw := make([]float64, len(beta))
	for j, b := range beta {
		raw[j] = b / sc.Scale[j]
	}
	return raw
}
