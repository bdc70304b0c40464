package lasso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPredict(t *testing.T) {
	x, err := NewIndicator(4, [][]int{{0, 1}, {1, 3}, {2}})
	require.NoError(t, err)
	beta := []float64{2, -1, 0}

	pred := Predict(x, beta)
	assert.Equal(t, []float64{2, 1, 0, -1}, pred)
	assert.Equal(t, []float64{2, -1, 0}, beta, "inputs are not modified")
}

func TestPredict_EmptyDesign(t *testing.T) {
	x, err := NewIndicator(3, [][]int{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, Predict(x, []float64{5, -7}))
}

func TestPredict_MatchesDenseMulVec(t *testing.T) {
	x := syntheticDesign(t, 50, 12)
	beta := []float64{1.5, 0, -2, 0.25, 0, 3, 0, 0, -0.5, 1, 0, 0.75}

	var want mat.VecDense
	want.MulVec(x, mat.NewVecDense(len(beta), beta))

	assert.InDeltaSlice(t, want.RawVector().Data, Predict(x, beta), 1e-12)
}

func TestPredict_DimensionPanics(t *testing.T) {
	x, err := NewIndicator(3, [][]int{{0}})
	require.NoError(t, err)
	requirePanicsWith(t, ErrDimensionMismatch, func() { Predict(x, []float64{1, 2}) })
}

func TestPredictState(t *testing.T) {
	x, err := NewIndicator(4, [][]int{{0, 1}, {2}})
	require.NoError(t, err)
	sc := Scaling{Scale: []float64{0.5, 2}, Center: []float64{0, 0}}
	st := &State{Beta: []float64{1, 4}, Resid: make([]float64, 4), Intercept: 0.5}

	assert.Equal(t, []float64{2, 2}, RawCoefficients(st.Beta, sc))
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 0.5}, PredictState(x, st, sc))
}

func TestPredictState_PanicsWithSentinel(t *testing.T) {
	x, err := NewIndicator(3, [][]int{{0}, {1}})
	require.NoError(t, err)
	st := NewState(x, []float64{1, 2, 3})

	requirePanicsWith(t, ErrDimensionMismatch, func() { PredictState(x, st, UnitScaling(1)) })
	requirePanicsWith(t, ErrNilArgument, func() { PredictState(x, nil, UnitScaling(2)) })
	requirePanicsWith(t, ErrDimensionMismatch, func() { RawCoefficients([]float64{1}, UnitScaling(2)) })
}
