package lasso

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaMax(t *testing.T) {
	x, err := NewIndicator(4, [][]int{{0, 1}, {2}, {}})
	require.NoError(t, err)
	sc := UnitScaling(3)

	resid := []float64{1, 2, 3, -6}
	// Cross products 3, 3, 0.
	assert.Equal(t, 0.75, LambdaMax(x, resid, sc.Scale, sc.Center))

	// Every cross product negative: the signed search reports zero.
	resid = []float64{-1, -2, -3, 6}
	assert.Equal(t, 0.0, LambdaMax(x, resid, sc.Scale, sc.Center))
	assert.Equal(t, 0.75, LambdaMaxWith(x, resid, sc.Scale, sc.Center, AbsMax))
}

func TestLambdaMax_UsesScale(t *testing.T) {
	x, err := NewIndicator(4, [][]int{{0, 1}, {2}})
	require.NoError(t, err)
	resid := []float64{1, 1, 1, 0}

	scale := []float64{0.5, 0.1}
	// 2/0.5 = 4 and 1/0.1 = 10; divided by n = 4.
	assert.InDelta(t, 2.5, LambdaMax(x, resid, scale, []float64{0, 0}), 1e-12)
}

func TestLambdaMax_DimensionPanics(t *testing.T) {
	x, err := NewIndicator(2, [][]int{{0}, {1}})
	require.NoError(t, err)
	assert.Panics(t, func() { LambdaMax(x, []float64{1, 2}, []float64{1}, []float64{0, 0}) })
	assert.Panics(t, func() { LambdaMax(x, []float64{1, 2}, []float64{1, 1}, []float64{0}) })
	assert.Panics(t, func() { LambdaMax(x, []float64{1}, []float64{1, 1}, []float64{0, 0}) })
}

func TestLambdaSequence(t *testing.T) {
	seq, err := LambdaSequence(1, 0.001, 4)
	require.NoError(t, err)
	require.Len(t, seq, 4)
	want := []float64{1, 0.1, 0.01, 0.001}
	for i := range want {
		assert.InDelta(t, want[i], seq[i], 1e-12)
	}

	seq, err = LambdaSequence(2, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, seq)

	_, err = LambdaSequence(0, 0.1, 10)
	assert.ErrorIs(t, err, ErrBadLambda)
	_, err = LambdaSequence(math.NaN(), 0.1, 10)
	assert.ErrorIs(t, err, ErrBadLambda)
	_, err = LambdaSequence(1, 1, 10)
	assert.ErrorIs(t, err, ErrBadLambda)
	_, err = LambdaSequence(1, 0.1, 0)
	assert.ErrorIs(t, err, ErrBadShape)
}
