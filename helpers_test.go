package lasso

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// syntheticDesign builds a deterministic n×p indicator design with columns of
// varying density; column 5 is empty for every n.
func syntheticDesign(t testing.TB, n, p int) *CSC {
	t.Helper()
	cols := make([][]int, p)
	for j := range cols {
		for i := 0; i < n; i++ {
			if (i*7+j*3)%(j+2) == 0 {
				cols[j] = append(cols[j], i)
			}
		}
	}
	x, err := NewIndicator(n, cols)
	require.NoError(t, err)
	return x
}

// syntheticTarget returns a bounded pseudo-noise target with three true
// effects on columns 0, 3 and 5.
func syntheticTarget(x *CSC) []float64 {
	n, _ := x.Dims()
	y := make([]float64, n)
	for i := range y {
		y[i] = float64((i*37)%11-5) / 10
	}
	for _, e := range []struct {
		j int
		w float64
	}{{0, 2}, {3, -1.5}, {5, 1}} {
		for _, i := range x.ColumnRows(e.j) {
			y[i] += e.w
		}
	}
	return y
}

// requireResidualInvariant checks resid == y - X·diag(1/scale)·beta - intercept.
func requireResidualInvariant(t *testing.T, x Design, y []float64, st *State, sc Scaling) {
	t.Helper()
	pred := PredictState(x, st, sc)
	for i := range y {
		require.InDelta(t, y[i]-pred[i], st.Resid[i], 1e-12, "residual %d", i)
	}
}

// requirePanicsWith runs fn and requires it to panic with an error wrapping want.
func requirePanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %#v is not an error", r)
		require.True(t, errors.Is(err, want), "got %v, want %v", err, want)
	}()
	fn()
}
