// Package lasso implements LASSO (L1-regularized least squares) regression by
// cyclic coordinate descent over a sparse design of indicator columns.
//
// The package is a numeric kernel. A caller prepares the design (CSC or any
// Design), the scaling vectors (NewScaling) and a State, then calls Fit for
// each regularization constant it wants. Choosing the λ path, cross
// validation and standardization policy are left to the caller; LambdaMax and
// LambdaSequence only help to build a starting grid.
//
// Each coordinate update costs O(nonzeros of the column): residuals are
// updated in place at the stored rows only, and the intercept absorbs the
// mean residual after every sweep.
//
//	x, _ := lasso.NewIndicator(4, [][]int{{0, 1}, {2, 3}})
//	sc := lasso.NewScaling(x)
//	st := lasso.NewState(x, []float64{1, 1, 0, 0})
//	cfg := lasso.NewDefaultConfig()
//	cfg.Lambda = 0.01
//	res := lasso.Fit(x, st, sc, cfg)
//
// A fit is single-threaded and mutates its State; independent fits (for
// example different λ values on cloned states) may run concurrently because
// the design is never written.
package lasso
