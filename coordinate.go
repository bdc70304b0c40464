package lasso

// Update reports a coordinate change committed by UpdateCoordinate.
// The sums cover only the residual entries touched by the change, i.e. the
// stored rows of the updated column.
type Update struct {
	RSS      float64 // sum of squared residuals over the touched rows, after the update
	RSum     float64 // sum of residuals over the touched rows, after the update
	DeltaRSS float64 // change of the total residual sum of squares caused by the update
}

// CrossProduct returns X[:,j]ᵗr / scale for an indicator column, summing the
// residuals at the stored rows of column j. center is accepted for a
// centering correction that is not applied.
func CrossProduct(x Design, resid []float64, j int, scale, center float64) float64 {
	checkDims(x, len(resid), -1)
	checkColumn(x, j)
	return crossProduct(x.ColumnRows(j), resid, scale)
}

func crossProduct(rows []int, resid []float64, scale float64) float64 {
	sum := 0.0
	for _, i := range rows {
		sum += resid[i]
	}
	return sum / scale
}

// NewBeta returns the unpenalized coordinate proposal for column j:
// CrossProduct / n + betaJ.
func NewBeta(x Design, resid []float64, j int, betaJ, scale, center float64) float64 {
	cp := CrossProduct(x, resid, j, scale, center)
	return cp/float64(len(resid)) + betaJ
}

// UpdateCoordinate proposes a soft-thresholded value for beta[j] and commits
// it when it differs from the current value by at least EqualTolerance.
//
// On commit the residuals at the stored rows of column j are reduced by
// (new-old)/scale, beta[j] is overwritten and ok is true. When the proposal is
// equal to the current value nothing is mutated and ok is false.
func UpdateCoordinate(x Design, resid, beta []float64, lambda float64, j int, scale, center float64) (u Update, ok bool) {
	checkDims(x, len(resid), len(beta))
	checkColumn(x, j)
	return updateCoordinate(x.ColumnRows(j), resid, beta, lambda, j, scale)
}

func updateCoordinate(rows []int, resid, beta []float64, lambda float64, j int, scale float64) (Update, bool) {
	betaJ := beta[j]
	candidate := crossProduct(rows, resid, scale)/float64(len(resid)) + betaJ
	candidate = SoftThreshold(candidate, lambda)
	if EqualDouble(candidate, betaJ) {
		return Update{}, false
	}

	var u Update
	scaledDiff := (candidate - betaJ) / scale
	for _, i := range rows {
		old := resid[i]
		r := old - scaledDiff
		resid[i] = r
		u.RSS += r * r
		u.RSum += r
		u.DeltaRSS += r*r - old*old
	}
	beta[j] = candidate
	return u, true
}
