package lasso

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Design is read-only column access to a sparse design matrix.
//
// ColumnRows returns the strictly ascending row indices of the stored
// entries of column j. The descent kernel treats each stored entry as an
// indicator value of 1, so only the row pattern is consulted. Callers must
// not modify the returned slice.
type Design interface {
	Dims() (r, c int)
	ColumnRows(j int) []int
}

// CSC is a column-compressed sparse matrix.
//
// Column j owns rowIdx[colPtr[j]:colPtr[j+1]]. Every stored entry equals 1,
// matching what the descent kernel assumes, so only the pattern is kept.
// CSC satisfies both Design and gonum's mat.Matrix; it is immutable once built.
type CSC struct {
	rows, cols int
	colPtr     []int
	rowIdx     []int
}

var (
	_ Design     = (*CSC)(nil)
	_ mat.Matrix = (*CSC)(nil)
)

// NewCSC builds a CSC matrix from raw compressed-column arrays.
// The index slices are copied. values may be nil; otherwise every value must
// be 1 and anything else fails with ErrNotIndicator (or ErrNaNInf).
func NewCSC(rows, cols int, colPtr, rowIdx []int, values []float64) (*CSC, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSC %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(colPtr) != cols+1 || colPtr[0] != 0 || colPtr[cols] != len(rowIdx) {
		return nil, fmt.Errorf("NewCSC: column pointers: %w", ErrBadShape)
	}
	if values != nil && len(values) != len(rowIdx) {
		return nil, fmt.Errorf("NewCSC: %d values for %d rows: %w", len(values), len(rowIdx), ErrDimensionMismatch)
	}
	for j := 0; j < cols; j++ {
		lo, hi := colPtr[j], colPtr[j+1]
		if lo > hi || hi > len(rowIdx) {
			return nil, fmt.Errorf("NewCSC: column %d pointers [%d,%d): %w", j, lo, hi, ErrBadShape)
		}
		for k := lo; k < hi; k++ {
			if rowIdx[k] < 0 || rowIdx[k] >= rows {
				return nil, fmt.Errorf("NewCSC: column %d row %d: %w", j, rowIdx[k], ErrOutOfRange)
			}
			if k > lo && rowIdx[k] <= rowIdx[k-1] {
				return nil, fmt.Errorf("NewCSC: column %d: %w", j, ErrUnsortedRows)
			}
			if values != nil && (math.IsNaN(values[k]) || math.IsInf(values[k], 0)) {
				return nil, fmt.Errorf("NewCSC: column %d row %d: %w", j, rowIdx[k], ErrNaNInf)
			}
			if values != nil && values[k] != 1 {
				return nil, fmt.Errorf("NewCSC: column %d row %d value %v: %w", j, rowIdx[k], values[k], ErrNotIndicator)
			}
		}
	}

	return &CSC{
		rows:   rows,
		cols:   cols,
		colPtr: append([]int(nil), colPtr...),
		rowIdx: append([]int(nil), rowIdx...),
	}, nil
}

// NewIndicator builds an indicator matrix with the given number of rows.
// columns[j] lists the rows where column j equals 1, in any order.
func NewIndicator(rows int, columns [][]int) (*CSC, error) {
	colPtr := make([]int, len(columns)+1)
	rowIdx := make([]int, 0)
	for j, col := range columns {
		sorted := append([]int(nil), col...)
		sort.Ints(sorted)
		rowIdx = append(rowIdx, sorted...)
		colPtr[j+1] = len(rowIdx)
	}
	m, err := NewCSC(rows, len(columns), colPtr, rowIdx, nil)
	if err != nil {
		return nil, fmt.Errorf("NewIndicator: %w", err)
	}
	return m, nil
}

// NewCSCFromMatrix compresses a 0/1 gonum matrix. A nonzero entry other than
// 1 fails with ErrNotIndicator.
func NewCSCFromMatrix(a mat.Matrix) (*CSC, error) {
	rows, cols := a.Dims()
	colPtr := make([]int, cols+1)
	var rowIdx []int
	var values []float64
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			rowIdx = append(rowIdx, i)
			values = append(values, v)
		}
		colPtr[j+1] = len(rowIdx)
	}
	return NewCSC(rows, cols, colPtr, rowIdx, values)
}

// Dims returns the number of rows (observations) and columns (features).
func (m *CSC) Dims() (r, c int) { return m.rows, m.cols }

// ColumnRows returns the row indices of the stored entries of column j.
func (m *CSC) ColumnRows(j int) []int {
	m.checkColumn(j)
	return m.rowIdx[m.colPtr[j]:m.colPtr[j+1]]
}

// Column returns the rows and values of column j. The values are all 1.
func (m *CSC) Column(j int) (rows []int, values []float64) {
	rows = m.ColumnRows(j)
	values = make([]float64, len(rows))
	for k := range values {
		values[k] = 1
	}
	return rows, values
}

// ColumnNNZ returns the number of stored entries in column j.
func (m *CSC) ColumnNNZ(j int) int {
	m.checkColumn(j)
	return m.colPtr[j+1] - m.colPtr[j]
}

// NNZ returns the total number of stored entries.
func (m *CSC) NNZ() int { return len(m.rowIdx) }

// At returns the element at row i, column j.
func (m *CSC) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], i)
	if k == hi || m.rowIdx[k] != i {
		return 0
	}
	return 1
}

// T returns the implicit transpose.
func (m *CSC) T() mat.Matrix { return mat.Transpose{Matrix: m} }

func (m *CSC) checkColumn(j int) { checkColumn(m, j) }

// checkDims panics unless the design has n rows and p columns for the given
// vector lengths. A negative length skips that side of the check.
func checkDims(x Design, n, p int) {
	rows, cols := x.Dims()
	if n >= 0 && rows != n {
		panic(fmt.Errorf("design has %d rows, vector has %d: %w", rows, n, ErrDimensionMismatch))
	}
	if p >= 0 && cols != p {
		panic(fmt.Errorf("design has %d columns, vector has %d: %w", cols, p, ErrDimensionMismatch))
	}
}

func checkColumn(x Design, j int) {
	if _, cols := x.Dims(); j < 0 || j >= cols {
		panic(fmt.Errorf("column %d outside [0,%d): %w", j, cols, ErrOutOfRange))
	}
}
