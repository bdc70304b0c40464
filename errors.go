package lasso

import "errors"

// Sentinel errors returned by constructors and Config.Validate.
// Kernel functions (Fit, Sweep, CrossProduct, ...) panic instead, with an
// error value wrapping one of these: a mismatched dimension there is a
// caller bug, not a runtime condition.
var (
	// ErrBadShape is returned when a matrix is requested with negative
	// dimensions or a malformed column pointer array.
	ErrBadShape = errors.New("lasso: invalid shape")

	// ErrDimensionMismatch indicates that vectors and the design matrix disagree
	// on n or p.
	ErrDimensionMismatch = errors.New("lasso: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("lasso: index out of range")

	// ErrUnsortedRows indicates row indices of a column that are not strictly ascending.
	ErrUnsortedRows = errors.New("lasso: column row indices not strictly ascending")

	// ErrNotIndicator is returned when a stored entry is not 1. The kernel reads
	// only the sparsity pattern, so any other value would be silently ignored.
	ErrNotIndicator = errors.New("lasso: stored entry is not an indicator 1")

	// ErrNaNInf signals a NaN or ±Inf value where finite input is required.
	ErrNaNInf = errors.New("lasso: NaN or Inf encountered")

	// ErrBadLambda is returned for a negative or non-finite regularization constant.
	ErrBadLambda = errors.New("lasso: lambda must be finite and non-negative")

	// ErrBadRSSMode is returned for an unknown RSSMode.
	ErrBadRSSMode = errors.New("lasso: unknown rss mode")

	// ErrBadScale indicates a column scale that is not finite and positive,
	// e.g. the zero scale NewScaling yields for a single-row design.
	ErrBadScale = errors.New("lasso: column scale must be finite and positive")

	// ErrNilArgument indicates a nil design, state or config.
	ErrNilArgument = errors.New("lasso: nil argument")

	// ErrBadBudget is returned for a negative sweep budget.
	ErrBadBudget = errors.New("lasso: max sweeps must be non-negative")
)
