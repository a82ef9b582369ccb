package grid

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeSize indicates a negative row or column count.
	ErrNegativeSize = errors.New("grid: dimensions must be non-negative")
)
