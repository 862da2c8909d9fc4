package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an input cell that is neither open nor an iceberg.
	ErrBadCell = errors.New("grid: unknown cell value")
	// ErrTooSmall indicates a requested dimension below 1.
	ErrTooSmall = errors.New("grid: rows and cols must be at least 1")
)
