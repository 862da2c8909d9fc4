package crossing

import "errors"

// Sentinel errors for counting operations.
var (
	// ErrEmptyGrid indicates a nil grid or one with no rows or columns.
	ErrEmptyGrid = errors.New("crossing: grid must have at least one row and one column")

	// ErrTooManySteps indicates the exhaustive search space does not fit a 64-bit counter.
	ErrTooManySteps = errors.New("crossing: too many steps for exhaustive search")

	// ErrCountOverflow indicates the path count exceeds math.MaxUint64.
	ErrCountOverflow = errors.New("crossing: path count overflows uint64")

	// ErrMismatch indicates the two counters disagreed.
	ErrMismatch = errors.New("crossing: exhaustive and dynamic-programming counts differ")
)
