// Package grid models the board of the iceberg-avoiding problem: a
// rectangular, immutable 2D grid whose cells are either open water or
// icebergs.
//
// What:
//
//   - Grid wraps a rows×columns board of Cell values (Open or Iceberg).
//   - Constructors deep-copy their input; a built Grid is never mutated.
//   - Parse/String read and write a plain-text format ('.' open, 'X' iceberg).
//   - Random generates reproducible boards for benchmarks and property tests.
//
// Why:
//
//   - Counting algorithms (see package crossing) only need a read-only view
//     queried by (row, col). Sharing one Grid across goroutines is safe.
//
// Complexity:
//
//   - New, From2D, Parse, Random, WithCell: O(R×C) time and memory.
//   - Get, InBounds, Rows, Columns, Steps: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: an input cell is neither open nor an iceberg.
//   - ErrTooSmall: Random called with rows or cols < 1.
//
// Get panics on an out-of-range coordinate. Such an access is a defect in the
// caller, not an input error; use InBounds to test coordinates first.
package grid
