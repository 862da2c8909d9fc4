package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// commentPrefix starts a line Parse skips entirely.
const commentPrefix = "#"

// Parse reads a grid in text form: one row per line, '.' for open water and
// 'X' (or 'x') for an iceberg. Surrounding whitespace, blank lines and lines
// starting with '#' are ignored.
//
// Errors:
//   - ErrEmptyGrid if no row was read.
//   - ErrNonRectangular if rows differ in length.
//   - ErrBadCell (wrapped with line and column) for any other character.
//   - I/O errors from r, wrapped.
//
// Complexity: O(R×C).
func Parse(r io.Reader) (*Grid, error) {
	var cells [][]Cell
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		row := make([]Cell, 0, len(text))
		for col, ch := range text {
			switch ch {
			case openSymbol:
				row = append(row, Open)
			case icebergSymbol, 'x':
				row = append(row, Iceberg)
			default:
				return nil, fmt.Errorf("grid: line %d column %d: %q: %w", line, col+1, ch, ErrBadCell)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return New(cells)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// FromRows builds a grid from one string per row, as sent by the HTTP API.
// Each row uses the Parse alphabet; rows are not trimmed or skipped.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(rows))
	for r, text := range rows {
		cells[r] = make([]Cell, 0, len(text))
		for col, ch := range text {
			switch ch {
			case openSymbol:
				cells[r] = append(cells[r], Open)
			case icebergSymbol, 'x':
				cells[r] = append(cells[r], Iceberg)
			default:
				return nil, fmt.Errorf("grid: row %d column %d: %q: %w", r, col, ch, ErrBadCell)
			}
		}
	}

	return New(cells)
}
