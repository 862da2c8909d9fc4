package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells,
// indexed cells[row][col]. It deep-copies the input.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadCell for a value
// other than Open or Iceberg.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	g := &Grid{rows: rows, columns: cols, cells: make([]Cell, 0, rows*cols)}
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
		for c, v := range row {
			if !v.valid() {
				return nil, fmt.Errorf("grid: cell (%d,%d)=%d: %w", r, c, v, ErrBadCell)
			}
		}
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// From2D constructs a Grid from integer values: 0 is Open, any other value
// is an Iceberg. Shape errors match New.
// Complexity: O(R×C).
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(values))
	for r, row := range values {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			if v != 0 {
				cells[r][c] = Iceberg
			}
		}
	}

	return New(cells)
}

// Rows returns the number of rows (always ≥ 1 for a constructed grid).
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns (always ≥ 1 for a constructed grid).
func (g *Grid) Columns() int { return g.columns }

// Empty reports whether g is nil or has a zero dimension, as the zero
// value of Grid does.
func (g *Grid) Empty() bool {
	return g == nil || g.rows < 1 || g.columns < 1
}

// Steps returns the length of every monotone path from (0,0) to the goal:
// rows + columns - 2.
func (g *Grid) Steps() int {
	return g.rows + g.columns - 2
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Get returns the state of cell (row, col).
// It panics if the coordinate is out of range.
// Complexity: O(1).
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: Get(%d,%d) outside %dx%d grid", row, col, g.rows, g.columns))
	}
	return g.cells[g.index(row, col)]
}

// Icebergs returns how many cells are icebergs.
func (g *Grid) Icebergs() int {
	n := 0
	for _, c := range g.cells {
		if c == Iceberg {
			n++
		}
	}
	return n
}

// WithCell returns a copy of g with cell (row, col) set to v.
// g itself is left untouched. It panics on an out-of-range coordinate or an
// undefined cell state, like Get.
// Complexity: O(R×C).
func (g *Grid) WithCell(row, col int, v Cell) *Grid {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: WithCell(%d,%d) outside %dx%d grid", row, col, g.rows, g.columns))
	}
	if !v.valid() {
		panic(fmt.Sprintf("grid: WithCell undefined cell state %d", v))
	}
	cp := &Grid{rows: g.rows, columns: g.columns, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	cp.cells[cp.index(row, col)] = v

	return cp
}

// Cells returns a deep copy of the board as cells[row][col].
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.columns)
		copy(out[r], g.cells[g.index(r, 0):g.index(r, 0)+g.columns])
	}
	return out
}

// String renders g in the Parse text format, one row per line with a
// trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			sb.WriteString(g.cells[g.index(r, c)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (row, col) to a row-major index: row*columns + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.columns + col
}
