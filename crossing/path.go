package crossing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/icecross/grid"
)

// Path is a partial monotone route starting at (0,0).
// It is a value: TryStep and AddStep return a new Path and never modify the
// receiver, so a Path may be shared or kept as a checkpoint freely.
//
// Invariant: (row, col) is inside the grid on an open cell, and every
// recorded step was validated before it was applied.
type Path struct {
	g        *grid.Grid
	row, col int
	steps    []Direction
}

// NewPath returns an empty Path at (0,0) on g.
// The start cell itself is not checked; counters test it before walking.
func NewPath(g *grid.Grid) Path {
	return Path{g: g}
}

// Row returns the current row.
func (p Path) Row() int { return p.row }

// Col returns the current column.
func (p Path) Col() int { return p.col }

// Len returns the number of steps taken.
func (p Path) Len() int { return len(p.steps) }

// Steps returns a copy of the moves taken so far.
func (p Path) Steps() []Direction {
	out := make([]Direction, len(p.steps))
	copy(out, p.steps)
	return out
}

// AtGoal reports whether the path ends on the bottom-right cell.
func (p Path) AtGoal() bool {
	return p.row == p.g.Rows()-1 && p.col == p.g.Columns()-1
}

// IsStepValid reports whether moving one cell in d stays inside the grid
// and lands on open water.
// Complexity: O(1).
func (p Path) IsStepValid(d Direction) bool {
	r, c, ok := p.next(d)
	return ok && p.g.Get(r, c) == grid.Open
}

// TryStep returns the path extended by d, or false if the step is invalid.
func (p Path) TryStep(d Direction) (Path, bool) {
	q := p
	// Full slice expression forces append to copy, so siblings never alias.
	q.steps = p.steps[:len(p.steps):len(p.steps)]
	if !q.advance(d) {
		return p, false
	}
	return q, true
}

// advance moves p one cell in d in place, appending to p.steps without
// copying when capacity allows. It reports false and leaves p unchanged if
// the step is invalid.
func (p *Path) advance(d Direction) bool {
	r, c, ok := p.next(d)
	if !ok || p.g.Get(r, c) != grid.Open {
		return false
	}
	p.row, p.col = r, c
	p.steps = append(p.steps, d)
	return true
}

// AddStep returns the path extended by d.
// It panics unless IsStepValid(d) holds.
func (p Path) AddStep(d Direction) Path {
	q, ok := p.TryStep(d)
	if !ok {
		panic(fmt.Sprintf("crossing: AddStep(%s) invalid from (%d,%d)", d, p.row, p.col))
	}
	return q
}

// String renders the moves, e.g. "right,down,down".
func (p Path) String() string {
	parts := make([]string, len(p.steps))
	for i, d := range p.steps {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}

// next returns the coordinate one step in d and whether it lies in bounds.
func (p Path) next(d Direction) (row, col int, ok bool) {
	row, col = p.row, p.col
	switch d {
	case Right:
		col++
	case Down:
		row++
	default:
		return 0, 0, false
	}
	return row, col, p.g.InBounds(row, col)
}
