package crossing

import (
	"fmt"

	"github.com/katalvlaran/icecross/grid"
)

const methodExhaustive = "Exhaustive"

// Exhaustive counts iceberg-avoiding paths by brute force.
//
// Algorithm:
//  1. steps = rows + columns - 2; require steps ≤ MaxExhaustiveSteps.
//  2. For every candidate bits in [0, 2^steps):
//     start a fresh Path at (0,0); for k = 0..steps-1 read bit k
//     (least-significant first), 1 → Right, 0 → Down, and take the step.
//     The first invalid step rejects the candidate; its remaining bits are
//     not inspected.
//  3. Count the candidates that took all steps.
//
// A candidate that survives all steps is at the goal: it stayed in bounds,
// so it used at most rows-1 Down and columns-1 Right moves, and it made
// exactly steps = (rows-1)+(columns-1) of them. Each monotone path matches
// exactly one bit pattern, so the count is exact.
//
// A blocked start cell yields 0.
//
// Complexity: O(2^steps · steps) time, O(steps) memory per candidate.
// Intended for small grids only.
func Exhaustive(g *grid.Grid) (uint64, error) {
	if g.Empty() {
		return 0, fmt.Errorf("%s: %w", methodExhaustive, ErrEmptyGrid)
	}
	steps := g.Steps()
	if steps > MaxExhaustiveSteps {
		return 0, fmt.Errorf("%s: %dx%d grid needs %d steps (max %d): %w",
			methodExhaustive, g.Rows(), g.Columns(), steps, MaxExhaustiveSteps, ErrTooManySteps)
	}
	if g.Get(0, 0) != grid.Open {
		return 0, nil
	}

	var count uint64
	last := uint64(1)<<uint(steps) - 1
	for bits := uint64(0); ; bits++ {
		if walk(g, bits, steps) {
			count++
		}
		if bits == last {
			break
		}
	}

	return count, nil
}

// walk decodes bits into steps moves and reports whether all were valid.
// The path is built in one buffer sized for the full route, so a candidate
// costs O(steps) and a single allocation.
func walk(g *grid.Grid, bits uint64, steps int) bool {
	p := Path{g: g, steps: make([]Direction, 0, steps)}
	for k := 0; k < steps; k++ {
		d := Down
		if (bits>>uint(k))&1 == 1 {
			d = Right
		}
		if !p.advance(d) {
			return false
		}
	}
	return true
}
