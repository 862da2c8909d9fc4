package crossing

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/icecross/grid"
)

const (
	methodDynProg    = "DynProg"
	methodDynProgBig = "DynProgBig"
)

// DynProg counts iceberg-avoiding paths by tabulation.
//
// Algorithm Outline:
//  1. Allocate a table T sized exactly rows×columns (or two rows of
//     columns entries in TwoRows mode).
//  2. Visit cells row-major, so the top and left neighbours of (i,j) are
//     final before (i,j):
//     T[i][j] = 0                           if (i,j) is an iceberg
//     T[0][0] = 1                           otherwise, at the origin
//     T[i][j] = T[i-1][j] + T[i][j-1]       otherwise; missing neighbours add 0
//  3. Return T[rows-1][columns-1].
//
// Every entry carries an overflow flag that propagates through the sums,
// so an overflow in a cell that cannot reach the goal is harmless. Only an
// overflowing goal returns ErrCountOverflow; use DynProgBig there.
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C) (FullTable) or O(C) (TwoRows)
func DynProg(g *grid.Grid, opts ...Option) (uint64, error) {
	if g.Empty() {
		return 0, fmt.Errorf("%s: %w", methodDynProg, ErrEmptyGrid)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := g.Rows(), g.Columns()
	var goal cellCount
	if o.MemoryMode == TwoRows {
		prev, curr := make([]cellCount, cols), make([]cellCount, cols)
		for i := 0; i < rows; i++ {
			above := prev
			if i == 0 {
				above = nil
			}
			fillRow(g, i, above, curr)
			prev, curr = curr, prev
		}
		goal = prev[cols-1]
	} else {
		table := make([][]cellCount, rows)
		for i := range table {
			table[i] = make([]cellCount, cols)
			var above []cellCount
			if i > 0 {
				above = table[i-1]
			}
			fillRow(g, i, above, table[i])
		}
		goal = table[rows-1][cols-1]
	}

	if goal.over {
		return 0, fmt.Errorf("%s: %dx%d grid: %w", methodDynProg, rows, cols, ErrCountOverflow)
	}
	return goal.n, nil
}

// cellCount is a table entry: the count modulo 2^64 and whether the true
// count reached 2^64.
type cellCount struct {
	n    uint64
	over bool
}

// plus returns a+b, flagging overflow.
func (a cellCount) plus(b cellCount) cellCount {
	sum, carry := bits.Add64(a.n, b.n, 0)
	return cellCount{n: sum, over: a.over || b.over || carry != 0}
}

// fillRow computes row i of the table into row, reading the finished row
// above (nil for row 0).
func fillRow(g *grid.Grid, i int, above, row []cellCount) {
	for j := range row {
		if g.Get(i, j) == grid.Iceberg {
			row[j] = cellCount{}
			continue
		}
		if i == 0 && j == 0 {
			row[j] = cellCount{n: 1}
			continue
		}
		var fromAbove, fromLeft cellCount
		if above != nil {
			fromAbove = above[j]
		}
		if j > 0 {
			fromLeft = row[j-1]
		}
		row[j] = fromAbove.plus(fromLeft)
	}
}

// DynProgBig is DynProg with arbitrary-precision counts. It always uses
// two rolling rows.
// Complexity: O(R·C) big-integer additions, O(C) integers of memory.
func DynProgBig(g *grid.Grid) (*big.Int, error) {
	if g.Empty() {
		return nil, fmt.Errorf("%s: %w", methodDynProgBig, ErrEmptyGrid)
	}
	rows, cols := g.Rows(), g.Columns()
	prev, curr := newBigRow(cols), newBigRow(cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch {
			case g.Get(i, j) == grid.Iceberg:
				curr[j].SetUint64(0)
			case i == 0 && j == 0:
				curr[j].SetUint64(1)
			case i == 0:
				curr[j].Set(curr[j-1])
			case j == 0:
				curr[j].Set(prev[j])
			default:
				curr[j].Add(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return new(big.Int).Set(prev[cols-1]), nil
}

// newBigRow allocates n zero-valued big integers.
func newBigRow(n int) []*big.Int {
	row := make([]*big.Int, n)
	for j := range row {
		row[j] = new(big.Int)
	}
	return row
}
