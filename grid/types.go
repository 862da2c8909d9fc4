// Package grid defines the cell states and the immutable Grid type.
package grid

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Open is water a path may cross.
	Open Cell = iota
	// Iceberg is an obstacle a path may not enter.
	Iceberg
)

// Text symbols used by Parse and String.
const (
	openSymbol    = '.'
	icebergSymbol = 'X'
)

// String returns the text symbol of c: "." for Open, "X" for Iceberg.
func (c Cell) String() string {
	switch c {
	case Open:
		return string(openSymbol)
	case Iceberg:
		return string(icebergSymbol)
	default:
		return "?"
	}
}

// valid reports whether c is one of the defined states.
func (c Cell) valid() bool {
	return c == Open || c == Iceberg
}

// Grid is a rows×columns board of cells. It is immutable once built:
// every constructor copies its input, and no method mutates the receiver.
// cells is stored row-major; cells[row*columns+col] is cell (row, col).
type Grid struct {
	rows, columns int
	cells         []Cell
}
