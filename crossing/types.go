// Package crossing defines move directions and DynProg options.
package crossing

// MaxExhaustiveSteps is the longest path Exhaustive accepts: candidates are
// enumerated as a uint64 counter, so 2^steps - 1 must fit.
const MaxExhaustiveSteps = 63

// Direction is a single move of a monotone path.
type Direction uint8

const (
	// Down moves one row towards the bottom edge.
	Down Direction = iota
	// Right moves one column towards the right edge.
	Right
)

// String returns "down" or "right".
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// MemoryMode controls how DynProg stores its table.
//
//   - FullTable — keep all rows×columns entries. Memory: O(R·C).
//   - TwoRows   — keep only the previous and current row. Memory: O(C).
//
// Both modes produce identical counts.
type MemoryMode int

const (
	// FullTable stores the entire table.
	FullTable MemoryMode = iota
	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// String returns the mode name used by the CLI flag.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps "full" or "tworows" to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, bool) {
	switch s {
	case "full", "":
		return FullTable, true
	case "tworows":
		return TwoRows, true
	default:
		return 0, false
	}
}

// Options configures DynProg.
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns Options with MemoryMode=FullTable.
func DefaultOptions() Options {
	return Options{MemoryMode: FullTable}
}

// Option mutates Options before DynProg runs.
type Option func(*Options)

// WithMemoryMode selects the table layout. Panics on an unknown mode.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullTable && m != TwoRows {
		panic("crossing: WithMemoryMode: unknown mode")
	}
	return func(o *Options) {
		o.MemoryMode = m
	}
}
