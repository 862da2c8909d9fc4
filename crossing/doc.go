// Package crossing counts the monotone paths across an iceberg field.
//
// 🚀 What is the iceberg-avoiding problem?
//
//	A ship starts at the top-left cell (0,0) of a grid and must reach the
//	bottom-right cell moving only RIGHT or DOWN, never entering an iceberg.
//	Every such route takes exactly rows+columns-2 steps. The question is how
//	many distinct routes exist.
//
// ✨ Algorithms:
//   - Exhaustive: enumerate all 2^steps RIGHT/DOWN sequences as bit patterns
//     and walk each with a Path, counting the ones that stay on open water.
//     O(2^steps · steps) time; limited to steps ≤ MaxExhaustiveSteps.
//   - DynProg: tabulate paths-into-cell = paths-from-above + paths-from-left,
//     zero at icebergs. O(R·C) time; O(R·C) or O(C) memory (MemoryMode).
//   - DynProgBig: same recurrence over math/big for counts past 2^64.
//   - CrossCheck: run Exhaustive and DynProg concurrently and compare.
//
// ⚙️ Usage:
//
//	g, _ := grid.ParseString("..X\n...\n...\n")
//	n, err := crossing.DynProg(g)
//
// Errors:
//   - ErrEmptyGrid     — nil or zero-dimension grid.
//   - ErrTooManySteps  — Exhaustive on a grid with steps > MaxExhaustiveSteps.
//   - ErrCountOverflow — DynProg result does not fit in uint64.
//   - ErrMismatch      — CrossCheck found differing counts.
//
// All functions are pure: they read the grid and allocate their own working
// state per call, so concurrent use on one grid is safe.
package crossing
