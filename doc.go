// Package icecross counts the ways a ship can cross an iceberg field.
//
// 🚀 What is icecross?
//
//	A small, dependency-light library (plus CLI and HTTP API) that answers one
//	question: on a grid of open water and icebergs, how many routes lead from
//	the top-left cell to the bottom-right cell moving only right or down?
//
// ✨ Two algorithms, one answer:
//   - crossing.Exhaustive — brute force over every RIGHT/DOWN bit pattern;
//     exponential, for small grids and cross-checking.
//   - crossing.DynProg — tabulation over the grid; linear in its area,
//     with FullTable or TwoRows memory and overflow detection.
//
// Under the hood:
//
//	grid/      — immutable Grid, text Parse/String, seeded Random boards
//	crossing/  — Path cursor, Exhaustive, DynProg, DynProgBig, CrossCheck
//	config/    — environment + .env settings
//	server/    — gin HTTP API (POST /api/v1/crossings)
//	cmd/icecross — count, random, bench and serve commands
//
// Quick ASCII example:
//
//	. . X
//	. . .
//	X . .
//
// has 4 crossings.
//
//	go get github.com/katalvlaran/icecross
package icecross
