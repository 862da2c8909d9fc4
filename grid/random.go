// SPDX-License-Identifier: MIT
// Package: icecross/grid
//
// random.go — reproducible random boards.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • Each cell is an iceberg with probability density, drawn in row-major
//     order from the configured RNG.
//   • Start (0,0) and goal (rows-1, cols-1) are always open.
//   • Option constructors validate and PANIC on meaningless inputs; Random
//     itself only returns sentinel errors.

package grid

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultDensity is the iceberg probability used when WithDensity is absent.
const DefaultDensity = 0.25

// randomConfig collects the effect of Options applied to Random.
type randomConfig struct {
	rng     *rand.Rand
	density float64
}

// Option customizes Random.
type Option func(*randomConfig)

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithDensity sets the probability that a cell is an iceberg.
// Panics unless 0 ≤ p ≤ 1.
func WithDensity(p float64) Option {
	if p < 0 || p > 1 || math.IsNaN(p) {
		panic(fmt.Sprintf("grid: WithDensity(%v) outside [0,1]", p))
	}
	return func(c *randomConfig) {
		c.density = p
	}
}

// Random builds a rows×cols grid with icebergs scattered at random.
// Without WithSeed or WithRand the RNG is seeded with 1, so output is
// reproducible by default.
// Complexity: O(R×C).
func Random(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid: Random(%d,%d): %w", rows, cols, ErrTooSmall)
	}
	cfg := randomConfig{density: DefaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	g := &Grid{rows: rows, columns: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		if cfg.rng.Float64() < cfg.density {
			g.cells[i] = Iceberg
		}
	}
	g.cells[0] = Open
	g.cells[len(g.cells)-1] = Open

	return g, nil
}
