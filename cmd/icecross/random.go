package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icecross/grid"
)

// newRandomCmd builds "random": print a seeded random grid.
func newRandomCmd() *cobra.Command {
	var (
		rows, cols int
		density    float64
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random grid in text form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := randomGrid(rows, cols, density, seed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g)
			return err
		},
	}
	addGridFlags(cmd, &rows, &cols, &density, &seed)
	return cmd
}

// addGridFlags registers the shared random-grid flags.
func addGridFlags(cmd *cobra.Command, rows, cols *int, density *float64, seed *int64) {
	cmd.Flags().IntVar(rows, "rows", 8, "number of rows")
	cmd.Flags().IntVar(cols, "cols", 8, "number of columns")
	cmd.Flags().Float64Var(density, "density", grid.DefaultDensity, "iceberg probability in [0,1]")
	cmd.Flags().Int64Var(seed, "seed", 1, "random seed")
}

// randomGrid validates density before building, since WithDensity panics.
func randomGrid(rows, cols int, density float64, seed int64) (*grid.Grid, error) {
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("density %v outside [0,1]", density)
	}
	return grid.Random(rows, cols, grid.WithSeed(seed), grid.WithDensity(density))
}
