package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icecross/config"
	"github.com/katalvlaran/icecross/crossing"
)

// newBenchCmd builds "bench": time both counters on one random grid.
// The exhaustive run is skipped above cfg.MaxExhaustiveSteps.
func newBenchCmd(cfg config.Config) *cobra.Command {
	var (
		rows, cols int
		density    float64
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the exhaustive and dynamic-programming counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := randomGrid(rows, cols, density, seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grid %dx%d, steps=%d, icebergs=%d\n", g.Rows(), g.Columns(), g.Steps(), g.Icebergs())

			start := time.Now()
			n, err := crossing.DynProg(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "dynprog     %d in %s\n", n, time.Since(start))

			if g.Steps() > cfg.MaxExhaustiveSteps {
				fmt.Fprintf(out, "exhaustive  skipped (%d steps > %d)\n", g.Steps(), cfg.MaxExhaustiveSteps)
				return nil
			}
			start = time.Now()
			n, err = crossing.Exhaustive(g)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "exhaustive  %d in %s\n", n, time.Since(start))
			return nil
		},
	}
	addGridFlags(cmd, &rows, &cols, &density, &seed)
	return cmd
}
