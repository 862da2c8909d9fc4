package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/icecross/crossing"
	"github.com/katalvlaran/icecross/grid"
)

// newCountCmd builds "count [file]": read a grid and print its path count.
func newCountCmd() *cobra.Command {
	var algorithm, memory string
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count paths across a grid read from file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			g, err := grid.Parse(in)
			if err != nil {
				return err
			}
			mode, ok := crossing.ParseMemoryMode(memory)
			if !ok {
				return fmt.Errorf("unknown memory mode %q (full, tworows)", memory)
			}
			return runCount(cmd, g, algorithm, mode)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "dynprog", "dynprog, exhaustive, both or big")
	cmd.Flags().StringVar(&memory, "memory", "full", "dynprog table layout: full or tworows")
	return cmd
}

// runCount runs the chosen algorithm and prints the result.
func runCount(cmd *cobra.Command, g *grid.Grid, algorithm string, mode crossing.MemoryMode) error {
	out := cmd.OutOrStdout()
	switch algorithm {
	case "dynprog":
		n, err := crossing.DynProg(g, crossing.WithMemoryMode(mode))
		if err != nil {
			return err
		}
		return printCount(out, n)
	case "exhaustive":
		n, err := crossing.Exhaustive(g)
		if err != nil {
			return err
		}
		return printCount(out, n)
	case "both":
		n, err := crossing.CrossCheck(cmd.Context(), g)
		if err != nil {
			return err
		}
		return printCount(out, n)
	case "big":
		n, err := crossing.DynProgBig(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, n)
		return err
	default:
		return fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

func printCount(w io.Writer, n uint64) error {
	_, err := fmt.Fprintln(w, n)
	return err
}
