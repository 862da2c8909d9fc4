// Command icecross counts iceberg-avoiding paths across a grid.
//
//	icecross count harbour.txt --algorithm both
//	icecross random --rows 8 --cols 8 --density 0.3 --seed 7 | icecross count
//	icecross bench --rows 9 --cols 9
//	icecross serve
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/icecross/config"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	log.SetLevel(cfg.LogLevel)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
func newRootCmd(cfg config.Config, log *logrus.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "icecross",
		Short:        "Count monotone paths across an iceberg field",
		SilenceUsage: true,
	}
	root.AddCommand(
		newCountCmd(),
		newRandomCmd(),
		newBenchCmd(cfg),
		newServeCmd(cfg, log),
	)
	return root
}
