package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/icecross/config"
	"github.com/katalvlaran/icecross/server"
)

// newServeCmd builds "serve": run the HTTP API until it fails.
func newServeCmd(cfg config.Config, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the path counters over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			router := server.NewRouter(server.Config{
				Addr:    cfg.Addr,
				BaseURL: "/api",
				GinMode: cfg.GinMode,
				Controllers: []server.Controller{
					server.NewCrossingController(cfg.MaxExhaustiveSteps, cfg.MaxCells, log),
				},
				Logger: log,
			})
			return router.Run()
		},
	}
}
