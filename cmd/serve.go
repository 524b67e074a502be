package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/internal/dashboard"
	"github.com/huangsam/treehealth/internal/observability"
	"github.com/spf13/cobra"
)

// serveCmd loads the census once and serves the interactive dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the street tree health dashboard.",
	Long: `Fetch the street tree census once and serve an interactive dashboard.

The dashboard has a single species dropdown that drives two charts:
- Question 1: proportion of trees in Good, Fair and Poor health per borough
- Question 2: steward-weighted health index per borough and steward level

JSON endpoints are exposed under /api, Prometheus metrics on /metrics and a
liveness probe on /healthz. The server shuts down gracefully on SIGINT/SIGTERM.

Examples:
  # Serve from the live Socrata API
  treehealth serve

  # Serve from a local export on a different port
  treehealth serve --source file --source-file trees.json --addr :9000`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := runServe(ctx); err != nil {
			contract.LogFatal("Cannot serve dashboard", err)
		}
	},
}

// runServe builds the snapshot and runs the dashboard until ctx is done.
func runServe(ctx context.Context) error {
	snap, err := fetchSnapshot(ctx)
	if err != nil {
		return err
	}

	server, err := dashboard.NewServer(snap, dashboard.Options{
		ChartCacheTTL: cfg.ChartCacheTTL,
		Metrics:       observability.NewMetrics(),
	})
	if err != nil {
		return err
	}
	return server.Run(ctx, cfg.Addr)
}
