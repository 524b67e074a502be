package cmd

import (
	"context"
	"fmt"

	"github.com/huangsam/treehealth/core"
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/internal/outwriter"
	"github.com/huangsam/treehealth/schema"
	"github.com/spf13/cobra"
)

// fetchSnapshot loads the snapshot under the configured source timeout.
func fetchSnapshot(ctx context.Context) (*core.Snapshot, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, cfg.SourceTimeout)
	defer cancel()
	return loadSnapshot(fetchCtx)
}

// requireSpecies rejects a --species filter that matches nothing.
func requireSpecies(snap *core.Snapshot) error {
	if cfg.Species != "" && !snap.HasSpecies(cfg.Species) {
		return fmt.Errorf("unknown species %q (run 'treehealth species' to list valid names)", cfg.Species)
	}
	return nil
}

// tablesCmd groups the derived table commands.
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the derived street tree tables",
	Long: `Print one of the analytical tables derived from the census.

Subcommands:
  proportions  - share of trees per health category, per borough and species
  health-index - steward-weighted health index, per borough, species and steward

Both tables honour --output (text, csv, json, parquet) and --species.`,
}

// tablesProportionsCmd prints the species proportion table.
var tablesProportionsCmd = &cobra.Command{
	Use:   "proportions",
	Short: "Print the proportion of trees in each health category",
	Long: `Print the share of trees in Good, Fair and Poor health for every
borough and species. Ratios within a borough and species sum to 1.

Examples:
  # Show the table for one species
  treehealth tables proportions --species "American Beech"

  # Export the full table for pandas or DuckDB
  treehealth tables proportions --output parquet --output-file proportions.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snap, err := fetchSnapshot(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load census", err)
		}
		if err := requireSpecies(snap); err != nil {
			contract.LogFatal("Cannot filter table", err)
		}
		rows := snap.Proportions()
		if cfg.Species != "" {
			rows = snap.ProportionsFor(cfg.Species)
		}
		if err := outwriter.NewOutWriter().WriteProportions(rows, snap.Summary(), cfg); err != nil {
			contract.LogFatal("Cannot write proportions", err)
		}
	},
}

// tablesHealthIndexCmd prints the overall health index table.
var tablesHealthIndexCmd = &cobra.Command{
	Use:   "health-index",
	Short: "Print the steward-weighted health index",
	Long: `Print the health index for every borough, species and steward level.
The index is the count-weighted mean of health levels (Poor 1, Fair 2, Good 3).

Labels:
  Thriving  >= 2.75
  Stable    >= 2.25
  Stressed  >= 1.75
  Declining  below 1.75

Examples:
  treehealth tables health-index --species Ginkgo --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snap, err := fetchSnapshot(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load census", err)
		}
		if err := requireSpecies(snap); err != nil {
			contract.LogFatal("Cannot filter table", err)
		}
		rows := snap.HealthIndex()
		if cfg.Species != "" {
			rows = snap.HealthIndexFor(cfg.Species)
		}
		if err := outwriter.NewOutWriter().WriteHealthIndex(rows, snap.Summary(), cfg); err != nil {
			contract.LogFatal("Cannot write health index", err)
		}
	},
}

// speciesCmd lists the species available in the census.
var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the tree species in the census",
	Long: `List every species present after cleaning, sorted by name. The species
the dashboard selects first is marked as the default.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snap, err := fetchSnapshot(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load census", err)
		}
		list := schema.SpeciesList{Species: snap.Species(), Default: snap.DefaultSpecies()}
		if err := outwriter.NewOutWriter().WriteSpecies(list, cfg); err != nil {
			contract.LogFatal("Cannot write species", err)
		}
	},
}

// summaryCmd prints the description of the census fetch.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the census fetch and the derived tables",
	Long: `Show where the census came from, how many rows were fetched, how many
were dropped as incomplete, and how large the derived tables are.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		snap, err := fetchSnapshot(core.WithSuppressHeader(rootCtx))
		if err != nil {
			contract.LogFatal("Cannot load census", err)
		}
		if err := outwriter.NewOutWriter().WriteSummary(snap.Summary(), cfg); err != nil {
			contract.LogFatal("Cannot write summary", err)
		}
	},
}
