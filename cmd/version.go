package cmd

import (
	"runtime"

	"github.com/huangsam/treehealth/schema"
	"github.com/spf13/cobra"
)

// versionCmd prints build details and the census dataset the tool reads.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the treehealth version and census dataset.",
	Long: `Display build information and the NYC Open Data dataset the
snapshot is derived from. Include this output when reporting a
discrepancy between the dashboard and the published census.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("treehealth %s (commit %s, built %s, %s)\n", version, commit, date, runtime.Version())
		cmd.Printf("  Dataset: %s (%s)\n", schema.CensusDatasetName, schema.CensusDatasetID)
		cmd.Printf("  Default endpoint: %s\n", schema.DefaultSourceURL)
	},
}
