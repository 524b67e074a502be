// Package cmd defines the command-line interface for treehealth.
package cmd

import (
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the table subcommands to the parent tables command
	tablesCmd.AddCommand(tablesProportionsCmd)
	tablesCmd.AddCommand(tablesHealthIndexCmd)

	// Add the mirror subcommands to the parent mirror command
	mirrorCmd.AddCommand(mirrorMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source", string(schema.SocrataSource), "Census source: socrata or file or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("source-url", schema.DefaultSourceURL, "Socrata resource URL for the street tree census")
	rootCmd.PersistentFlags().String("source-file", "", "Path to a JSON export of the grouped census query")
	rootCmd.PersistentFlags().String("source-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("source-table", schema.DefaultSourceTable, "Mirror table holding raw census rows")
	rootCmd.PersistentFlags().Int("source-limit", schema.DefaultSourceLimit, "Maximum number of grouped rows to fetch")
	rootCmd.PersistentFlags().String("source-timeout", contract.DefaultSourceTimeout, "Timeout for fetching the census")
	rootCmd.PersistentFlags().String("app-token", "", "Optional Socrata application token")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("default-species", schema.DefaultSpecies, "Species selected when nothing else is chosen")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address for the dashboard to listen on")
	serveCmd.Flags().String("chart-cache-ttl", contract.DefaultChartCacheTTL, "How long rendered charts stay cached (0 disables caching)")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all persistent flags of tablesCmd to Viper
	tablesCmd.PersistentFlags().String("species", "", "Only show rows for this title-cased species")
	if err := viper.BindPFlags(tablesCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding tables flags", err)
	}

	// Bind all flags of mirrorMigrateCmd to Viper
	mirrorMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(mirrorMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding mirror migrate flags", err)
	}
}
