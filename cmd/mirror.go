package cmd

import (
	"strings"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/internal/source"
	"github.com/huangsam/treehealth/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mirrorSetup loads minimal configuration needed for mirror schema operations.
// It does not fetch the census, so migrations can run on a fresh database.
func mirrorSetup(_ *cobra.Command, _ []string) error {
	setConfigFile()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	backend := schema.SourceBackend(strings.ToLower(viper.GetString("source")))
	if !backend.IsDatabase() {
		// The mirror defaults to the local SQLite file
		backend = schema.SQLiteSource
	}
	connStr := viper.GetString("source-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.Source = backend
	cfg.SourceDBConnect = connStr
	cfg.TargetVersion = viper.GetInt("target-version")
	return nil
}

// mirrorCmd manages the SQL mirror of the census.
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Manage the SQL mirror of the street tree census",
	Long: `Manage a SQL mirror of the raw census rows, read by the sqlite, mysql
and postgresql sources.

The mirror table has the census columns tree_id, spc_common, borocode, health
and steward. Load it with any tool you like, then point --source at it.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  migrate - Run database schema migrations`,
}

// mirrorMigrateCmd runs the mirror schema migrations.
var mirrorMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run mirror schema migrations (upgrades/downgrades)",
	Long: `Create or update the mirror table schema.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Create the SQLite mirror in ~/.treehealth_mirror.db
  treehealth mirror migrate

  # Create the mirror in PostgreSQL
  treehealth mirror migrate --source postgresql --source-db-connect "host=localhost dbname=trees"

  # Drop the mirror table
  treehealth mirror migrate --target-version 0`,
	PreRunE: mirrorSetup,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := source.MigrateMirror(cfg.Source, cfg.SourceDBConnect, cfg.TargetVersion)
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		if !result.Changed {
			contract.LogInfo("✅ Mirror schema already at version %d", result.To)
			return
		}
		contract.LogInfo("✅ Migrated mirror schema from version %d to %d", result.From, result.To)
	},
}
