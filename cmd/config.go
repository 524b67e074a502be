package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// secretKeys are masked when the configuration is printed.
var secretKeys = []string{"source-db-connect", "app-token"}

// effectiveSettings returns every resolved setting with secrets masked.
func effectiveSettings() map[string]any {
	settings := viper.AllSettings()
	for _, key := range secretKeys {
		if v, ok := settings[key].(string); ok && v != "" {
			settings[key] = "********"
		}
	}
	return settings
}

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after merging defaults, .treehealth.yaml,
TREEHEALTH_* environment variables and flags. The output can be saved as
.treehealth.yaml. Connection strings and tokens are masked.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		out, err := yaml.Marshal(effectiveSettings())
		if err != nil {
			contract.LogFatal("Cannot render configuration", err)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			contract.LogInfo("# loaded from %s", used)
		}
		_, _ = fmt.Fprint(os.Stdout, string(out))
	},
}
