package cmd

import (
	"github.com/huangsam/treehealth/core"
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the street tree MCP server",
	Long:    `Launch an MCP server on stdio that lets AI agents query species, health proportions and steward health indices.`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Suppress the normal header logs in MCP mode
		ctx := core.WithSuppressHeader(rootCtx)
		snap, err := fetchSnapshot(ctx)
		if err != nil {
			contract.LogFatal("Cannot load census", err)
		}
		if err := mcp.StartMCPServer(ctx, snap); err != nil {
			contract.LogFatal("MCP server failed", err)
		}
	},
}
