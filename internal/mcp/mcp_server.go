// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/treehealth/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the street tree MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(snap *core.Snapshot) *server.MCPServer {
	s := server.NewMCPServer(
		"Street Tree Health Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{snap: snap}

	// --- 1. Tool: list_species ---
	s.AddTool(mcp.NewTool("list_species",
		mcp.WithDescription("List the tree species present in the street tree census, plus the default selection."),
	), h.handleListSpecies)

	// --- 2. Tool: get_health_proportions ---
	s.AddTool(mcp.NewTool("get_health_proportions",
		mcp.WithDescription("Get the share of trees in each health category (Poor, Fair, Good) for a species, per borough."),
		mcp.WithString("species", mcp.Description("Title-cased common species name, e.g. 'American Beech'."), mcp.Required()),
		mcp.WithNumber("borough_code", mcp.Description("Restrict to one borough (1 Manhattan, 2 Bronx, 3 Brooklyn, 4 Queens, 5 Staten Island).")),
	), h.handleGetHealthProportions)

	// --- 3. Tool: get_steward_health_index ---
	s.AddTool(mcp.NewTool("get_steward_health_index",
		mcp.WithDescription("Get the steward-weighted health index (1 = poor, 3 = good) for a species, per borough and steward level."),
		mcp.WithString("species", mcp.Description("Title-cased common species name, e.g. 'American Beech'."), mcp.Required()),
		mcp.WithNumber("borough_code", mcp.Description("Restrict to one borough (1-5).")),
		mcp.WithString("steward", mcp.Description("Restrict to one steward bucket."), mcp.Enum("None", "1or2", "3or4", "4orMore")),
	), h.handleGetStewardHealthIndex)

	// --- 4. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Describe the census fetch behind the loaded tables: source, row counts and species count."),
	), h.handleGetSummary)

	return s
}

// StartMCPServer starts the street tree MCP server on stdio.
func StartMCPServer(_ context.Context, snap *core.Snapshot) error {
	s := NewMCPServer(snap)
	return server.ServeStdio(s)
}
