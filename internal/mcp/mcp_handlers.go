package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/treehealth/core"
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	snap *core.Snapshot
}

// jsonResult renders data as an indented JSON text result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// lookupSpecies reads the required species argument and checks it exists.
func (h *toolHandler) lookupSpecies(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	species := request.GetString("species", "")
	if species == "" {
		return "", mcp.NewToolResultError("species is required")
	}
	if !h.snap.HasSpecies(species) {
		return "", mcp.NewToolResultError(fmt.Sprintf("unknown species %q; call list_species for valid names", species))
	}
	return species, nil
}

// boroughFilter reads the optional borough_code argument. Zero means no filter.
func boroughFilter(request mcp.CallToolRequest) (int, *mcp.CallToolResult) {
	code := request.GetInt("borough_code", 0)
	if code == 0 {
		return 0, nil
	}
	if _, err := schema.BoroughName(code); err != nil {
		return 0, mcp.NewToolResultError(fmt.Sprintf("invalid borough_code: %v", err))
	}
	return code, nil
}

func (h *toolHandler) handleListSpecies(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(schema.SpeciesList{
		Species: h.snap.Species(),
		Default: h.snap.DefaultSpecies(),
	})
}

func (h *toolHandler) handleGetHealthProportions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	species, errResult := h.lookupSpecies(request)
	if errResult != nil {
		return errResult, nil
	}
	borough, errResult := boroughFilter(request)
	if errResult != nil {
		return errResult, nil
	}

	rows := h.snap.ProportionsFor(species)
	filtered := rows[:0]
	for _, r := range rows {
		if borough == 0 || r.BoroughCode == borough {
			filtered = append(filtered, r)
		}
	}
	return jsonResult(filtered)
}

func (h *toolHandler) handleGetStewardHealthIndex(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	species, errResult := h.lookupSpecies(request)
	if errResult != nil {
		return errResult, nil
	}
	borough, errResult := boroughFilter(request)
	if errResult != nil {
		return errResult, nil
	}
	steward := schema.StewardBucket(request.GetString("steward", ""))
	if steward != "" {
		if _, err := schema.StewardLevel(steward); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid steward: %v", err)), nil
		}
	}

	type labeledRow struct {
		schema.OverallHealthIndex
		Label string `json:"label"`
	}
	rows := h.snap.HealthIndexFor(species)
	filtered := make([]labeledRow, 0, len(rows))
	for _, r := range rows {
		if borough != 0 && r.BoroughCode != borough {
			continue
		}
		if steward != "" && r.Steward != steward {
			continue
		}
		filtered = append(filtered, labeledRow{OverallHealthIndex: r, Label: contract.GetPlainLabel(r.HealthIndex)})
	}
	return jsonResult(filtered)
}

func (h *toolHandler) handleGetSummary(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.snap.Summary())
}
