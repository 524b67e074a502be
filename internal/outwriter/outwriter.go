// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProportions prints the species proportion table using the configured output format.
func (ow *OutWriter) WriteProportions(rows []schema.SpeciesProportion, summary schema.SnapshotSummary, cfg *contract.Config) error {
	return WriteProportionResults(rows, summary, cfg)
}

// WriteHealthIndex prints the overall health index table using the configured output format.
func (ow *OutWriter) WriteHealthIndex(rows []schema.OverallHealthIndex, summary schema.SnapshotSummary, cfg *contract.Config) error {
	return WriteHealthIndexResults(rows, summary, cfg)
}

// WriteSpecies prints the species list using the configured output format.
func (ow *OutWriter) WriteSpecies(list schema.SpeciesList, cfg *contract.Config) error {
	return WriteSpeciesList(list, cfg)
}

// WriteSummary prints the snapshot summary using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.SnapshotSummary, cfg *contract.Config) error {
	return WriteSnapshotSummary(summary, cfg)
}
