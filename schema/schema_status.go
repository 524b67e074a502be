package schema

import "time"

// SnapshotSummary describes the single fetch that all derived tables were built from.
type SnapshotSummary struct {
	Source          string    `json:"source"`
	FetchedAt       time.Time `json:"fetched_at"`
	FetchedRows     int       `json:"fetched_rows"`
	KeptRows        int       `json:"kept_rows"`
	DroppedRows     int       `json:"dropped_rows"`
	SpeciesCount    int       `json:"species_count"`
	ProportionRows  int       `json:"proportion_rows"`
	HealthIndexRows int       `json:"health_index_rows"`
}
