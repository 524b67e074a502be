// Package schema has models, lookup tables and typed enums for all parts of treehealth.
package schema

// RawCandidate is a single grouped-count row as decoded from a data source.
// Any field may be absent; absent fields are nil.
type RawCandidate struct {
	Species     *string // Common species name, lowercase as published (e.g. "american beech")
	BoroughCode *int    // Borough code 1-5
	Health      *string // Health label: Good, Fair, Poor
	Steward     *string // Steward bucket: None, 1or2, 3or4, 4orMore
	Count       *int    // Number of trees in the group
}

// RawRecord is a complete grouped-count row produced by the cleaning stage.
// Records are never mutated once produced.
type RawRecord struct {
	Species     string        `json:"species"`
	BoroughCode int           `json:"borough_code"`
	Health      Health        `json:"health"`
	Steward     StewardBucket `json:"steward"`
	Count       int           `json:"count"`
}

// SpeciesProportion is the share of one health category within the trees of a
// species in a borough.
type SpeciesProportion struct {
	BoroughCode  int     `json:"borough_code"`
	Borough      string  `json:"borough"`
	Species      string  `json:"species"`
	Health       Health  `json:"health"`
	Total        int     `json:"total"`         // Trees of this species in this health category
	SpeciesTotal int     `json:"species_total"` // All trees of this species in the borough
	Ratio        float64 `json:"ratio"`         // Total / SpeciesTotal
}

// StewardHealthIndex is the steward-weighted health index for one
// (borough, species, steward bucket) key.
type StewardHealthIndex struct {
	BoroughCode  int           `json:"borough_code"`
	Species      string        `json:"species"`
	Steward      StewardBucket `json:"steward"`
	StewardTotal int           `json:"steward_total"`
	HealthIndex  float64       `json:"health_index"`
}

// OverallHealthIndex is a StewardHealthIndex annotated with its ordinal steward
// level and borough name, ready for plotting.
type OverallHealthIndex struct {
	BoroughCode  int           `json:"borough_code"`
	Borough      string        `json:"borough"`
	Species      string        `json:"species"`
	Steward      StewardBucket `json:"steward"`
	StewardLevel int           `json:"steward_level"`
	HealthIndex  float64       `json:"health_index"`
}
