package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/huangsam/treehealth/core/agg"
	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
)

// Snapshot holds every derived table computed from a single fetch. It is
// built once at startup and never mutated, so it can be shared freely
// between concurrent readers.
type Snapshot struct {
	proportions []schema.SpeciesProportion
	healthIndex []schema.OverallHealthIndex
	species     []string

	proportionsBySpecies map[string][]schema.SpeciesProportion
	healthBySpecies      map[string][]schema.OverallHealthIndex

	defaultSpecies string
	summary        schema.SnapshotSummary
}

// BuildSnapshot fetches raw rows from the source once and runs the cleaning
// stage and both pipelines over them. Fetch errors and categorical errors
// from the health index abort the build.
func BuildSnapshot(ctx context.Context, src contract.RecordSource, preferredDefault string) (*Snapshot, error) {
	start := time.Now()
	candidates, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch street tree counts from %s: %w", src.Describe(), err)
	}

	snap, err := NewSnapshot(candidates, src.Describe(), start, preferredDefault)
	if err != nil {
		return nil, err
	}

	if !shouldSuppressHeader(ctx) {
		s := snap.summary
		contract.LogInfo("🌳 Loaded %d rows from %s (%d kept, %d incomplete) in %s",
			s.FetchedRows, s.Source, s.KeptRows, s.DroppedRows, time.Since(start).Round(time.Millisecond))
		contract.LogInfo("📊 %d species, %d proportion rows, %d health index rows",
			s.SpeciesCount, s.ProportionRows, s.HealthIndexRows)
	}
	return snap, nil
}

// NewSnapshot runs the cleaning stage and both pipelines over already-fetched rows.
func NewSnapshot(candidates []schema.RawCandidate, source string, fetchedAt time.Time, preferredDefault string) (*Snapshot, error) {
	records := Clean(candidates)

	proportions := BuildSpeciesProportions(records)
	healthIndex, err := BuildOverallHealthIndex(records)
	if err != nil {
		return nil, fmt.Errorf("build health index: %w", err)
	}

	snap := &Snapshot{
		proportions:          proportions,
		healthIndex:          healthIndex,
		proportionsBySpecies: make(map[string][]schema.SpeciesProportion),
		healthBySpecies:      make(map[string][]schema.OverallHealthIndex),
	}

	names := make([]string, 0, len(proportions))
	for _, p := range proportions {
		snap.proportionsBySpecies[p.Species] = append(snap.proportionsBySpecies[p.Species], p)
		names = append(names, p.Species)
	}
	for _, h := range healthIndex {
		snap.healthBySpecies[h.Species] = append(snap.healthBySpecies[h.Species], h)
	}
	snap.species = agg.SortedUnique(names)
	snap.defaultSpecies = chooseDefaultSpecies(snap.species, preferredDefault)

	snap.summary = schema.SnapshotSummary{
		Source:          source,
		FetchedAt:       fetchedAt,
		FetchedRows:     len(candidates),
		KeptRows:        len(records),
		DroppedRows:     len(candidates) - len(records),
		SpeciesCount:    len(snap.species),
		ProportionRows:  len(proportions),
		HealthIndexRows: len(healthIndex),
	}
	return snap, nil
}

// chooseDefaultSpecies picks the preferred species when present, otherwise
// the first species in sorted order. An empty list yields "".
func chooseDefaultSpecies(species []string, preferred string) string {
	if _, found := slices.BinarySearch(species, preferred); found {
		return preferred
	}
	if len(species) > 0 {
		return species[0]
	}
	return ""
}

// Species returns the distinct title-cased species names in ascending order.
func (s *Snapshot) Species() []string {
	return slices.Clone(s.species)
}

// DefaultSpecies returns the species selected when the dashboard first loads.
func (s *Snapshot) DefaultSpecies() string {
	return s.defaultSpecies
}

// HasSpecies reports whether any row exists for the species.
func (s *Snapshot) HasSpecies(species string) bool {
	_, found := slices.BinarySearch(s.species, species)
	return found
}

// Proportions returns the full species proportion table.
func (s *Snapshot) Proportions() []schema.SpeciesProportion {
	return slices.Clone(s.proportions)
}

// HealthIndex returns the full overall health index table.
func (s *Snapshot) HealthIndex() []schema.OverallHealthIndex {
	return slices.Clone(s.healthIndex)
}

// ProportionsFor returns the proportion rows of one species. Unknown species yield no rows.
func (s *Snapshot) ProportionsFor(species string) []schema.SpeciesProportion {
	return slices.Clone(s.proportionsBySpecies[species])
}

// HealthIndexFor returns the health index rows of one species. Unknown species yield no rows.
func (s *Snapshot) HealthIndexFor(species string) []schema.OverallHealthIndex {
	return slices.Clone(s.healthBySpecies[species])
}

// Summary returns the description of the fetch behind this snapshot.
func (s *Snapshot) Summary() schema.SnapshotSummary {
	return s.summary
}
