package core

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/huangsam/treehealth/core/agg"
	"github.com/huangsam/treehealth/schema"
)

// stewardKey identifies the trees of one species within one borough that
// share a steward bucket.
type stewardKey struct {
	borough int
	species string
	steward schema.StewardBucket
}

func stewardKeyOf(r schema.RawRecord) stewardKey {
	return stewardKey{borough: r.BoroughCode, species: r.Species, steward: r.Steward}
}

func stewardRank(s schema.StewardBucket) int {
	if level, err := schema.StewardLevel(s); err == nil {
		return level
	}
	return len(schema.AllStewardBuckets) + 1
}

func compareStewardKeys(a, b stewardKey) int {
	return cmp.Or(
		cmp.Compare(a.species, b.species),
		cmp.Compare(a.borough, b.borough),
		cmp.Compare(stewardRank(a.steward), stewardRank(b.steward)),
		cmp.Compare(a.steward, b.steward),
	)
}

// describeRecord names a record in error messages.
func describeRecord(r schema.RawRecord) string {
	return fmt.Sprintf("species=%q borough=%d health=%q steward=%q count=%d",
		r.Species, r.BoroughCode, r.Health, r.Steward, r.Count)
}

// BuildStewardHealthIndex computes the steward-weighted health index of every
// (borough, species, steward bucket) group: the count-weighted mean of the
// health levels Poor=1, Fair=2, Good=3 within the group. Species names are
// kept as published. An unrecognized health label aborts the whole build.
func BuildStewardHealthIndex(records []schema.RawRecord) ([]schema.StewardHealthIndex, error) {
	stewardTotals := agg.SumBy(records, stewardKeyOf, recordCount)

	type contribution struct {
		key   stewardKey
		value float64
	}
	joined := agg.InnerJoin(records, stewardKeyOf, stewardTotals)
	contributions := make([]contribution, 0, len(joined))
	for _, j := range joined {
		rec, stewardTotal := j.Left, j.Right
		level, err := schema.HealthLevel(rec.Health)
		if err != nil {
			return nil, fmt.Errorf("health index for record {%s}: %w", describeRecord(rec), err)
		}
		if stewardTotal <= 0 {
			continue
		}
		contributions = append(contributions, contribution{
			key:   stewardKeyOf(rec),
			value: float64(rec.Count) / float64(stewardTotal) * float64(level),
		})
	}

	indices := agg.SumFloatBy(contributions,
		func(c contribution) stewardKey { return c.key },
		func(c contribution) float64 { return c.value })

	out := make([]schema.StewardHealthIndex, 0, len(indices))
	for _, e := range agg.Entries(indices, compareStewardKeys) {
		out = append(out, schema.StewardHealthIndex{
			BoroughCode:  e.Key.borough,
			Species:      e.Key.species,
			Steward:      e.Key.steward,
			StewardTotal: stewardTotals[e.Key],
			HealthIndex:  e.Value,
		})
	}
	return out, nil
}

// BuildOverallHealthIndex builds the steward health index and annotates each
// row with its steward level, borough name and title-cased species name.
// Steward buckets and borough codes outside the closed lookup tables abort the
// build; no partial table is returned.
func BuildOverallHealthIndex(records []schema.RawRecord) ([]schema.OverallHealthIndex, error) {
	indices, err := BuildStewardHealthIndex(records)
	if err != nil {
		return nil, err
	}

	out := make([]schema.OverallHealthIndex, 0, len(indices))
	for _, idx := range indices {
		level, err := schema.StewardLevel(idx.Steward)
		if err != nil {
			return nil, fmt.Errorf("health index for species=%q borough=%d: %w", idx.Species, idx.BoroughCode, err)
		}
		borough, err := schema.BoroughName(idx.BoroughCode)
		if err != nil {
			return nil, fmt.Errorf("health index for species=%q steward=%q: %w", idx.Species, idx.Steward, err)
		}
		out = append(out, schema.OverallHealthIndex{
			BoroughCode:  idx.BoroughCode,
			Borough:      borough,
			Species:      TitleCase(idx.Species),
			Steward:      idx.Steward,
			StewardLevel: level,
			HealthIndex:  idx.HealthIndex,
		})
	}

	slices.SortStableFunc(out, func(a, b schema.OverallHealthIndex) int {
		return cmp.Or(
			cmp.Compare(a.Species, b.Species),
			cmp.Compare(a.BoroughCode, b.BoroughCode),
			cmp.Compare(a.StewardLevel, b.StewardLevel),
		)
	})
	return out, nil
}
