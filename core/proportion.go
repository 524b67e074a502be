package core

import (
	"cmp"

	"github.com/huangsam/treehealth/core/agg"
	"github.com/huangsam/treehealth/schema"
)

// speciesKey identifies the trees of one species within one borough.
type speciesKey struct {
	borough int
	species string
}

// healthKey identifies one health category of a species within a borough.
type healthKey struct {
	borough int
	species string
	health  schema.Health
}

func compareHealthKeys(a, b healthKey) int {
	return cmp.Or(
		cmp.Compare(a.species, b.species),
		cmp.Compare(a.borough, b.borough),
		cmp.Compare(schema.HealthRank(a.health), schema.HealthRank(b.health)),
		cmp.Compare(a.health, b.health),
	)
}

func recordCount(r schema.RawRecord) int { return r.Count }

// BuildSpeciesProportions computes, for every (borough, species, health)
// group, the share of that species' trees in the borough that fall into the
// health category. Groups are built from the raw species name and the name is
// title-cased afterwards. Rows come back ordered by species, borough and
// health level.
func BuildSpeciesProportions(records []schema.RawRecord) []schema.SpeciesProportion {
	speciesTotals := agg.SumBy(records, func(r schema.RawRecord) speciesKey {
		return speciesKey{borough: r.BoroughCode, species: r.Species}
	}, recordCount)

	healthTotals := agg.SumBy(records, func(r schema.RawRecord) healthKey {
		return healthKey{borough: r.BoroughCode, species: r.Species, health: r.Health}
	}, recordCount)

	joined := agg.InnerJoin(agg.Entries(healthTotals, compareHealthKeys),
		func(e agg.Entry[healthKey, int]) speciesKey {
			return speciesKey{borough: e.Key.borough, species: e.Key.species}
		}, speciesTotals)

	out := make([]schema.SpeciesProportion, 0, len(joined))
	for _, j := range joined {
		key, total, speciesTotal := j.Left.Key, j.Left.Value, j.Right
		if speciesTotal <= 0 {
			// A species with no counted trees has no meaningful share.
			continue
		}
		out = append(out, schema.SpeciesProportion{
			BoroughCode:  key.borough,
			Borough:      schema.BoroughNameOrCode(key.borough),
			Species:      TitleCase(key.species),
			Health:       key.health,
			Total:        total,
			SpeciesTotal: speciesTotal,
			Ratio:        float64(total) / float64(speciesTotal),
		})
	}
	return out
}
