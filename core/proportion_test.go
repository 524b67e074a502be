package core

import (
	"testing"

	"github.com/huangsam/treehealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratiosFor(rows []schema.SpeciesProportion, borough int, species string) map[schema.Health]float64 {
	out := make(map[schema.Health]float64)
	for _, r := range rows {
		if r.BoroughCode == borough && r.Species == species {
			out[r.Health] = r.Ratio
		}
	}
	return out
}

func TestBuildSpeciesProportionsOakExample(t *testing.T) {
	records := []schema.RawRecord{
		{Species: "Oak", BoroughCode: 1, Health: schema.PoorHealth, Steward: schema.StewardNone, Count: 10},
		{Species: "Oak", BoroughCode: 1, Health: schema.FairHealth, Steward: schema.StewardNone, Count: 20},
		{Species: "Oak", BoroughCode: 1, Health: schema.GoodHealth, Steward: schema.StewardNone, Count: 70},
	}

	rows := BuildSpeciesProportions(records)
	require.Len(t, rows, 3)

	ratios := ratiosFor(rows, 1, "Oak")
	assert.InDelta(t, 0.10, ratios[schema.PoorHealth], 1e-9)
	assert.InDelta(t, 0.20, ratios[schema.FairHealth], 1e-9)
	assert.InDelta(t, 0.70, ratios[schema.GoodHealth], 1e-9)

	for _, r := range rows {
		assert.Equal(t, 100, r.SpeciesTotal)
		assert.Equal(t, "Manhattan", r.Borough)
	}
	// Ordered by health level.
	assert.Equal(t, []schema.Health{schema.PoorHealth, schema.FairHealth, schema.GoodHealth},
		[]schema.Health{rows[0].Health, rows[1].Health, rows[2].Health})
}

func TestBuildSpeciesProportionsSumToOne(t *testing.T) {
	rows := BuildSpeciesProportions(sampleRecords())
	require.NotEmpty(t, rows)

	sums := make(map[[2]any]float64)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Ratio, 0.0)
		assert.LessOrEqual(t, r.Ratio, 1.0)
		sums[[2]any{r.BoroughCode, r.Species}] += r.Ratio
	}
	for key, sum := range sums {
		assert.InDelta(t, 1.0, sum, 1e-9, "ratios for %v", key)
	}
}

func TestBuildSpeciesProportionsPerBorough(t *testing.T) {
	// Borough 4 has no Poor oaks, so no Poor row is produced there.
	rows := BuildSpeciesProportions(sampleRecords())
	ratios := ratiosFor(rows, 4, "Oak")
	assert.InDelta(t, 5.0/8.0, ratios[schema.GoodHealth], 1e-9)
	assert.InDelta(t, 3.0/8.0, ratios[schema.FairHealth], 1e-9)
	assert.NotContains(t, ratios, schema.PoorHealth)
}

func TestBuildSpeciesProportionsSingleCategory(t *testing.T) {
	rows := BuildSpeciesProportions([]schema.RawRecord{
		{Species: "ginkgo", BoroughCode: 2, Health: schema.GoodHealth, Steward: schema.StewardNone, Count: 7},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].Ratio)
	assert.Equal(t, "Ginkgo", rows[0].Species)
}

func TestBuildSpeciesProportionsDroppedCategory(t *testing.T) {
	full := []schema.RawRecord{
		{Species: "oak", BoroughCode: 1, Health: schema.PoorHealth, Count: 10},
		{Species: "oak", BoroughCode: 1, Health: schema.FairHealth, Count: 20},
		{Species: "oak", BoroughCode: 1, Health: schema.GoodHealth, Count: 70},
	}
	withoutPoor := full[1:]

	before := ratiosFor(BuildSpeciesProportions(full), 1, "Oak")
	after := ratiosFor(BuildSpeciesProportions(withoutPoor), 1, "Oak")

	assert.NotContains(t, after, schema.PoorHealth)
	assert.Len(t, after, 2)
	assert.InDelta(t, before[schema.GoodHealth]/before[schema.FairHealth],
		after[schema.GoodHealth]/after[schema.FairHealth], 1e-9)
}

func TestBuildSpeciesProportionsTitleCase(t *testing.T) {
	rows := BuildSpeciesProportions([]schema.RawRecord{
		{Species: "american beech", BoroughCode: 3, Health: schema.FairHealth, Count: 1},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "American Beech", rows[0].Species)
}

func TestBuildSpeciesProportionsZeroTotal(t *testing.T) {
	rows := BuildSpeciesProportions([]schema.RawRecord{
		{Species: "oak", BoroughCode: 1, Health: schema.GoodHealth, Count: 0},
	})
	assert.Empty(t, rows)
}

func TestBuildSpeciesProportionsEmpty(t *testing.T) {
	rows := BuildSpeciesProportions(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestBuildSpeciesProportionsGroupsOnRawName(t *testing.T) {
	// Grouping keys on the raw name, so "oak" and "Oak" stay separate groups
	// that share a display name after title-casing.
	rows := BuildSpeciesProportions([]schema.RawRecord{
		{Species: "oak", BoroughCode: 1, Health: schema.GoodHealth, Count: 4},
		{Species: "Oak", BoroughCode: 1, Health: schema.GoodHealth, Count: 6},
	})
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "Oak", r.Species)
		assert.Equal(t, 1, r.BoroughCode)
		assert.Equal(t, schema.GoodHealth, r.Health)
		assert.InDelta(t, 1.0, r.Ratio, 1e-9)
	}
}
