package core

import (
	"testing"

	"github.com/huangsam/treehealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStewardHealthIndexOakExample(t *testing.T) {
	records := []schema.RawRecord{
		{Species: "Oak", BoroughCode: 1, Health: schema.PoorHealth, Steward: schema.StewardNone, Count: 10},
		{Species: "Oak", BoroughCode: 1, Health: schema.GoodHealth, Steward: schema.StewardNone, Count: 90},
	}

	rows, err := BuildStewardHealthIndex(records)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].StewardTotal)
	assert.InDelta(t, 2.8, rows[0].HealthIndex, 1e-9)
	assert.Equal(t, schema.StewardNone, rows[0].Steward)
}

func TestBuildOverallHealthIndex(t *testing.T) {
	rows, err := BuildOverallHealthIndex(sampleRecords())
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	type key struct {
		species string
		borough int
		steward schema.StewardBucket
	}
	seen := make(map[key]bool)
	for _, r := range rows {
		k := key{r.Species, r.BoroughCode, r.Steward}
		assert.False(t, seen[k], "duplicate row for %v", k)
		seen[k] = true
		assert.GreaterOrEqual(t, r.HealthIndex, 1.0-1e-9)
		assert.LessOrEqual(t, r.HealthIndex, 3.0+1e-9)
		assert.GreaterOrEqual(t, r.StewardLevel, 1)
		assert.LessOrEqual(t, r.StewardLevel, 4)
	}

	// Oak in Manhattan, steward None: (10*1 + 20*2 + 70*3) / 100 = 2.6
	var found bool
	for _, r := range rows {
		if r.Species == "Oak" && r.BoroughCode == 1 && r.Steward == schema.StewardNone {
			found = true
			assert.InDelta(t, 2.6, r.HealthIndex, 1e-9)
			assert.Equal(t, "Manhattan", r.Borough)
			assert.Equal(t, 1, r.StewardLevel)
		}
	}
	assert.True(t, found)

	// Sorted by species, borough and steward level.
	assert.Equal(t, "American Beech", rows[0].Species)
	assert.Equal(t, 3, rows[0].BoroughCode)
	assert.Equal(t, 1, rows[0].StewardLevel)
}

func TestBuildOverallHealthIndexBoroughNames(t *testing.T) {
	want := map[int]string{1: "Manhattan", 2: "Bronx", 3: "Brooklyn", 4: "Queens", 5: "Staten Island"}
	records := make([]schema.RawRecord, 0, len(want))
	for code := range want {
		records = append(records, schema.RawRecord{Species: "elm", BoroughCode: code, Health: schema.FairHealth, Steward: schema.StewardNone, Count: 1})
	}

	rows, err := BuildOverallHealthIndex(records)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, want[r.BoroughCode], r.Borough)
		assert.Equal(t, "Elm", r.Species)
		assert.InDelta(t, 2.0, r.HealthIndex, 1e-9)
	}
}

func TestBuildOverallHealthIndexRejectsUnknownValues(t *testing.T) {
	base := schema.RawRecord{Species: "oak", BoroughCode: 1, Health: schema.GoodHealth, Steward: schema.StewardNone, Count: 3}

	tests := []struct {
		name    string
		mutate  func(*schema.RawRecord)
		wantErr error
		mention string
	}{
		{"unknown health", func(r *schema.RawRecord) { r.Health = "Dead" }, schema.ErrUnknownHealth, "Dead"},
		{"unknown steward", func(r *schema.RawRecord) { r.Steward = "lots" }, schema.ErrUnknownSteward, "lots"},
		{"borough zero", func(r *schema.RawRecord) { r.BoroughCode = 0 }, schema.ErrUnknownBorough, "0"},
		{"borough six", func(r *schema.RawRecord) { r.BoroughCode = 6 }, schema.ErrUnknownBorough, "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := base
			tt.mutate(&bad)
			rows, err := BuildOverallHealthIndex([]schema.RawRecord{base, bad})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.mention)
			assert.Nil(t, rows, "no partial table on failure")
		})
	}
}

func TestBuildOverallHealthIndexEmpty(t *testing.T) {
	rows, err := BuildOverallHealthIndex(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBuildOverallHealthIndexGroupsOnRawName(t *testing.T) {
	rows, err := BuildOverallHealthIndex([]schema.RawRecord{
		{Species: "oak", BoroughCode: 1, Health: schema.PoorHealth, Steward: schema.StewardNone, Count: 1},
		{Species: "Oak", BoroughCode: 1, Health: schema.GoodHealth, Steward: schema.StewardNone, Count: 1},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	indexes := []float64{rows[0].HealthIndex, rows[1].HealthIndex}
	assert.ElementsMatch(t, []float64{1.0, 3.0}, indexes)
	for _, r := range rows {
		assert.Equal(t, "Oak", r.Species)
	}
}
