package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/treehealth/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(ProportionRow))
	require.NotNil(t, s)

	for _, colName := range []string{"borough_code", "borough", "species", "health", "total", "species_total", "ratio", "exported_at"} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestHealthIndexRowStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(HealthIndexRow))
	require.NotNil(t, s)

	for _, colName := range []string{"borough_code", "borough", "species", "steward", "steward_level", "health_index", "exported_at"} {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteProportionsParquet(t *testing.T) {
	fetchedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	rows := ConvertProportions([]schema.SpeciesProportion{
		{BoroughCode: 1, Borough: "Manhattan", Species: "Oak", Health: schema.PoorHealth, Total: 10, SpeciesTotal: 100, Ratio: 0.1},
		{BoroughCode: 1, Borough: "Manhattan", Species: "Oak", Health: schema.GoodHealth, Total: 90, SpeciesTotal: 100, Ratio: 0.9},
	}, fetchedAt)

	outputPath := filepath.Join(t.TempDir(), "proportions.parquet")
	require.NoError(t, WriteProportionsParquet(rows, outputPath))

	got, err := parquet.ReadFile[ProportionRow](outputPath)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Oak", got[0].Species)
	assert.Equal(t, "Poor", got[0].Health)
	assert.Equal(t, int64(90), got[1].Total)
	assert.InDelta(t, 0.9, got[1].Ratio, 1e-12)
	assert.True(t, fetchedAt.Equal(got[0].ExportedAt))
}

func TestWriteHealthIndexParquet(t *testing.T) {
	rows := ConvertHealthIndex([]schema.OverallHealthIndex{
		{BoroughCode: 4, Borough: "Queens", Species: "Ginkgo", Steward: schema.StewardOneTwo, StewardLevel: 2, HealthIndex: 2.5},
	}, time.Now())

	outputPath := filepath.Join(t.TempDir(), "health.parquet")
	require.NoError(t, WriteHealthIndexParquet(rows, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	got, err := parquet.ReadFile[HealthIndexRow](outputPath)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1or2", got[0].Steward)
	assert.Equal(t, int32(2), got[0].StewardLevel)
}

func TestWriteParquetEmpty(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteProportionsParquet(nil, outputPath))

	got, err := parquet.ReadFile[ProportionRow](outputPath)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteParquetBadPath(t *testing.T) {
	err := WriteHealthIndexParquet(nil, filepath.Join(t.TempDir(), "missing", "x.parquet"))
	assert.Error(t, err)
}
