// Package parquet provides data structures and functions for exporting the
// derived street-tree tables to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/treehealth/schema"
	"github.com/parquet-go/parquet-go"
)

// ProportionRow represents one row of the species proportion table.
type ProportionRow struct {
	// BoroughCode is the census borough code (1-5)
	BoroughCode int32 `parquet:"borough_code,snappy"`

	// Borough is the borough display name
	Borough string `parquet:"borough,snappy,dict"`

	// Species is the title-cased common species name
	Species string `parquet:"species,snappy,dict"`

	// Health is the health category (Good, Fair, Poor)
	Health string `parquet:"health,snappy,dict"`

	// Total is the number of trees of the species in this health category
	Total int64 `parquet:"total,snappy"`

	// SpeciesTotal is the number of trees of the species in the borough
	SpeciesTotal int64 `parquet:"species_total,snappy"`

	// Ratio is Total / SpeciesTotal
	Ratio float64 `parquet:"ratio,snappy"`

	// ExportedAt is when the snapshot behind this row was fetched
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// HealthIndexRow represents one row of the overall health index table.
type HealthIndexRow struct {
	// BoroughCode is the census borough code (1-5)
	BoroughCode int32 `parquet:"borough_code,snappy"`

	// Borough is the borough display name
	Borough string `parquet:"borough,snappy,dict"`

	// Species is the title-cased common species name
	Species string `parquet:"species,snappy,dict"`

	// Steward is the steward bucket (None, 1or2, 3or4, 4orMore)
	Steward string `parquet:"steward,snappy,dict"`

	// StewardLevel is the ordinal steward level (1-4)
	StewardLevel int32 `parquet:"steward_level,snappy"`

	// HealthIndex is the steward-weighted mean health level (1-3)
	HealthIndex float64 `parquet:"health_index,snappy"`

	// ExportedAt is when the snapshot behind this row was fetched
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// ConvertProportions maps the proportion table to Parquet rows.
func ConvertProportions(rows []schema.SpeciesProportion, fetchedAt time.Time) []ProportionRow {
	out := make([]ProportionRow, len(rows))
	for i, r := range rows {
		out[i] = ProportionRow{
			BoroughCode:  int32(r.BoroughCode),
			Borough:      r.Borough,
			Species:      r.Species,
			Health:       string(r.Health),
			Total:        int64(r.Total),
			SpeciesTotal: int64(r.SpeciesTotal),
			Ratio:        r.Ratio,
			ExportedAt:   fetchedAt,
		}
	}
	return out
}

// ConvertHealthIndex maps the overall health index table to Parquet rows.
func ConvertHealthIndex(rows []schema.OverallHealthIndex, fetchedAt time.Time) []HealthIndexRow {
	out := make([]HealthIndexRow, len(rows))
	for i, r := range rows {
		out[i] = HealthIndexRow{
			BoroughCode:  int32(r.BoroughCode),
			Borough:      r.Borough,
			Species:      r.Species,
			Steward:      string(r.Steward),
			StewardLevel: int32(r.StewardLevel),
			HealthIndex:  r.HealthIndex,
			ExportedAt:   fetchedAt,
		}
	}
	return out
}

// WriteProportionsParquet writes proportion rows to a Parquet file.
func WriteProportionsParquet(data []ProportionRow, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error { return writeRows(w, data) })
}

// WriteHealthIndexParquet writes health index rows to a Parquet file.
func WriteHealthIndexParquet(data []HealthIndexRow, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error { return writeRows(w, data) })
}

// writeFile creates the output file and hands it to write.
func writeFile(outputPath string, write func(io.Writer) error) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return write(file)
}

// writeRows writes a slice of structs as a single Parquet file.
// The schema is derived from the struct tags of T.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
