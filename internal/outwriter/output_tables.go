package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/internal/parquet"
	"github.com/huangsam/treehealth/schema"
)

var (
	proportionHeaders  = []string{"borough_code", "borough", "species", "health", "total", "species_total", "ratio"}
	healthIndexHeaders = []string{"borough_code", "borough", "species", "steward", "steward_level", "health_index", "label"}
)

// WriteProportionResults outputs the species proportion table, dispatching based on the output format configured.
func WriteProportionResults(rows []schema.SpeciesProportion, summary schema.SnapshotSummary, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, proportionHeaders, proportionRecords(rows, fmtFloat, intFmt))
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteProportionsParquet(parquet.ConvertProportions(rows, summary.FetchedAt), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		contract.LogInfo("💾 Wrote Parquet to %s", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProportionTable(w, rows, summary, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
	return nil
}

// WriteHealthIndexResults outputs the overall health index table, dispatching based on the output format configured.
func WriteHealthIndexResults(rows []schema.OverallHealthIndex, summary schema.SnapshotSummary, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, healthIndexJSON(rows))
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, healthIndexHeaders, healthIndexRecords(rows, fmtFloat, intFmt))
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteHealthIndexParquet(parquet.ConvertHealthIndex(rows, summary.FetchedAt), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		contract.LogInfo("💾 Wrote Parquet to %s", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHealthIndexTable(w, rows, summary, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
	return nil
}

// proportionRecords formats proportion rows as CSV records.
func proportionRecords(rows []schema.SpeciesProportion, fmtFloat func(float64) string, intFmt string) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.BoroughCode),
			r.Borough,
			r.Species,
			string(r.Health),
			fmt.Sprintf(intFmt, r.Total),
			fmt.Sprintf(intFmt, r.SpeciesTotal),
			fmtFloat(r.Ratio),
		})
	}
	return records
}

// healthIndexRecords formats health index rows as CSV records with plain labels.
func healthIndexRecords(rows []schema.OverallHealthIndex, fmtFloat func(float64) string, intFmt string) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.BoroughCode),
			r.Borough,
			r.Species,
			string(r.Steward),
			fmt.Sprintf(intFmt, r.StewardLevel),
			fmtFloat(r.HealthIndex),
			contract.GetPlainLabel(r.HealthIndex),
		})
	}
	return records
}

// healthIndexJSON adds the plain label to each health index row.
func healthIndexJSON(rows []schema.OverallHealthIndex) any {
	type labeledHealthIndex struct {
		schema.OverallHealthIndex
		Label string `json:"label"`
	}
	out := make([]labeledHealthIndex, len(rows))
	for i, r := range rows {
		out[i] = labeledHealthIndex{OverallHealthIndex: r, Label: contract.GetPlainLabel(r.HealthIndex)}
	}
	return out
}

// writeProportionTable generates and writes the human-readable proportion table.
func writeProportionTable(w io.Writer, rows []schema.SpeciesProportion, summary schema.SnapshotSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	speciesWidth := getMaxSpeciesWidth(cfg, 55)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		health := string(r.Health)
		if cfg.UseColors {
			health = contract.ColorHealth(health)
		}
		data = append(data, []string{
			r.Borough,
			contract.TruncateText(r.Species, speciesWidth),
			health,
			fmt.Sprintf(intFmt, r.Total),
			fmt.Sprintf(intFmt, r.SpeciesTotal),
			fmtFloat(r.Ratio),
		})
	}
	if err := writeTable(w, []string{"Borough", "Species", "Health", "Trees", "Species Trees", "Ratio"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d proportion rows from %s (fetched %s)\n",
		len(rows), summary.Source, summary.FetchedAt.Format(contract.DateTimeFormat))
	return err
}

// writeHealthIndexTable generates and writes the human-readable health index table.
func writeHealthIndexTable(w io.Writer, rows []schema.OverallHealthIndex, summary schema.SnapshotSummary, cfg *contract.Config, fmtFloat func(float64) string, _ string) error {
	speciesWidth := getMaxSpeciesWidth(cfg, 50)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		label := contract.GetPlainLabel(r.HealthIndex)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.HealthIndex)
		}
		data = append(data, []string{
			r.Borough,
			contract.TruncateText(r.Species, speciesWidth),
			string(r.Steward),
			fmtFloat(r.HealthIndex),
			label,
		})
	}
	if err := writeTable(w, []string{"Borough", "Species", "Steward", "Health Index", "Label"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d health index rows from %s (fetched %s)\n",
		len(rows), summary.Source, summary.FetchedAt.Format(contract.DateTimeFormat))
	return err
}
