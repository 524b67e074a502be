package outwriter

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
)

// errParquetUnsupported is returned for outputs that have no columnar form.
var errParquetUnsupported = errors.New("parquet output is only available for tables")

// WriteSpeciesList outputs the species list, dispatching based on the output format configured.
func WriteSpeciesList(list schema.SpeciesList, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, list)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			records := make([][]string, 0, len(list.Species))
			for _, name := range list.Species {
				records = append(records, []string{name, strconv.FormatBool(name == list.Default)})
			}
			return writeCSVWithHeader(w, []string{"species", "default"}, records)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSpeciesTable(w, list, cfg)
		}, "Wrote table")
	}
}

// writeSpeciesTable writes the species list with the default species marked.
func writeSpeciesTable(w io.Writer, list schema.SpeciesList, cfg *contract.Config) error {
	speciesWidth := getMaxSpeciesWidth(cfg, 15)
	data := make([][]string, 0, len(list.Species))
	for i, name := range list.Species {
		marker := ""
		if name == list.Default {
			marker = "*"
		}
		data = append(data, []string{strconv.Itoa(i + 1), contract.TruncateText(name, speciesWidth), marker})
	}
	if err := writeTable(w, []string{"#", "Species", "Default"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d species available\n", len(list.Species))
	return err
}

// WriteSnapshotSummary outputs the snapshot summary, dispatching based on the output format configured.
func WriteSnapshotSummary(summary schema.SnapshotSummary, cfg *contract.Config) error {
	_, intFmt := createFormatters(cfg.Precision)
	pairs := summaryPairs(summary, intFmt)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"field", "value"}, pairs)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTable(w, []string{"Field", "Value"}, pairs)
		}, "Wrote table")
	}
}

// summaryPairs flattens the summary into field/value pairs.
func summaryPairs(s schema.SnapshotSummary, intFmt string) [][]string {
	return [][]string{
		{"source", s.Source},
		{"fetched_at", s.FetchedAt.Format(contract.DateTimeFormat)},
		{"fetched_rows", fmt.Sprintf(intFmt, s.FetchedRows)},
		{"kept_rows", fmt.Sprintf(intFmt, s.KeptRows)},
		{"dropped_rows", fmt.Sprintf(intFmt, s.DroppedRows)},
		{"species_count", fmt.Sprintf(intFmt, s.SpeciesCount)},
		{"proportion_rows", fmt.Sprintf(intFmt, s.ProportionRows)},
		{"health_index_rows", fmt.Sprintf(intFmt, s.HealthIndexRows)},
	}
}
