package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/treehealth/schema"
)

// Column names shared by the Socrata query, the JSON payload and the SQL mirror.
const (
	speciesColumn = "spc_common"
	boroughColumn = "borocode"
	healthColumn  = "health"
	stewardColumn = "steward"
	treeIDColumn  = "tree_id"
	countColumn   = "count_tree_id"
)

// flexInt decodes an integer published either as a JSON number or as a
// numeric string, which is how Socrata encodes every column.
type flexInt struct {
	value *int
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		f.value = nil
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		f.value = nil
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%q is not an integer", text)
	}
	f.value = &n
	return nil
}

// wireRow is one element of the grouped-count JSON array.
type wireRow struct {
	Species *string `json:"spc_common"`
	Borough flexInt `json:"borocode"`
	Health  *string `json:"health"`
	Steward *string `json:"steward"`
	Count   flexInt `json:"count_tree_id"`
}

// blankToNil treats empty labels as absent.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// decodeRows reads a JSON array of grouped-count rows. Absent or blank fields
// become nil. Malformed integers and negative counts are decode errors.
func decodeRows(r io.Reader) ([]schema.RawCandidate, error) {
	var rows []json.RawMessage
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode JSON rows: %w", err)
	}

	out := make([]schema.RawCandidate, 0, len(rows))
	for i, raw := range rows {
		var row wireRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if row.Count.value != nil && *row.Count.value < 0 {
			return nil, fmt.Errorf("row %d: negative %s %d", i, countColumn, *row.Count.value)
		}
		out = append(out, schema.RawCandidate{
			Species:     blankToNil(row.Species),
			BoroughCode: row.Borough.value,
			Health:      blankToNil(row.Health),
			Steward:     blankToNil(row.Steward),
			Count:       row.Count.value,
		})
	}
	return out, nil
}
