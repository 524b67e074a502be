package core

import "github.com/huangsam/treehealth/schema"

// Clean keeps only candidates with every field present and converts them to
// records. Incomplete rows are dropped without imputation and without error.
// Count validity and label domains are checked later by the pipelines.
func Clean(candidates []schema.RawCandidate) []schema.RawRecord {
	records := make([]schema.RawRecord, 0, len(candidates))
	for _, c := range candidates {
		if c.Species == nil || c.BoroughCode == nil || c.Health == nil || c.Steward == nil || c.Count == nil {
			continue
		}
		records = append(records, schema.RawRecord{
			Species:     *c.Species,
			BoroughCode: *c.BoroughCode,
			Health:      schema.Health(*c.Health),
			Steward:     schema.StewardBucket(*c.Steward),
			Count:       *c.Count,
		})
	}
	return records
}
