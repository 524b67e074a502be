package core

import "github.com/huangsam/treehealth/schema"

// sampleCandidates returns a small census extract covering two species, two
// boroughs and every steward bucket.
func sampleCandidates() []schema.RawCandidate {
	return []schema.RawCandidate{
		schema.NewCandidate("oak", 1, schema.PoorHealth, schema.StewardNone, 10),
		schema.NewCandidate("oak", 1, schema.FairHealth, schema.StewardNone, 20),
		schema.NewCandidate("oak", 1, schema.GoodHealth, schema.StewardNone, 70),
		schema.NewCandidate("oak", 4, schema.GoodHealth, schema.StewardOneTwo, 5),
		schema.NewCandidate("oak", 4, schema.FairHealth, schema.StewardThreeFour, 3),
		schema.NewCandidate("american beech", 3, schema.GoodHealth, schema.StewardNone, 8),
		schema.NewCandidate("american beech", 3, schema.PoorHealth, schema.StewardNone, 2),
		schema.NewCandidate("american beech", 3, schema.FairHealth, schema.StewardFourPlus, 1),
		schema.NewCandidate("american beech", 5, schema.GoodHealth, schema.StewardOneTwo, 4),
	}
}

func sampleRecords() []schema.RawRecord {
	return Clean(sampleCandidates())
}
