package schema

// StringPtr returns a pointer to s. Used to build RawCandidate values.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to n. Used to build RawCandidate values.
func IntPtr(n int) *int {
	return &n
}

// NewCandidate builds a fully populated RawCandidate.
func NewCandidate(species string, borough int, health Health, steward StewardBucket, count int) RawCandidate {
	return RawCandidate{
		Species:     StringPtr(species),
		BoroughCode: IntPtr(borough),
		Health:      StringPtr(string(health)),
		Steward:     StringPtr(string(steward)),
		Count:       IntPtr(count),
	}
}

// Candidate converts a complete record back to its candidate form.
func (r RawRecord) Candidate() RawCandidate {
	return NewCandidate(r.Species, r.BoroughCode, r.Health, r.Steward, r.Count)
}
