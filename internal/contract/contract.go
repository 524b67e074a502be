// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/treehealth/schema"
)

// RecordSource defines a single read of grouped street-tree counts.
// This allows the pipelines to be tested without network or database access.
type RecordSource interface {
	// Fetch issues one grouped-count query and returns the decoded rows.
	// Fields missing upstream are nil; nothing is validated beyond decoding.
	Fetch(ctx context.Context) ([]schema.RawCandidate, error)

	// Describe returns a short human-readable name of the source for
	// summaries and log lines.
	Describe() string

	// Close releases any connection held by the source.
	Close() error
}
