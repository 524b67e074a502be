package source

import (
	"context"
	"fmt"
	"os"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
)

// FileSource reads grouped counts from a saved Socrata JSON response.
type FileSource struct {
	path string
}

var _ contract.RecordSource = &FileSource{} // Compile-time check

// NewFileSource returns a source backed by a local JSON file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and decodes the whole file.
func (s *FileSource) Fetch(ctx context.Context) ([]schema.RawCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return decodeRows(file)
}

// Describe implements contract.RecordSource.
func (s *FileSource) Describe() string {
	return "file " + s.path
}

// Close implements contract.RecordSource.
func (s *FileSource) Close() error {
	return nil
}
