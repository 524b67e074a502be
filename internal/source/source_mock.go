package source

import (
	"context"

	"github.com/huangsam/treehealth/internal/contract"
	"github.com/huangsam/treehealth/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordSource is a mock implementation of RecordSource for testing.
type MockRecordSource struct {
	mock.Mock
}

var _ contract.RecordSource = &MockRecordSource{} // Compile-time check

// Fetch implements the RecordSource interface.
func (m *MockRecordSource) Fetch(ctx context.Context) ([]schema.RawCandidate, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]schema.RawCandidate)
	return rows, args.Error(1)
}

// Describe implements the RecordSource interface.
func (m *MockRecordSource) Describe() string {
	return m.Called().String(0)
}

// Close implements the RecordSource interface.
func (m *MockRecordSource) Close() error {
	return m.Called().Error(0)
}
