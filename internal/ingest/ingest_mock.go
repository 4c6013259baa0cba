package ingest

import (
	"context"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordingReader is a mock implementation of contract.RecordingReader.
type MockRecordingReader struct {
	mock.Mock
}

var _ contract.RecordingReader = &MockRecordingReader{} // Compile-time check

// ReadRecording implements the RecordingReader interface.
func (m *MockRecordingReader) ReadRecording(ctx context.Context, path string) (schema.Recording, error) {
	ret := m.Called(ctx, path)
	rec, _ := ret.Get(0).(schema.Recording)
	return rec, ret.Error(1)
}

// Supports implements the RecordingReader interface.
func (m *MockRecordingReader) Supports(path string) bool {
	ret := m.Called(path)
	return ret.Bool(0)
}
