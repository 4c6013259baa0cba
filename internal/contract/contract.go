// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/roastcurve/schema"
)

// RecordingReader turns one input file into a parsed Recording.
// This allows the batch logic to be tested without touching the filesystem.
type RecordingReader interface {
	// ReadRecording parses the file at path in a single pass, reporting the
	// samples and the largest elapsed time together.
	ReadRecording(ctx context.Context, path string) (schema.Recording, error)

	// Supports reports whether the reader understands the file at path.
	Supports(path string) bool
}
