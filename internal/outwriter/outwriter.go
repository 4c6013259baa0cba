// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAnalysis prints key points with their label layout using the configured output format.
func (ow *OutWriter) WriteAnalysis(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return WriteAnalysisResults(result, cfg, duration)
}

// WriteSeries prints the aligned series using the configured output format.
func (ow *OutWriter) WriteSeries(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return WriteSeriesResults(result, cfg, duration)
}

// WriteKeyPoints prints detected key points using the configured output format.
func (ow *OutWriter) WriteKeyPoints(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return WriteKeyPointResults(result, cfg, duration)
}

// WriteLayout prints a single computed annotation using the configured output format.
func (ow *OutWriter) WriteLayout(set schema.AnnotationSet, cfg *contract.Config) error {
	return WriteLayoutResult(set, cfg)
}
