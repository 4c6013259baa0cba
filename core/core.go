// Package core runs roast curve batches: it loads recordings, builds the shared
// grid and produces key points, label layouts and annotations for output.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/roastcurve/core/algo"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/ingest"
	"github.com/huangsam/roastcurve/internal/outwriter"
	"github.com/huangsam/roastcurve/schema"
)

// probeRecordingID names the single annotation produced by the layout command.
const probeRecordingID = "probe"

// ExecutorFunc defines the function signature for executing different batch modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, reader contract.RecordingReader) error

// ExecuteAnalyze runs a batch and prints key points with their label layout.
// It serves as the main entry point for the 'analyze' mode.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, reader contract.RecordingReader) error {
	start := time.Now()
	result, err := runBatchCore(ctx, cfg, reader)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteAnalysis(result, cfg, time.Since(start))
}

// ExecuteSeries runs a batch and prints the dense aligned series on the shared grid.
func ExecuteSeries(ctx context.Context, cfg *contract.Config, reader contract.RecordingReader) error {
	start := time.Now()
	result, err := runBatchCore(ctx, cfg, reader)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSeries(result, cfg, time.Since(start))
}

// ExecuteKeyPoints runs a batch and prints the detected key points only.
func ExecuteKeyPoints(ctx context.Context, cfg *contract.Config, reader contract.RecordingReader) error {
	start := time.Now()
	result, err := runBatchCore(ctx, cfg, reader)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteKeyPoints(result, cfg, time.Since(start))
}

// ExecuteLayout computes the annotation of one hypothetical key point, which
// makes the layout constants easy to tune without any input files.
func ExecuteLayout(_ context.Context, cfg *contract.Config) error {
	set, err := ComputeProbe(cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteLayout(set, cfg)
}

// ComputeProbe lays out and assembles the key point described by cfg.Probe.
func ComputeProbe(cfg *contract.Config) (schema.AnnotationSet, error) {
	p := cfg.Probe
	if p.Event == "" {
		return schema.AnnotationSet{}, errors.New("--event is required")
	}
	point := schema.KeyPoint{
		Event: p.Event,
		Time:  schema.TimeStamp(p.Index),
		Value: p.Value,
		Index: p.Index,
	}
	offset := algo.ComputeOffset(p.Event, point, cfg.Geometry, p.Total, p.RecordingIndex, cfg.Layout)
	color := schema.PaletteColor(cfg.Palette, offset.RecordingIndex)
	return algo.Assemble(p.Event, point, offset, color, probeRecordingID, cfg.Annotation), nil
}

// GetBatchResult runs a batch without printing anything to stdout.
// It is the entry point for the MCP tools.
func GetBatchResult(ctx context.Context, cfg *contract.Config, reader contract.RecordingReader) (schema.BatchResult, error) {
	return runBatchCore(withSuppressHeader(ctx), cfg, reader)
}

// runBatchCore performs the common Expand, Load and Batch steps.
// A batch with no usable recording is reported as a warning, not an error.
func runBatchCore(ctx context.Context, cfg *contract.Config, reader contract.RecordingReader) (schema.BatchResult, error) {
	// --- 1. Path Expansion ---
	paths, err := ingest.ExpandPaths(cfg.Paths, cfg.Excludes, reader)
	if err != nil {
		return schema.BatchResult{}, err
	}
	if len(paths) == 0 {
		return schema.BatchResult{}, errors.New("no recordings found")
	}
	if !shouldSuppressHeader(ctx) {
		logBatchHeader(cfg, len(paths))
	}

	// --- 2. Concurrent Load ---
	recordings, loadWarnings, err := LoadRecordings(ctx, reader, paths, cfg.Workers)
	if err != nil {
		return schema.BatchResult{}, fmt.Errorf("failed to load recordings: %w", err)
	}

	// --- 3. Sequential Processing ---
	bc, err := RunBatch(recordings, cfg)
	if err != nil && !errors.Is(err, ErrNoUsableData) {
		return schema.BatchResult{}, err
	}
	bc.Warnings = append(loadWarnings, bc.Warnings...)
	result := ToResult(bc, cfg)

	if !shouldSuppressHeader(ctx) {
		for _, w := range result.Warnings {
			contract.LogRecordingWarning(w, cfg.UseColors)
		}
		if result.NoUsableData {
			contract.LogWarn("Batch produced no output", ErrNoUsableData)
		}
	}
	return result, nil
}

// logBatchHeader prints a concise header for a batch to stderr.
func logBatchHeader(cfg *contract.Config, files int) {
	if cfg.UseEmojis {
		contract.LogInfo("☕ Recordings: %d (pad: %ds, tolerance: %gs)", files, cfg.Grid.Pad, cfg.Grid.Tolerance)
		return
	}
	contract.LogInfo("Recordings: %d (pad: %ds, tolerance: %gs)", files, cfg.Grid.Pad, cfg.Grid.Tolerance)
}
