package core

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/huangsam/roastcurve/core/algo"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
)

// ErrNoUsableData is returned when no recording survives sanitizing and alignment.
var ErrNoUsableData = errors.New("no usable data in any recording")

// RunBatch takes loaded recordings through grid, alignment, detection, layout
// and annotation. Every call starts a fresh BatchContext with its own ID.
//
// Colors follow the input position so that a recording keeps its color even
// when an earlier one is excluded. Layout positions count usable recordings only.
// When nothing is usable the returned context is empty and the error is ErrNoUsableData.
func RunBatch(recordings []schema.Recording, cfg *contract.Config) (*schema.BatchContext, error) {
	bc := &schema.BatchContext{
		ID:          uuid.NewString(),
		Geometry:    cfg.Geometry,
		Annotations: make(map[schema.AnnotationKey]schema.AnnotationSet),
	}

	// 1. Sanitize and join on the largest elapsed time
	states := make([]*schema.RecordingState, 0, len(recordings))
	maxSeconds := -1.0
	for i, rec := range recordings {
		samples, dropped := algo.Sanitize(rec.Samples, cfg.Grid.MaxSeconds)
		if len(samples) == 0 {
			bc.Warnings = append(bc.Warnings, emptyWarning(rec.ID, "no valid samples"))
			continue
		}
		states = append(states, &schema.RecordingState{
			ID:         rec.ID,
			InputIndex: i,
			Color:      schema.PaletteColor(cfg.Palette, i),
			Samples:    samples,
			Malformed:  rec.Malformed + dropped,
		})
		maxSeconds = max(maxSeconds, algo.MaxSeconds(samples))
		if rec.MaxSeconds <= cfg.Grid.MaxSeconds {
			maxSeconds = max(maxSeconds, rec.MaxSeconds)
		}
	}
	if len(states) == 0 {
		return bc, ErrNoUsableData
	}

	// 2. Build the shared grid
	bc.Grid = algo.BuildGrid(maxSeconds, cfg.Grid.Pad)
	if bc.Grid.Empty() {
		return bc, ErrNoUsableData
	}
	if bc.Geometry.SlotCount <= 0 {
		bc.Geometry.SlotCount = bc.Grid.Len()
	}

	// 3. Align and detect
	for _, st := range states {
		st.Series, st.Misses = algo.Align(st.Samples, bc.Grid, cfg.Grid.Tolerance)
		if st.Series.Filled() == 0 {
			bc.Warnings = append(bc.Warnings, emptyWarning(st.ID, "no samples aligned to the grid"))
			continue
		}
		st.RecordingIndex = len(bc.Recordings)
		st.KeyPoints = algo.DetectKeyPoints(bc.Grid, st.Series, cfg.Detection)
		bc.Recordings = append(bc.Recordings, st)
	}
	if len(bc.Recordings) == 0 {
		return bc, ErrNoUsableData
	}

	// 4. Lay out and assemble every key point
	total := len(bc.Recordings)
	for _, st := range bc.Recordings {
		for _, ev := range schema.AllEvents {
			kp := st.KeyPoints.Get(ev)
			if kp == nil {
				continue
			}
			offset := algo.ComputeOffset(ev, *kp, bc.Geometry, total, st.RecordingIndex, cfg.Layout)
			set := algo.Assemble(ev, *kp, offset, st.Color, st.ID, cfg.Annotation)
			bc.Annotations[set.Key] = set
		}
	}
	return bc, nil
}

// ToResult converts a BatchContext into its rendering-facing form.
// Annotations are ordered by recording, then by event.
func ToResult(bc *schema.BatchContext, cfg *contract.Config) schema.BatchResult {
	result := schema.BatchResult{
		BatchID:      bc.ID,
		NoUsableData: len(bc.Recordings) == 0,
		Times:        bc.Grid.Labels(),
		Recordings:   make([]schema.RecordingResult, 0, len(bc.Recordings)),
		Annotations:  make([]schema.AnnotationSet, 0, len(bc.Annotations)),
		Warnings:     append([]schema.RecordingWarning(nil), bc.Warnings...),
		Diagnostics: schema.Diagnostics{
			Malformed:       make(map[string]int),
			AlignmentMisses: make(map[string]int),
		},
	}

	for _, st := range bc.Recordings {
		primary, secondary := algo.SeriesStyles(st.Color)
		result.Recordings = append(result.Recordings, schema.RecordingResult{
			ID:             st.ID,
			RecordingIndex: st.RecordingIndex,
			Color:          st.Color,
			PrimaryStyle:   algo.HighlightStyle(primary, st.ID, cfg.Hover),
			SecondaryStyle: algo.HighlightStyle(secondary, st.ID, cfg.Hover),
			Series:         st.Series,
			KeyPoints:      st.KeyPoints,
		})
		result.Diagnostics.Malformed[st.ID] = st.Malformed
		result.Diagnostics.AlignmentMisses[st.ID] = st.Misses
	}

	for _, set := range bc.Annotations {
		result.Annotations = append(result.Annotations, set)
	}
	sort.Slice(result.Annotations, func(i, j int) bool {
		a, b := result.Annotations[i], result.Annotations[j]
		if a.Offset.RecordingIndex != b.Offset.RecordingIndex {
			return a.Offset.RecordingIndex < b.Offset.RecordingIndex
		}
		return eventOrder(a.Key.Event) < eventOrder(b.Key.Event)
	})
	return result
}

// SetVisibility returns a copy of sets with Visible set for one recording.
// Sets of other recordings are untouched.
func SetVisibility(sets []schema.AnnotationSet, recordingID string, visible bool) []schema.AnnotationSet {
	out := make([]schema.AnnotationSet, len(sets))
	copy(out, sets)
	for i := range out {
		if out[i].Key.RecordingID == recordingID {
			out[i].Visible = visible
		}
	}
	return out
}

func emptyWarning(id, msg string) schema.RecordingWarning {
	return schema.RecordingWarning{RecordingID: id, Kind: schema.WarnEmpty, Message: msg}
}

func eventOrder(ev schema.EventType) int {
	for i, e := range schema.AllEvents {
		if e == ev {
			return i
		}
	}
	return len(schema.AllEvents)
}
