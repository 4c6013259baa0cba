// Package parquet provides data structures and functions for exchanging roast
// curve data as Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/roastcurve/schema"
	"github.com/parquet-go/parquet-go"
)

// SampleRow is one raw reading of a recording. It is the input layout for
// recordings stored as Parquet.
type SampleRow struct {
	// Seconds is the elapsed time since charge
	Seconds float64 `parquet:"seconds,snappy"`

	// Primary is the bean temperature
	Primary float64 `parquet:"primary,snappy"`

	// Secondary is the rate of rise (nullable)
	Secondary *float64 `parquet:"secondary,optional,snappy"`
}

// SeriesRow is one grid slot of one recording's aligned series.
type SeriesRow struct {
	// BatchID identifies the batch that produced the grid
	BatchID string `parquet:"batch_id,snappy,dict"`

	// RecordingID is the caller-supplied identifier, usually the file name
	RecordingID string `parquet:"recording_id,snappy,dict"`

	// Slot is the grid index
	Slot int32 `parquet:"slot,snappy"`

	// Clock is the slot time as MM:SS
	Clock string `parquet:"clock,snappy"`

	// Primary is the aligned bean temperature (nullable)
	Primary *float64 `parquet:"primary,optional,snappy"`

	// Secondary is the aligned rate of rise (nullable)
	Secondary *float64 `parquet:"secondary,optional,snappy"`
}

// AnnotationRow is one key point with its label layout.
type AnnotationRow struct {
	BatchID        string   `parquet:"batch_id,snappy,dict"`
	RecordingID    string   `parquet:"recording_id,snappy,dict"`
	RecordingIndex int32    `parquet:"recording_index,snappy"`
	Event          string   `parquet:"event,snappy,dict"`
	Seconds        int32    `parquet:"seconds,snappy"`
	Slot           int32    `parquet:"slot,snappy"`
	Value          float64  `parquet:"value,snappy"`
	Secondary      *float64 `parquet:"secondary,optional,snappy"`
	XAdjust        float64  `parquet:"x_adjust,snappy"`
	YAdjust        float64  `parquet:"y_adjust,snappy"`
	ConnectorFrom  *float64 `parquet:"connector_from,optional,snappy"`
	ConnectorTo    *float64 `parquet:"connector_to,optional,snappy"`
	Color          string   `parquet:"color,snappy,dict"`
	Label          string   `parquet:"label,snappy"`
}

// ReadSamples reads every SampleRow from a Parquet file.
func ReadSamples(path string) ([]SampleRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[SampleRow](file)
	defer func() { _ = reader.Close() }()

	rows := make([]SampleRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}
	return rows[:n], nil
}

// WriteSamplesParquet writes raw samples to a Parquet file.
func WriteSamplesParquet(data []SampleRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteSeriesParquet writes aligned series rows to a Parquet file.
func WriteSeriesParquet(data []SeriesRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteAnnotationsParquet writes annotation rows to a Parquet file.
func WriteAnnotationsParquet(data []AnnotationRow, outputPath string) error {
	return writeRows(data, outputPath)
}

func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// SeriesRows flattens every recording of a batch into one row per grid slot.
func SeriesRows(result schema.BatchResult) []SeriesRow {
	var rows []SeriesRow
	for _, rec := range result.Recordings {
		for i := 0; i < rec.Series.Len(); i++ {
			row := SeriesRow{
				BatchID:     result.BatchID,
				RecordingID: rec.ID,
				Slot:        int32(i),
				Clock:       clockAt(result.Times, i),
			}
			if v := rec.Series.Primary[i]; v != nil {
				row.Primary = schema.Float(*v)
			}
			if v := rec.Series.Secondary[i]; v != nil {
				row.Secondary = schema.Float(*v)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// AnnotationRows converts the annotations of a batch into rows.
func AnnotationRows(result schema.BatchResult) []AnnotationRow {
	rows := make([]AnnotationRow, 0, len(result.Annotations))
	for _, set := range result.Annotations {
		row := AnnotationRow{
			BatchID:        result.BatchID,
			RecordingID:    set.Key.RecordingID,
			RecordingIndex: int32(set.Offset.RecordingIndex),
			Event:          string(set.Key.Event),
			Seconds:        int32(set.Marker.Time),
			Slot:           int32(set.Marker.Index),
			Value:          set.Marker.Value,
			XAdjust:        set.Offset.XAdjust,
			YAdjust:        set.Offset.YAdjust,
			Color:          set.Marker.Color,
			Label:          strings.Join(set.Label.Lines, " | "),
		}
		if kp := keyPointFor(result, set.Key); kp != nil && kp.Secondary != nil {
			row.Secondary = schema.Float(*kp.Secondary)
		}
		if c := set.Connector; c != nil {
			row.ConnectorFrom = schema.Float(c.FromY)
			row.ConnectorTo = schema.Float(c.ToY)
		}
		rows = append(rows, row)
	}
	return rows
}

func keyPointFor(result schema.BatchResult, key schema.AnnotationKey) *schema.KeyPoint {
	for _, rec := range result.Recordings {
		if rec.ID == key.RecordingID {
			return rec.KeyPoints.Get(key.Event)
		}
	}
	return nil
}

func clockAt(times []string, i int) string {
	if i < len(times) {
		return times[i]
	}
	return schema.FormatClock(schema.TimeStamp(i))
}

