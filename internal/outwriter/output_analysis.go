package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/parquet"
	"github.com/huangsam/roastcurve/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// analysisRecording is the per-recording summary of the analyze output.
type analysisRecording struct {
	ID             string           `json:"id"`
	RecordingIndex int              `json:"recordingIndex"`
	Color          string           `json:"color"`
	KeyPoints      schema.KeyPoints `json:"keyPoints"`
}

// analysisOutput is the JSON and YAML layout of the analyze output.
type analysisOutput struct {
	BatchID      string                    `json:"batchId"`
	NoUsableData bool                      `json:"noUsableData"`
	Slots        int                       `json:"slots"`
	Recordings   []analysisRecording       `json:"recordings"`
	Annotations  []schema.AnnotationSet    `json:"annotations"`
	Warnings     []schema.RecordingWarning `json:"warnings"`
	Diagnostics  schema.Diagnostics        `json:"diagnostics"`
}

// WriteAnalysisResults outputs the annotations of a batch, dispatching based on the output format configured.
func WriteAnalysisResults(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, newAnalysisOutput(result))
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, newAnalysisOutput(result))
		}, "Wrote YAML")
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisCSV(w, result, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteAnnotationsParquet(parquet.AnnotationRows(result), path)
		})
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

func newAnalysisOutput(result schema.BatchResult) analysisOutput {
	out := analysisOutput{
		BatchID:      result.BatchID,
		NoUsableData: result.NoUsableData,
		Slots:        len(result.Times),
		Recordings:   make([]analysisRecording, 0, len(result.Recordings)),
		Annotations:  result.Annotations,
		Warnings:     result.Warnings,
		Diagnostics:  result.Diagnostics,
	}
	for _, rec := range result.Recordings {
		out.Recordings = append(out.Recordings, analysisRecording{
			ID:             rec.ID,
			RecordingIndex: rec.RecordingIndex,
			Color:          rec.Color,
			KeyPoints:      rec.KeyPoints,
		})
	}
	return out
}

// writeAnalysisTable generates and writes the human-readable table.
func writeAnalysisTable(result schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if result.NoUsableData {
		return writeNoUsableData(writer, result)
	}
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"#", "Recording", "Event", "Time", "Value", "X", "Y"}
	if cfg.Detail {
		headers = append(headers, "RoR", "Connector")
	}
	headers = append(headers, "Label")
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	idWidth := GetMaxTableIDWidth(cfg)
	var data [][]string
	for _, set := range result.Annotations {
		row := []string{
			strconv.Itoa(set.Offset.RecordingIndex + 1),         // Layout position
			contract.TruncatePath(set.Key.RecordingID, idWidth), // Recording
			eventLabel(set.Key.Event, cfg),                      // Event
			schema.FormatClock(set.Marker.Time),                 // Time
			fmtFloat(set.Marker.Value),                          // Value
			fmtFloat(set.Offset.XAdjust),                        // X
			fmtFloat(set.Offset.YAdjust),                        // Y
		}
		if cfg.Detail {
			row = append(
				row,
				formatOptional(secondaryAt(result, set.Key), fmtFloat), // RoR
				formatConnector(set.Connector, fmtFloat),               // Connector
			)
		}
		row = append(row, joinLabel(set.Label.Lines))
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d annotations for %d recordings on %d slots\n",
		len(result.Annotations), len(result.Recordings), len(result.Times)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Batch %s completed in %v with %d workers\n", result.BatchID, duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeAnalysisCSV writes one row per annotation.
func writeAnalysisCSV(w io.Writer, result schema.BatchResult, fmtFloat func(float64) string) error {
	header := []string{
		"recording",
		"recording_index",
		"event",
		"time",
		"slot",
		"value",
		"secondary",
		"x_adjust",
		"y_adjust",
		"connector_from",
		"connector_to",
		"color",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, set := range result.Annotations {
			var from, to string
			if c := set.Connector; c != nil {
				from, to = fmtFloat(c.FromY), fmtFloat(c.ToY)
			}
			rec := []string{
				set.Key.RecordingID,
				strconv.Itoa(set.Offset.RecordingIndex),
				contract.GetPlainLabel(set.Key.Event),
				schema.FormatClock(set.Marker.Time),
				strconv.Itoa(set.Marker.Index),
				fmtFloat(set.Marker.Value),
				formatOptional(secondaryAt(result, set.Key), fmtFloat),
				fmtFloat(set.Offset.XAdjust),
				fmtFloat(set.Offset.YAdjust),
				from,
				to,
				set.Marker.Color,
				joinLabel(set.Label.Lines),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// secondaryAt returns the rate of rise recorded with the key point behind an annotation.
func secondaryAt(result schema.BatchResult, key schema.AnnotationKey) *float64 {
	for _, rec := range result.Recordings {
		if rec.ID != key.RecordingID {
			continue
		}
		if kp := rec.KeyPoints.Get(key.Event); kp != nil {
			return kp.Secondary
		}
	}
	return nil
}
