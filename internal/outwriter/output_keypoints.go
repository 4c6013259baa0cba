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

// keyPointRow is one detected key point in flat form.
type keyPointRow struct {
	RecordingID    string           `json:"recordingId"`
	RecordingIndex int              `json:"recordingIndex"`
	Event          schema.EventType `json:"event"`
	Code           string           `json:"code"`
	Time           schema.TimeStamp `json:"time"`
	Clock          string           `json:"clock"`
	Slot           int              `json:"slot"`
	Value          float64          `json:"value"`
	Secondary      *float64         `json:"secondary,omitempty"`
}

// WriteKeyPointResults outputs the key points of a batch, dispatching based on the output format configured.
func WriteKeyPointResults(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, keyPointRows(result))
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, keyPointRows(result))
		}, "Wrote YAML")
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeKeyPointCSV(w, result, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteAnnotationsParquet(parquet.AnnotationRows(result), path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeKeyPointTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// keyPointRows flattens the key points of every recording in display order.
func keyPointRows(result schema.BatchResult) []keyPointRow {
	rows := make([]keyPointRow, 0, 4*len(result.Recordings))
	for _, rec := range result.Recordings {
		for _, kp := range rec.KeyPoints.Present() {
			rows = append(rows, keyPointRow{
				RecordingID:    rec.ID,
				RecordingIndex: rec.RecordingIndex,
				Event:          kp.Event,
				Code:           kp.Event.Code(),
				Time:           kp.Time,
				Clock:          schema.FormatClock(kp.Time),
				Slot:           kp.Index,
				Value:          kp.Value,
				Secondary:      kp.Secondary,
			})
		}
	}
	return rows
}

// writeKeyPointTable prints one row per recording with a column per event.
func writeKeyPointTable(result schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	if result.NoUsableData {
		return writeNoUsableData(writer, result)
	}
	table := tablewriter.NewWriter(writer)

	headers := []string{"#", "Recording"}
	for _, ev := range schema.AllEvents {
		headers = append(headers, ev.Code())
	}
	if cfg.Detail {
		headers = append(headers, "Malformed", "Misses")
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	idWidth := GetMaxTableIDWidth(cfg)
	var data [][]string
	for _, rec := range result.Recordings {
		row := []string{
			strconv.Itoa(rec.RecordingIndex + 1),
			contract.TruncatePath(rec.ID, idWidth),
		}
		for _, ev := range schema.AllEvents {
			row = append(row, formatKeyPointCell(rec.KeyPoints.Get(ev), fmtFloat))
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf(intFmt, result.Diagnostics.Malformed[rec.ID]),       // Malformed
				fmt.Sprintf(intFmt, result.Diagnostics.AlignmentMisses[rec.ID]), // Misses
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Detected key points for %d recordings in %v\n", len(result.Recordings), duration)
	return err
}

// formatKeyPointCell renders a key point as "MM:SS @ value", or "-" when absent.
func formatKeyPointCell(kp *schema.KeyPoint, fmtFloat func(float64) string) string {
	if kp == nil {
		return "-"
	}
	return schema.FormatClock(kp.Time) + " @ " + fmtFloat(kp.Value)
}

// writeKeyPointCSV writes one row per detected key point.
func writeKeyPointCSV(w io.Writer, result schema.BatchResult, fmtFloat func(float64) string) error {
	header := []string{"recording", "recording_index", "event", "time", "slot", "value", "secondary"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range keyPointRows(result) {
			rec := []string{
				row.RecordingID,
				strconv.Itoa(row.RecordingIndex),
				row.Code,
				row.Clock,
				strconv.Itoa(row.Slot),
				fmtFloat(row.Value),
				formatOptional(row.Secondary, fmtFloat),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
