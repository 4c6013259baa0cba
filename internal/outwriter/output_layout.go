package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/parquet"
	"github.com/huangsam/roastcurve/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteLayoutResult outputs one computed annotation, dispatching based on the output format configured.
func WriteLayoutResult(set schema.AnnotationSet, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, set)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, set)
		}, "Wrote YAML")
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLayoutCSV(w, set, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			rows := parquet.AnnotationRows(schema.BatchResult{Annotations: []schema.AnnotationSet{set}})
			return parquet.WriteAnnotationsParquet(rows, path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLayoutTable(set, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeLayoutTable prints the annotation as a two-column property table.
func writeLayoutTable(set schema.AnnotationSet, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := [][]string{
		{"Event", eventLabel(set.Key.Event, cfg)},
		{"Recording Index", strconv.Itoa(set.Offset.RecordingIndex)},
		{"Point", fmt.Sprintf("%s @ %s", schema.FormatClock(set.Marker.Time), fmtFloat(set.Marker.Value))},
		{"X Adjust", fmtFloat(set.Offset.XAdjust)},
		{"Y Adjust", fmtFloat(set.Offset.YAdjust)},
		{"Connector", formatConnector(set.Connector, fmtFloat)},
		{"Color", set.Marker.Color},
		{"Label", joinLabel(set.Label.Lines)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeLayoutCSV writes the annotation as a single CSV row.
func writeLayoutCSV(w io.Writer, set schema.AnnotationSet, fmtFloat func(float64) string) error {
	header := []string{"event", "recording_index", "slot", "value", "x_adjust", "y_adjust", "connector_from", "connector_to", "color", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		var from, to string
		if c := set.Connector; c != nil {
			from, to = fmtFloat(c.FromY), fmtFloat(c.ToY)
		}
		return cw.Write([]string{
			contract.GetPlainLabel(set.Key.Event),
			strconv.Itoa(set.Offset.RecordingIndex),
			strconv.Itoa(set.Marker.Index),
			fmtFloat(set.Marker.Value),
			fmtFloat(set.Offset.XAdjust),
			fmtFloat(set.Offset.YAdjust),
			from,
			to,
			set.Marker.Color,
			joinLabel(set.Label.Lines),
		})
	})
}
