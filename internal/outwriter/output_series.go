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

// WriteSeriesResults outputs the aligned series of a batch, dispatching based on the output format configured.
// JSON and YAML carry the complete batch result, styles included.
func WriteSeriesResults(result schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.YAMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, result)
		}, "Wrote YAML")
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesCSV(w, result, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
		return nil
	case schema.ParquetOut:
		return writeParquetFile(cfg.OutputFile, func(path string) error {
			return parquet.WriteSeriesParquet(parquet.SeriesRows(result), path)
		})
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeSeriesTable prints the primary value of each recording per slot. Only
// tick slots are shown unless detail is on, which adds every slot and the rate of rise.
func writeSeriesTable(result schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if result.NoUsableData {
		return writeNoUsableData(writer, result)
	}
	table := tablewriter.NewWriter(writer)

	idWidth := GetMaxTableIDWidth(cfg)
	headers := []string{"Time"}
	for _, rec := range result.Recordings {
		id := contract.TruncatePath(rec.ID, idWidth)
		headers = append(headers, id)
		if cfg.Detail {
			headers = append(headers, id+" RoR")
		}
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, clock := range result.Times {
		if !cfg.Detail && i%schema.TickInterval != 0 {
			continue
		}
		row := []string{clock}
		for _, rec := range result.Recordings {
			row = append(row, formatSlot(rec.Series.Primary, i, fmtFloat))
			if cfg.Detail {
				row = append(row, formatSlot(rec.Series.Secondary, i, fmtFloat))
			}
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Aligned %d recordings on %d slots in %v\n", len(result.Recordings), len(result.Times), duration)
	return err
}

// formatSlot formats slot i of a series, blank when absent.
func formatSlot(values []*float64, i int, fmtFloat func(float64) string) string {
	if i >= len(values) {
		return ""
	}
	return formatOptional(values[i], fmtFloat)
}

// writeSeriesCSV writes one row per slot with a primary and secondary column per recording.
func writeSeriesCSV(w io.Writer, result schema.BatchResult, fmtFloat func(float64) string) error {
	header := []string{"slot", "time"}
	for _, rec := range result.Recordings {
		header = append(header, rec.ID+":primary", rec.ID+":secondary")
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, clock := range result.Times {
			row := []string{strconv.Itoa(i), clock}
			for _, rec := range result.Recordings {
				row = append(row,
					formatSlot(rec.Series.Primary, i, fmtFloat),
					formatSlot(rec.Series.Secondary, i, fmtFloat),
				)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
