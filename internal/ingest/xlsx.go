package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/roastcurve/schema"
	"github.com/xuri/excelize/v2"
)

const secondsPerDay = 86400

// readXLSX parses the first sheet of an Excel workbook. Cells are read raw so
// that time cells stored as day fractions can be converted exactly.
func (r *Reader) readXLSX(path string) (schema.Recording, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return schema.Recording{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return schema.Recording{}, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return schema.Recording{}, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}
	return r.parseTable(rows, parseExcelTime), nil
}

// parseExcelTime accepts "MM:SS" text and numeric cells. A numeric value
// below one is an Excel time of day, anything else is plain seconds.
func parseExcelTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		return schema.ParseClock(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid time value %q", s)
	}
	if v < 1 {
		return math.Round(v*secondsPerDay*1000) / 1000, nil
	}
	return v, nil
}
