package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/roastcurve/schema"
)

// timeParser converts a time cell into elapsed seconds.
type timeParser func(string) (float64, error)

// valueSuffixes are unit markers stripped from numeric cells.
var valueSuffixes = []string{"°C", "°F", "℃", "℉"}

// parseTable turns a sheet of string cells into a Recording. The first non-blank
// row is a header when its time cell does not parse; a header drives column
// discovery unless the mapping is forced.
func (r *Reader) parseTable(rows [][]string, parseTime timeParser) schema.Recording {
	mapping := r.mapping
	start := firstNonBlank(rows)
	if start < len(rows) {
		if _, err := parseTime(cell(rows[start], mapping.Time)); err != nil {
			if !r.forced {
				mapping = ResolveMapping(rows[start], mapping)
			}
			start++
		}
	}

	var rec schema.Recording
	for _, row := range rows[min(start, len(rows)):] {
		if isBlank(row) {
			continue
		}
		seconds, err := parseTime(cell(row, mapping.Time))
		if err != nil {
			rec.Malformed++
			continue
		}
		primary, err := parseNumber(cell(row, mapping.Primary))
		if err != nil {
			rec.Malformed++
			continue
		}
		s := schema.RawSample{Seconds: seconds, Primary: primary}
		if mapping.Secondary >= 0 {
			if v, err := parseNumber(cell(row, mapping.Secondary)); err == nil {
				s.Secondary = schema.Float(v)
			}
		}
		rec.Samples = append(rec.Samples, s)
		if seconds > rec.MaxSeconds {
			rec.MaxSeconds = seconds
		}
	}
	return rec
}

// parseNumber parses a finite float, ignoring surrounding spaces and a unit suffix.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, suffix := range valueSuffixes {
		s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
	}
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func firstNonBlank(rows [][]string) int {
	for i, row := range rows {
		if !isBlank(row) {
			return i
		}
	}
	return len(rows)
}
