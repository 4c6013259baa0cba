package ingest

import (
	"strings"

	"github.com/huangsam/roastcurve/schema"
)

// Header keywords in priority order. Earlier keywords win over later ones.
var (
	timeKeywords      = []string{"elapsed", "time", "시간", "seconds", "sec"}
	primaryKeywords   = []string{"bean temp", "bt", "bean", "온도", "temperature", "temp"}
	secondaryKeywords = []string{"ror", "rate of rise", "rate", "delta", "Δ"}
)

// ResolveMapping finds the time, primary and secondary columns from a header
// row. Fields without a keyword match keep their fallback position; the
// fallback secondary is dropped when the header is too short to hold it.
// If discovery produces overlapping columns the fallback is returned whole.
func ResolveMapping(header []string, fallback schema.FieldMapping) schema.FieldMapping {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	m := fallback
	if i := findColumn(cols, timeKeywords, -1); i >= 0 {
		m.Time = i
	}
	if i := findColumn(cols, primaryKeywords, m.Time); i >= 0 {
		m.Primary = i
	}
	if i := findColumn(cols, secondaryKeywords, m.Time); i >= 0 && i != m.Primary {
		m.Secondary = i
	} else if m.Secondary >= len(cols) {
		m.Secondary = -1
	}

	if m.Time == m.Primary || (m.Secondary >= 0 && (m.Secondary == m.Time || m.Secondary == m.Primary)) {
		return fallback
	}
	return m
}

// findColumn returns the first column matching the highest priority keyword,
// skipping the excluded column. Short keywords must match the whole header.
func findColumn(cols []string, keywords []string, exclude int) int {
	for _, kw := range keywords {
		for i, c := range cols {
			if i == exclude || c == "" {
				continue
			}
			if len(kw) <= 3 {
				if c == kw || strings.HasPrefix(c, kw+" ") || strings.HasPrefix(c, kw+"(") {
					return i
				}
				continue
			}
			if strings.Contains(c, kw) {
				return i
			}
		}
	}
	return -1
}
