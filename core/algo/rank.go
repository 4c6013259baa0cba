package algo

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	datePattern   = regexp.MustCompile(`\d{4}-?\d{2}-?\d{2}`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// RankRecordings orders recording paths the way roasters name their logs:
// by a date embedded in the base name when both names have one, otherwise by
// the first number in the name, otherwise lexically. The input is not modified.
func RankRecordings(paths []string) []string {
	out := make([]string, len(paths))
	copy(out, paths)
	sort.SliceStable(out, func(i, j int) bool {
		return recordingLess(filepath.Base(out[i]), filepath.Base(out[j]))
	})
	return out
}

func recordingLess(a, b string) bool {
	da, okA := nameDate(a)
	db, okB := nameDate(b)
	if okA && okB && !da.Equal(db) {
		return da.Before(db)
	}
	na, okA := nameNumber(a)
	nb, okB := nameNumber(b)
	if okA && okB && na != nb {
		return na < nb
	}
	return a < b
}

func nameDate(name string) (time.Time, bool) {
	m := datePattern.FindString(name)
	if m == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", strings.ReplaceAll(m, "-", ""))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func nameNumber(name string) (int64, bool) {
	m := numberPattern.FindString(name)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
