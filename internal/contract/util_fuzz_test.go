package contract

import (
	"strings"
	"testing"
)

// FuzzShouldIgnore fuzzes the ShouldIgnore function with random paths and exclude patterns.
func FuzzShouldIgnore(f *testing.F) {
	seeds := []struct {
		path     string
		excludes string // comma-separated
	}{
		{"roasts/2024-01-05.csv", "*.bak"},
		{"archive/old.xlsx", "archive/"},
		{"kenya-test.csv", "*-test.csv"},
		{"notes.txt", ".txt"},
		{"", ""},
		{"very/long/path/to/roast.parquet", "**/tmp/**"},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.excludes)
	}

	f.Fuzz(func(_ *testing.T, path string, excludesStr string) {
		excludes := []string{}
		if excludesStr != "" {
			for ex := range strings.SplitSeq(excludesStr, ",") {
				if trimmed := strings.TrimSpace(ex); trimmed != "" {
					excludes = append(excludes, trimmed)
				}
			}
		}
		_ = ShouldIgnore(path, excludes)
	})
}

// FuzzParsePalette checks that accepted palettes only hold hex colors.
func FuzzParsePalette(f *testing.F) {
	f.Add("#2563eb,#dc2626")
	f.Add("")
	f.Add("red")
	f.Add("#abc, #ABCDEF ,")

	f.Fuzz(func(t *testing.T, s string) {
		palette, err := ParsePalette(s)
		if err != nil {
			return
		}
		if len(palette) == 0 {
			t.Fatalf("empty palette accepted for %q", s)
		}
		for _, c := range palette {
			if !hexColorPattern.MatchString(c) {
				t.Fatalf("invalid color %q accepted", c)
			}
		}
	})
}
