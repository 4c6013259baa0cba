package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   TimeStamp
		want string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{90, "01:30"},
		{599, "09:59"},
		{3725, "62:05"}, // minutes do not wrap at the hour
		{-75, "-01:15"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.in), "seconds=%d", tt.in)
	}
}

func TestParseClock(t *testing.T) {
	valid := map[string]float64{
		"0":         0,
		"12.5":      12.5,
		" 90 ":      90,
		"01:30":     90,
		"1:05":      65,
		"10:00.5":   600.5,
		"1:02:03":   3723,
		"75:00":     4500, // leading field may exceed 59
		"00:59.999": 59.999,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 1e-9, in)
	}

	for _, in := range []string{"", "abc", "-3", "NaN", "Inf", "1:60", "1:75:00", "a:10", "1:2:3:4", "-1:30"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFloat(t *testing.T) {
	a, b := Float(1.5), Float(1.5)
	assert.Equal(t, 1.5, *a)
	assert.NotSame(t, a, b)
}

func TestPaletteColor(t *testing.T) {
	palette := []string{"#111111", "#222222"}
	assert.Equal(t, "#111111", PaletteColor(palette, 0))
	assert.Equal(t, "#222222", PaletteColor(palette, 1))
	assert.Equal(t, "#111111", PaletteColor(palette, 2)) // wraps
	assert.Equal(t, "#222222", PaletteColor(palette, -1))
	assert.Equal(t, DefaultPalette[3], PaletteColor(nil, 3))
}
