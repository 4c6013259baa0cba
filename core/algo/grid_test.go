package algo

import (
	"math"
	"testing"

	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/assert"
)

// TestBuildGrid tests grid length and spacing.
func TestBuildGrid(t *testing.T) {
	tests := []struct {
		name       string
		maxSeconds float64
		pad        int
		expected   int
	}{
		{"whole seconds", 600, 30, 631},
		{"fractional max rounds up", 0.2, 0, 2},
		{"zero max keeps pad", 0, 90, 91},
		{"zero everything", 0, 0, 1},
		{"negative max", -1, 30, 0},
		{"negative pad", 10, -1, 0},
		{"nan", math.NaN(), 30, 0},
		{"inf", math.Inf(1), 30, 0},
		{"max past limit", 1e14, 30, 0},
		{"overflowing max", 1e19, 0, 0},
		{"pad past limit", 10, schema.GridSecondsLimit + 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildGrid(tt.maxSeconds, tt.pad)
			assert.Equal(t, tt.expected, grid.Len())
			for i := 0; i < grid.Len(); i++ {
				assert.Equal(t, schema.TimeStamp(i), grid.At(i))
			}
		})
	}
}

// FuzzBuildGrid checks the length and step for any valid input.
func FuzzBuildGrid(f *testing.F) {
	f.Add(600.0, 30)
	f.Add(0.5, 0)
	f.Add(1234.9, 90)

	f.Fuzz(func(t *testing.T, maxSeconds float64, pad int) {
		if math.IsNaN(maxSeconds) || math.IsInf(maxSeconds, 0) || maxSeconds < 0 || maxSeconds > 1e5 {
			return
		}
		if pad < 0 || pad > 1e4 {
			return
		}
		grid := BuildGrid(maxSeconds, pad)
		assert.Equal(t, int(math.Ceil(maxSeconds))+pad+1, grid.Len())
		times := grid.Times()
		for i := 1; i < len(times); i++ {
			assert.Equal(t, times[i-1]+1, times[i])
		}
	})
}
