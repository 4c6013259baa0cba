package algo

import (
	"math"

	"github.com/huangsam/roastcurve/schema"
)

// Sanitize prepares a recording's raw samples for alignment. Samples with a
// non-finite or negative time, a time past maxSeconds, or a non-finite
// primary value are malformed and dropped. Samples that go back in time are dropped too. A sample that
// repeats the previous timestamp replaces the earlier one.
// It returns the kept samples and the number of malformed ones.
func Sanitize(samples []schema.RawSample, maxSeconds float64) ([]schema.RawSample, int) {
	out := make([]schema.RawSample, 0, len(samples))
	malformed := 0
	for _, s := range samples {
		if !validSample(s) || s.Seconds > maxSeconds {
			malformed++
			continue
		}
		if n := len(out); n > 0 {
			prev := out[n-1].Seconds
			if s.Seconds < prev {
				continue
			}
			if s.Seconds == prev {
				out[n-1] = s
				continue
			}
		}
		out = append(out, s)
	}
	return out, malformed
}

func validSample(s schema.RawSample) bool {
	if math.IsNaN(s.Seconds) || math.IsInf(s.Seconds, 0) || s.Seconds < 0 {
		return false
	}
	if math.IsNaN(s.Primary) || math.IsInf(s.Primary, 0) {
		return false
	}
	return true
}

// MaxSeconds returns the largest sample time, or 0 for no samples.
func MaxSeconds(samples []schema.RawSample) float64 {
	maxSec := 0.0
	for _, s := range samples {
		if s.Seconds > maxSec {
			maxSec = s.Seconds
		}
	}
	return maxSec
}

// Align places samples on the grid. Each sample goes to its nearest slot when
// the distance is within tolerance; the first sample to reach a slot keeps it.
// Non-finite secondary values are stored as absent.
// It returns the dense series and the number of samples that found no slot.
func Align(samples []schema.RawSample, grid schema.Grid, tolerance float64) (schema.AlignedSeries, int) {
	series := schema.AlignedSeries{
		Primary:   make([]*float64, grid.Len()),
		Secondary: make([]*float64, grid.Len()),
	}

	misses := 0
	for _, s := range samples {
		idx, diff, ok := grid.Nearest(s.Seconds)
		if !ok || diff > tolerance || math.IsNaN(s.Primary) {
			misses++
			continue
		}
		if series.Primary[idx] != nil {
			continue // first writer wins
		}
		series.Primary[idx] = schema.Float(s.Primary)
		if s.Secondary != nil && !math.IsNaN(*s.Secondary) && !math.IsInf(*s.Secondary, 0) {
			series.Secondary[idx] = schema.Float(*s.Secondary)
		}
	}
	return series, misses
}
