package algo

import (
	"github.com/huangsam/roastcurve/schema"
)

// DetectKeyPoints extracts the named events from one aligned series.
// It never fails; an event whose condition never occurs is left nil.
func DetectKeyPoints(grid schema.Grid, series schema.AlignedSeries, cfg schema.DetectionConfig) schema.KeyPoints {
	n := min(grid.Len(), series.Len())
	if n == 0 {
		return schema.KeyPoints{}
	}

	return schema.KeyPoints{
		TurningPoint: findTurningPoint(grid, series, n, cfg),
		Yellowing:    findCrossing(grid, series, n, cfg.YellowingTemp, schema.Yellowing),
		FirstEvent:   findCrossing(grid, series, n, cfg.FirstEventTemp, schema.FirstEvent),
		EndPoint:     findEndPoint(grid, series, n),
	}
}

// findTurningPoint returns the lowest secondary value in slots 1 up to the
// search window, counting only slots at or after the first primary reading
// above the minimum. The earliest slot wins a tie.
func findTurningPoint(grid schema.Grid, series schema.AlignedSeries, n int, cfg schema.DetectionConfig) *schema.KeyPoint {
	limit := min(n, cfg.TurningPointWindow)

	// The window latches open at the first reading above the minimum.
	charged := false
	best := -1
	for i := 0; i < limit; i++ {
		if p := series.Primary[i]; p != nil && *p > cfg.TurningPointMin {
			charged = true
		}
		if i == 0 || !charged {
			continue
		}
		if series.Primary[i] == nil || series.Secondary[i] == nil {
			continue
		}
		if best < 0 || *series.Secondary[i] < *series.Secondary[best] {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return newKeyPoint(schema.TurningPoint, grid, series, best)
}

// findCrossing returns the first slot whose primary value rises above the
// threshold from a present value at or below it in the slot just before.
// A series with every other slot absent therefore has no crossings.
func findCrossing(grid schema.Grid, series schema.AlignedSeries, n int, threshold float64, event schema.EventType) *schema.KeyPoint {
	for i := 0; i+1 < n; i++ {
		cur, next := series.Primary[i], series.Primary[i+1]
		if cur == nil || next == nil {
			continue
		}
		if *cur <= threshold && *next > threshold {
			return newKeyPoint(event, grid, series, i+1)
		}
	}
	return nil
}

func findEndPoint(grid schema.Grid, series schema.AlignedSeries, n int) *schema.KeyPoint {
	for i := n - 1; i >= 0; i-- {
		if series.Primary[i] != nil {
			return newKeyPoint(schema.EndPoint, grid, series, i)
		}
	}
	return nil
}

func newKeyPoint(event schema.EventType, grid schema.Grid, series schema.AlignedSeries, i int) *schema.KeyPoint {
	kp := &schema.KeyPoint{
		Event: event,
		Time:  grid.At(i),
		Value: *series.Primary[i],
		Index: i,
	}
	if s := series.Secondary[i]; s != nil {
		kp.Secondary = schema.Float(*s)
	}
	return kp
}
