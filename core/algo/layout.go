package algo

import (
	"math"

	"github.com/huangsam/roastcurve/schema"
)

// ComputeOffset returns the pixel displacement of a key point label.
//
// Labels are fanned out by recording index: the vertical side alternates
// with index parity and every two recordings share a distance before the
// next step out. The horizontal side depends on where the point falls along
// the time axis. The result depends only on the arguments.
func ComputeOffset(
	event schema.EventType,
	point schema.KeyPoint,
	geometry schema.ChartGeometry,
	totalRecordings, recordingIndex int,
	cfg schema.LayoutConfig,
) schema.LabelOffset {
	if recordingIndex < 0 {
		recordingIndex = 0
	}
	if totalRecordings > 0 && recordingIndex >= totalRecordings {
		recordingIndex = totalRecordings - 1
	}

	return schema.LabelOffset{
		XAdjust:        horizontalOffset(point, geometry, recordingIndex, cfg),
		YAdjust:        verticalOffset(event, point, geometry, recordingIndex, cfg),
		RecordingIndex: recordingIndex,
		Event:          event,
	}
}

// VerticalCeiling is the largest |yAdjust| the layout will produce.
func VerticalCeiling(geometry schema.ChartGeometry, cfg schema.LayoutConfig) float64 {
	if geometry.Height > 0 && cfg.VerticalClampFraction > 0 {
		return geometry.Height * cfg.VerticalClampFraction
	}
	return cfg.VerticalMax
}

func verticalOffset(event schema.EventType, point schema.KeyPoint, geometry schema.ChartGeometry, idx int, cfg schema.LayoutConfig) float64 {
	dir := 1.0
	if event.LabelsAbove() {
		dir = -1
	}
	if idx%2 == 1 {
		dir = -dir
	}

	ceiling := VerticalCeiling(geometry, cfg)
	y := clampAbs(dir*(cfg.VerticalBase+float64(idx/2)*cfg.VerticalSpacing), ceiling)

	near := cfg.VerticalBase + float64(idx%2)*cfg.VerticalSpacing
	switch {
	case point.Value < cfg.LowValue && y > cfg.ExtremeTrigger:
		y = -near
	case point.Value > cfg.HighValue && y < -cfg.ExtremeTrigger:
		y = near
	}
	return clampAbs(y, ceiling)
}

func horizontalOffset(point schema.KeyPoint, geometry schema.ChartGeometry, idx int, cfg schema.LayoutConfig) float64 {
	ratio := positionRatio(point.Index, geometry.SlotCount)
	step := cfg.HorizontalBase + float64(idx/2)*cfg.HorizontalSpacing

	var x float64
	switch {
	case ratio < cfg.LeftZone:
		x = step
	case ratio > cfg.RightZone:
		x = -(step + cfg.LabelWidth)
	case idx%2 == 0:
		x = step
	default:
		x = -step
	}
	x = clampAbs(x, cfg.HorizontalMax)

	if geometry.Width <= 0 {
		if point.Index < cfg.EdgeSlots && x < cfg.EdgeMinX {
			x = cfg.EdgeMinX
		}
		return x
	}

	px := geometry.Left + ratio*geometry.Width
	half := cfg.LabelWidth / 2
	if left := px + x - half; left < geometry.Left+cfg.EdgeMargin {
		x += geometry.Left + cfg.EdgeMargin - left
	}
	if x > 0 && px+x+half > geometry.Right()-cfg.EdgeMargin {
		x = -x
	}
	return x
}

// positionRatio maps a grid slot onto [0, 1] across the plotted range.
func positionRatio(index, slots int) float64 {
	if slots <= 1 {
		return 0
	}
	r := float64(index) / float64(slots-1)
	return math.Max(0, math.Min(1, r))
}

func clampAbs(v, limit float64) float64 {
	if limit < 0 {
		limit = 0
	}
	if math.Abs(v) > limit {
		return math.Copysign(limit, v)
	}
	return v
}
