package algo

import "github.com/huangsam/roastcurve/schema"

const (
	lineWidth      = 1.5
	lineTension    = 0.1
	highlightWidth = 3.0
	dimmedColor    = "rgba(160, 160, 160, 0.3)"
)

var secondaryDash = []float64{4, 4}

// SeriesStyles returns the primary and secondary line styles for a recording.
// The primary is solid and the secondary dashed, both in the recording color.
func SeriesStyles(color string) (primary, secondary schema.SeriesStyle) {
	primary = schema.SeriesStyle{
		Color:    color,
		Width:    lineWidth,
		Tension:  lineTension,
		SpanGaps: true,
	}
	secondary = primary
	secondary.Dash = append([]float64(nil), secondaryDash...)
	return primary, secondary
}

// HighlightStyle returns the display style of a series given the hover state.
// With no hovered recording the base style is returned unchanged. The hovered
// recording is drawn wider and every other recording is dimmed.
func HighlightStyle(base schema.SeriesStyle, recordingID, hoveredID string) schema.SeriesStyle {
	out := base
	out.Dash = append([]float64(nil), base.Dash...)
	switch {
	case hoveredID == "":
	case recordingID == hoveredID:
		out.Width = highlightWidth
	default:
		out.Color = dimmedColor
	}
	return out
}
