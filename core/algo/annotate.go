package algo

import (
	"fmt"
	"math"

	"github.com/huangsam/roastcurve/schema"
)

// connectorDash is the dash pattern of connector lines.
var connectorDash = []float64{2, 2}

// Assemble builds the marker, label and optional connector for one key point.
// The connector is omitted unless |offset.YAdjust| exceeds cfg.ConnectorMinOffset.
func Assemble(
	event schema.EventType,
	point schema.KeyPoint,
	offset schema.LabelOffset,
	color, recordingID string,
	cfg schema.AnnotationConfig,
) schema.AnnotationSet {
	set := schema.AnnotationSet{
		Key:    schema.AnnotationKey{Event: event, RecordingID: recordingID},
		Offset: offset,
		Marker: schema.Marker{
			Time:   point.Time,
			Index:  point.Index,
			Value:  point.Value,
			Color:  color,
			Radius: cfg.MarkerRadius,
		},
		Label: schema.Label{
			Time:    point.Time,
			Index:   point.Index,
			Value:   point.Value,
			XAdjust: offset.XAdjust,
			YAdjust: offset.YAdjust,
			Lines:   LabelLines(event, point, cfg.Unit),
			Color:   color,
		},
		Visible: true,
	}

	if math.Abs(offset.YAdjust) > cfg.ConnectorMinOffset {
		set.Connector = newConnector(point, offset.YAdjust, color, cfg.ConnectorMargin)
	}
	return set
}

// LabelLines returns the text of a key point label, e.g. "Y: 05:12" and "160.4°C".
func LabelLines(event schema.EventType, point schema.KeyPoint, unit string) []string {
	return []string{
		fmt.Sprintf("%s: %s", event.Code(), schema.FormatClock(point.Time)),
		fmt.Sprintf("%.1f%s", point.Value, unit),
	}
}

func newConnector(point schema.KeyPoint, yAdjust float64, color string, margin float64) *schema.Connector {
	c := &schema.Connector{
		Index: point.Index,
		Value: point.Value,
		Color: color,
		Dash:  append([]float64(nil), connectorDash...),
	}
	if yAdjust > 0 {
		c.FromY, c.ToY = margin, yAdjust-margin
	} else {
		c.FromY, c.ToY = -margin, yAdjust+margin
	}
	return c
}
