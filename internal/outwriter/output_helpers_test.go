package outwriter

import (
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
)

var fp = schema.Float

// sampleResult returns a small batch with one recording and two annotations.
func sampleResult() schema.BatchResult {
	tp := schema.KeyPoint{Event: schema.TurningPoint, Time: 1, Value: 198, Secondary: fp(-59), Index: 1}
	end := schema.KeyPoint{Event: schema.EndPoint, Time: 3, Value: 120, Index: 3}
	const id = "ethiopia.csv"
	const color = "#2563eb"

	return schema.BatchResult{
		BatchID: "batch-1",
		Times:   []string{"00:00", "00:01", "00:02", "00:03"},
		Recordings: []schema.RecordingResult{{
			ID:             id,
			RecordingIndex: 0,
			Color:          color,
			Series: schema.AlignedSeries{
				Primary:   []*float64{fp(200), fp(198), nil, fp(120)},
				Secondary: []*float64{nil, fp(-59), nil, fp(-25)},
			},
			KeyPoints: schema.KeyPoints{TurningPoint: &tp, EndPoint: &end},
		}},
		Annotations: []schema.AnnotationSet{
			{
				Key:       schema.AnnotationKey{Event: schema.TurningPoint, RecordingID: id},
				Offset:    schema.LabelOffset{XAdjust: 5, YAdjust: -30, Event: schema.TurningPoint},
				Marker:    schema.Marker{Time: 1, Index: 1, Value: 198, Color: color, Radius: 4},
				Label:     schema.Label{Time: 1, Index: 1, Value: 198, XAdjust: 5, YAdjust: -30, Lines: []string{"TP: 00:01", "198.0°C"}, Color: color},
				Connector: &schema.Connector{Index: 1, Value: 198, FromY: -5, ToY: -25, Color: color, Dash: []float64{2, 2}},
				Visible:   true,
			},
			{
				Key:       schema.AnnotationKey{Event: schema.EndPoint, RecordingID: id},
				Offset:    schema.LabelOffset{XAdjust: -50, YAdjust: 30, Event: schema.EndPoint},
				Marker:    schema.Marker{Time: 3, Index: 3, Value: 120, Color: color, Radius: 4},
				Label:     schema.Label{Time: 3, Index: 3, Value: 120, XAdjust: -50, YAdjust: 30, Lines: []string{"OUT: 00:03", "120.0°C"}, Color: color},
				Connector: &schema.Connector{Index: 3, Value: 120, FromY: 5, ToY: 25, Color: color, Dash: []float64{2, 2}},
				Visible:   true,
			},
		},
		Diagnostics: schema.Diagnostics{
			Malformed:       map[string]int{id: 1},
			AlignmentMisses: map[string]int{id: 0},
		},
	}
}

// testConfig returns a plain-text config that writes to outputFile.
func testConfig(output schema.OutputMode, outputFile string) *contract.Config {
	cfg := contract.NewConfig()
	cfg.Output = output
	cfg.OutputFile = outputFile
	cfg.UseColors = false
	cfg.Width = 120
	cfg.Workers = 2
	return cfg
}
