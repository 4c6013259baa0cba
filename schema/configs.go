package schema

// DetectionConfig holds the domain thresholds used by key point detection.
type DetectionConfig struct {
	TurningPointMin    float64 `json:"turningPointMin" yaml:"turning-point-min"`       // Primary value that must be exceeded before a turning point counts
	TurningPointWindow int     `json:"turningPointWindow" yaml:"turning-point-window"` // Search window in grid slots (seconds)
	YellowingTemp      float64 `json:"yellowingTemp" yaml:"yellowing"`                 // Crossing threshold for the yellowing event
	FirstEventTemp     float64 `json:"firstEventTemp" yaml:"first-event"`              // Crossing threshold for the first event
}

// GridConfig controls grid construction and sample alignment.
type GridConfig struct {
	Pad       int     `json:"pad" yaml:"pad"`             // Trailing seconds appended after the longest recording
	Tolerance  float64 `json:"tolerance" yaml:"tolerance"`    // Maximum distance to the nearest slot, in seconds
	MaxSeconds float64 `json:"maxSeconds" yaml:"max-seconds"` // Latest sample time accepted; later samples are malformed
}

// GridSecondsLimit caps both the accepted sample time and the pad so that
// a grid always fits in memory.
const GridSecondsLimit = 7 * 24 * 60 * 60

// LayoutConfig holds the tunable constants of the label layout.
// The zone cutoffs and clamps are defaults, not load-bearing numbers.
type LayoutConfig struct {
	VerticalBase          float64 `json:"verticalBase" yaml:"vertical-base"`
	VerticalSpacing       float64 `json:"verticalSpacing" yaml:"vertical-spacing"`
	VerticalMax           float64 `json:"verticalMax" yaml:"vertical-max"`                     // Ceiling when the plot height is unknown
	VerticalClampFraction float64 `json:"verticalClampFraction" yaml:"vertical-clamp-fraction"` // Ceiling as a fraction of plot height
	LowValue              float64 `json:"lowValue" yaml:"low-value"`                           // Below this, labels pushed down are forced up
	HighValue             float64 `json:"highValue" yaml:"high-value"`                         // Above this, labels pushed up are forced down
	ExtremeTrigger        float64 `json:"extremeTrigger" yaml:"extreme-trigger"`               // Offset magnitude that triggers the override
	HorizontalBase        float64 `json:"horizontalBase" yaml:"horizontal-base"`
	HorizontalSpacing     float64 `json:"horizontalSpacing" yaml:"horizontal-spacing"`
	HorizontalMax         float64 `json:"horizontalMax" yaml:"horizontal-max"`
	LabelWidth            float64 `json:"labelWidth" yaml:"label-width"`
	LeftZone              float64 `json:"leftZone" yaml:"left-zone"`
	RightZone             float64 `json:"rightZone" yaml:"right-zone"`
	EdgeMargin            float64 `json:"edgeMargin" yaml:"edge-margin"`
	EdgeSlots             int     `json:"edgeSlots" yaml:"edge-slots"` // Fallback left-edge zone in slots when plot width is unknown
	EdgeMinX              float64 `json:"edgeMinX" yaml:"edge-min-x"`  // Most negative xAdjust allowed inside EdgeSlots
}

// AnnotationConfig controls how annotation parts are assembled.
type AnnotationConfig struct {
	ConnectorMinOffset float64 `json:"connectorMinOffset" yaml:"connector-min-offset"` // |yAdjust| must exceed this to draw a connector
	ConnectorMargin    float64 `json:"connectorMargin" yaml:"connector-margin"`        // Trim applied at both connector ends
	MarkerRadius       float64 `json:"markerRadius" yaml:"marker-radius"`
	Unit               string  `json:"unit" yaml:"unit"`
}

// ChartGeometry is the plot area in pixels. A zero width or height means
// the dimension is unknown and the layout falls back to fixed bounds.
type ChartGeometry struct {
	Left      float64 `json:"left" yaml:"left"`
	Top       float64 `json:"top" yaml:"top"`
	Width     float64 `json:"width" yaml:"width"`
	Height    float64 `json:"height" yaml:"height"`
	SlotCount int     `json:"slotCount" yaml:"slot-count"` // Grid length plotted along the x axis
}

// Right returns the right edge of the plot area.
func (g ChartGeometry) Right() float64 {
	return g.Left + g.Width
}

// DefaultDetectionConfig returns the detection thresholds.
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		TurningPointMin:    70,
		TurningPointWindow: 90,
		YellowingTemp:      160,
		FirstEventTemp:     204,
	}
}

// DefaultGridConfig returns the grid defaults.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Pad:        90,
		Tolerance:  0.5,
		MaxSeconds: 24 * 60 * 60,
	}
}

// DefaultLayoutConfig returns the label layout defaults.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		VerticalBase:          30,
		VerticalSpacing:       15,
		VerticalMax:           120,
		VerticalClampFraction: 0.3,
		LowValue:              80,
		HighValue:             225,
		ExtremeTrigger:        50,
		HorizontalBase:        5,
		HorizontalSpacing:     10,
		HorizontalMax:         100,
		LabelWidth:            45,
		LeftZone:              0.15,
		RightZone:             0.85,
		EdgeMargin:            4,
		EdgeSlots:             15,
		EdgeMinX:              -10,
	}
}

// DefaultAnnotationConfig returns the annotation defaults.
func DefaultAnnotationConfig() AnnotationConfig {
	return AnnotationConfig{
		ConnectorMinOffset: 10,
		ConnectorMargin:    5,
		MarkerRadius:       4,
		Unit:               "°C",
	}
}

// FieldMapping says which source column holds each field of a RawSample.
// A negative Secondary means the source has no rate of rise column.
type FieldMapping struct {
	Time      int `json:"time" yaml:"time"`
	Primary   int `json:"primary" yaml:"primary"`
	Secondary int `json:"secondary" yaml:"secondary"`
}

// DefaultFieldMapping returns the positional layout of roaster log exports:
// time in the first column, bean temperature in the third, rate of rise in the sixth.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{Time: 0, Primary: 2, Secondary: 5}
}
