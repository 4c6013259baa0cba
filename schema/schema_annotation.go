package schema

import "fmt"

// AnnotationKey identifies an annotation set for lookup and removal
// when a recording is hidden.
type AnnotationKey struct {
	Event       EventType `json:"event"`
	RecordingID string    `json:"recordingId"`
}

// String renders the key as "<CODE>:<recordingID>".
func (k AnnotationKey) String() string {
	return fmt.Sprintf("%s:%s", k.Event.Code(), k.RecordingID)
}

// Marker is the point drawn at a key point's exact data coordinates.
type Marker struct {
	Time   TimeStamp `json:"time"`
	Index  int       `json:"index"`
	Value  float64   `json:"value"`
	Color  string    `json:"color"`
	Radius float64   `json:"radius"`
}

// Label is the text box drawn at the data coordinates shifted by the offset.
type Label struct {
	Time    TimeStamp `json:"time"`
	Index   int       `json:"index"`
	Value   float64   `json:"value"`
	XAdjust float64   `json:"xAdjust"`
	YAdjust float64   `json:"yAdjust"`
	Lines   []string  `json:"lines"`
	Color   string    `json:"color"`
}

// Connector is a dashed vertical line between the marker and its label.
// FromY and ToY are pixel offsets relative to the data point.
type Connector struct {
	Index int       `json:"index"`
	Value float64   `json:"value"`
	FromY float64   `json:"fromY"`
	ToY   float64   `json:"toY"`
	Color string    `json:"color"`
	Dash  []float64 `json:"dash"`
}

// AnnotationSet is everything rendered for one key point.
type AnnotationSet struct {
	Key       AnnotationKey `json:"key"`
	Offset    LabelOffset   `json:"offset"`
	Marker    Marker        `json:"marker"`
	Label     Label         `json:"label"`
	Connector *Connector    `json:"connector,omitempty"`
	Visible   bool          `json:"visible"`
}
