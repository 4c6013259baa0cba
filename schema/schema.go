// Package schema has configs, models and constants for all parts of roastcurve.
package schema

// TimeStamp is elapsed time since the start of a recording, in whole seconds.
type TimeStamp int

// RawSample is one observed row of a recording as handed over by a parser.
// Secondary is nil when the rate of rise is unknown for that row.
type RawSample struct {
	Seconds   float64  `json:"seconds"`
	Primary   float64  `json:"primary"`
	Secondary *float64 `json:"secondary,omitempty"`
}

// Recording is one parsed input file. Parsers report the samples and the
// maximum observed elapsed time in a single pass.
type Recording struct {
	ID         string      `json:"id"`         // Stable identifier, usually the file name
	Path       string      `json:"path"`       // Source path on disk (may be empty for in-memory input)
	Samples    []RawSample `json:"samples"`    // Rows in source order
	MaxSeconds float64     `json:"maxSeconds"` // Largest elapsed time seen while parsing
	Malformed  int         `json:"malformed"`  // Rows the parser could not interpret
}

// AlignedSeries holds one recording's values laid out on the shared Grid.
// Both slices have the Grid's length; a nil entry means "no data" for that slot.
type AlignedSeries struct {
	Primary   []*float64 `json:"primary"`
	Secondary []*float64 `json:"secondary"`
}

// Len returns the number of slots in the series.
func (s AlignedSeries) Len() int {
	return len(s.Primary)
}

// Filled returns the number of slots holding a primary value.
func (s AlignedSeries) Filled() int {
	n := 0
	for _, v := range s.Primary {
		if v != nil {
			n++
		}
	}
	return n
}

// KeyPoint is a detected event on one recording's curve.
type KeyPoint struct {
	Event     EventType `json:"event"`
	Time      TimeStamp `json:"time"`
	Value     float64   `json:"value"`
	Secondary *float64  `json:"secondary,omitempty"`
	Index     int       `json:"index"` // Grid slot of the event
}

// KeyPoints holds at most one KeyPoint per event type. Any field may be nil
// when the detection condition never occurs.
type KeyPoints struct {
	TurningPoint *KeyPoint `json:"turningPoint,omitempty"`
	Yellowing    *KeyPoint `json:"yellowing,omitempty"`
	FirstEvent   *KeyPoint `json:"firstEvent,omitempty"`
	EndPoint     *KeyPoint `json:"endPoint,omitempty"`
}

// Get returns the KeyPoint for the given event type, or nil.
func (k KeyPoints) Get(event EventType) *KeyPoint {
	switch event {
	case TurningPoint:
		return k.TurningPoint
	case Yellowing:
		return k.Yellowing
	case FirstEvent:
		return k.FirstEvent
	case EndPoint:
		return k.EndPoint
	default:
		return nil
	}
}

// Present returns the detected key points in AllEvents order.
func (k KeyPoints) Present() []KeyPoint {
	var out []KeyPoint
	for _, ev := range AllEvents {
		if p := k.Get(ev); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// LabelOffset is the pixel displacement of a key point's text label
// relative to the data point. Positive YAdjust moves the label down.
type LabelOffset struct {
	XAdjust        float64   `json:"xAdjust"`
	YAdjust        float64   `json:"yAdjust"`
	RecordingIndex int       `json:"recordingIndex"`
	Event          EventType `json:"event"`
}
