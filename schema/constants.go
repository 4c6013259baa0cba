package schema

// Custom string types for type safety.
type (
	// EventType names a detected key point.
	EventType string

	// OutputMode represents the format of the output.
	OutputMode string

	// WarningKind classifies a per-recording, non-fatal problem.
	WarningKind string
)

// All key point events, in detection and display order.
const (
	TurningPoint EventType = "turningPoint"
	Yellowing    EventType = "yellowing"
	FirstEvent   EventType = "firstEvent"
	EndPoint     EventType = "endPoint"
)

// AllEvents lists every event type in display order.
var AllEvents = []EventType{TurningPoint, Yellowing, FirstEvent, EndPoint}

// ValidEvents lists all valid event types.
var ValidEvents = map[EventType]struct{}{
	TurningPoint: {},
	Yellowing:    {},
	FirstEvent:   {},
	EndPoint:     {},
}

// Code returns the short upper-case tag used in labels and annotation keys.
func (e EventType) Code() string {
	switch e {
	case TurningPoint:
		return "TP"
	case Yellowing:
		return "Y"
	case FirstEvent:
		return "FIRST"
	case EndPoint:
		return "OUT"
	default:
		return string(e)
	}
}

// LabelsAbove reports whether the event's label defaults to above the point.
func (e EventType) LabelsAbove() bool {
	return e == TurningPoint || e == Yellowing
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
}

// All warning kinds reported for excluded recordings.
const (
	WarnUnreadable WarningKind = "unreadable" // file could not be opened or decoded
	WarnEmpty      WarningKind = "empty"      // no usable samples after sanitizing or alignment
)

// DefaultPalette is the color cycle assigned to recordings by input position.
var DefaultPalette = []string{
	"#2563eb", // blue
	"#dc2626", // red
	"#16a34a", // green
	"#9333ea", // purple
	"#ea580c", // orange
}

// TickInterval is the spacing of labelled ticks on the time axis, in seconds.
const TickInterval = 30
