package schema

// SeriesStyle is how a renderer should draw one dense series.
type SeriesStyle struct {
	Color       string    `json:"color"`
	Width       float64   `json:"width"`
	Dash        []float64 `json:"dash,omitempty"`
	Tension     float64   `json:"tension"`
	PointRadius float64   `json:"pointRadius"`
	SpanGaps    bool      `json:"spanGaps"` // Absent slots continue the line rather than break it
}

// RecordingState is everything a batch derives for one usable recording.
// It is owned by exactly one batch.
type RecordingState struct {
	ID             string        // Caller-supplied identifier
	InputIndex     int           // Position in the sorted input, drives the color
	RecordingIndex int           // Position among usable recordings, drives the layout
	Color          string        // Palette color
	Samples        []RawSample   // Sanitized samples
	Series         AlignedSeries // Dense values on the batch Grid
	KeyPoints      KeyPoints     // Detected events
	Misses         int           // Samples with no grid slot within tolerance
	Malformed      int           // Samples dropped before alignment
}

// BatchContext carries one batch through every stage. A superseding batch
// always starts from a fresh BatchContext.
type BatchContext struct {
	ID          string
	Grid        Grid
	Geometry    ChartGeometry
	Recordings  []*RecordingState
	Annotations map[AnnotationKey]AnnotationSet
	Warnings    []RecordingWarning
}

// RecordingWarning reports a recording excluded from the batch.
type RecordingWarning struct {
	RecordingID string      `json:"recordingId"`
	Kind        WarningKind `json:"kind"`
	Message     string      `json:"message"`
}

// Diagnostics holds per-recording counters of dropped samples.
type Diagnostics struct {
	Malformed       map[string]int `json:"malformed"`
	AlignmentMisses map[string]int `json:"alignmentMisses"`
}

// RecordingResult is the rendering-facing view of one recording.
type RecordingResult struct {
	ID             string        `json:"id"`
	RecordingIndex int           `json:"recordingIndex"`
	Color          string        `json:"color"`
	PrimaryStyle   SeriesStyle   `json:"primaryStyle"`
	SecondaryStyle SeriesStyle   `json:"secondaryStyle"`
	Series         AlignedSeries `json:"series"`
	KeyPoints      KeyPoints     `json:"keyPoints"`
}

// BatchResult is the complete output of one batch.
type BatchResult struct {
	BatchID      string             `json:"batchId"`
	NoUsableData bool               `json:"noUsableData"`
	Times        []string           `json:"times"` // "MM:SS" label of every grid slot
	Recordings   []RecordingResult  `json:"recordings"`
	Annotations  []AnnotationSet    `json:"annotations"`
	Warnings     []RecordingWarning `json:"warnings"`
	Diagnostics  Diagnostics        `json:"diagnostics"`
}
