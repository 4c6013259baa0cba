package contract

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/huangsam/roastcurve/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 3
	MaxTolerance     = 1.0
)

// DefaultWorkers is the default number of concurrent file readers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// DetectionRawInput holds key point thresholds from the YAML config file.
// Use pointers so that only provided fields override the defaults.
type DetectionRawInput struct {
	TurningPointMin    *float64 `mapstructure:"turning_point_min"`
	TurningPointWindow *int     `mapstructure:"turning_point_window"`
	Yellowing          *float64 `mapstructure:"yellowing"`
	FirstEvent         *float64 `mapstructure:"first_event"`
}

// LayoutRawInput holds label layout constants from the YAML config file.
type LayoutRawInput struct {
	VerticalBase          *float64 `mapstructure:"vertical_base"`
	VerticalSpacing       *float64 `mapstructure:"vertical_spacing"`
	VerticalMax           *float64 `mapstructure:"vertical_max"`
	VerticalClampFraction *float64 `mapstructure:"vertical_clamp_fraction"`
	LowValue              *float64 `mapstructure:"low_value"`
	HighValue             *float64 `mapstructure:"high_value"`
	ExtremeTrigger        *float64 `mapstructure:"extreme_trigger"`
	HorizontalBase        *float64 `mapstructure:"horizontal_base"`
	HorizontalSpacing     *float64 `mapstructure:"horizontal_spacing"`
	HorizontalMax         *float64 `mapstructure:"horizontal_max"`
	LabelWidth            *float64 `mapstructure:"label_width"`
	LeftZone              *float64 `mapstructure:"left_zone"`
	RightZone             *float64 `mapstructure:"right_zone"`
	EdgeMargin            *float64 `mapstructure:"edge_margin"`
	EdgeSlots             *int     `mapstructure:"edge_slots"`
	EdgeMinX              *float64 `mapstructure:"edge_min_x"`
}

// AnnotationRawInput holds annotation settings from the YAML config file.
type AnnotationRawInput struct {
	ConnectorMinOffset *float64 `mapstructure:"connector_min_offset"`
	ConnectorMargin    *float64 `mapstructure:"connector_margin"`
	MarkerRadius       *float64 `mapstructure:"marker_radius"`
	Unit               *string  `mapstructure:"unit"`
}

// ColumnsRawInput forces source columns instead of header discovery.
type ColumnsRawInput struct {
	Time      *int `mapstructure:"time"`
	Primary   *int `mapstructure:"primary"`
	Secondary *int `mapstructure:"secondary"`
}

// LayoutProbe is a single label offset request from the layout command.
type LayoutProbe struct {
	Event          schema.EventType
	Index          int
	Value          float64
	Total          int
	RecordingIndex int
}

// Config holds the runtime configuration for a batch.
// This struct remains the "final, validated" config.
type Config struct {
	Paths      []string
	Excludes   []string
	Workers    int
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int  // Terminal width override (0 = auto-detect)
	Detail     bool // Print per-recording diagnostics

	Palette    []string
	Mapping    schema.FieldMapping
	MappingSet bool // Columns were forced, skip header discovery
	Hover      string

	Detection  schema.DetectionConfig
	Grid       schema.GridConfig
	Layout     schema.LayoutConfig
	Annotation schema.AnnotationConfig
	Geometry   schema.ChartGeometry

	Probe LayoutProbe

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	PathArgs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile  string  `mapstructure:"output-file"`
	Workers     int     `mapstructure:"workers"`
	Precision   int     `mapstructure:"precision"`
	Output      string  `mapstructure:"output"`
	Width       int     `mapstructure:"width"`
	Detail      bool    `mapstructure:"detail"`
	Exclude     string  `mapstructure:"exclude"`
	Emoji       string  `mapstructure:"emoji"`
	Color       string  `mapstructure:"color"`
	Palette     string  `mapstructure:"palette"`
	Pad         int     `mapstructure:"pad"`
	Tolerance   float64 `mapstructure:"tolerance"`
	MaxSeconds  float64 `mapstructure:"max-seconds"`
	ChartLeft   float64 `mapstructure:"chart-left"`
	ChartTop    float64 `mapstructure:"chart-top"`
	ChartWidth  float64 `mapstructure:"chart-width"`
	ChartHeight float64 `mapstructure:"chart-height"`

	// --- Fields from seriesCmd.Flags() ---
	Hover string `mapstructure:"hover"`

	// --- Fields from layoutCmd.Flags() ---
	Event          string  `mapstructure:"event"`
	Index          int     `mapstructure:"index"`
	Value          float64 `mapstructure:"value"`
	Total          int     `mapstructure:"total"`
	RecordingIndex int     `mapstructure:"recording-index"`
	Slots          int     `mapstructure:"slots"`

	// --- Sections from config file ---
	Detection  DetectionRawInput  `mapstructure:"detection"`
	Layout     LayoutRawInput     `mapstructure:"layout"`
	Annotation AnnotationRawInput `mapstructure:"annotation"`
	Columns    ColumnsRawInput    `mapstructure:"columns"`
}

// NewConfig returns a Config populated with every default.
func NewConfig() *Config {
	return &Config{
		Workers:    DefaultWorkers,
		Precision:  DefaultPrecision,
		Output:     schema.TextOut,
		Palette:    append([]string(nil), schema.DefaultPalette...),
		Mapping:    schema.DefaultFieldMapping(),
		Detection:  schema.DefaultDetectionConfig(),
		Grid:       schema.DefaultGridConfig(),
		Layout:     schema.DefaultLayoutConfig(),
		Annotation: schema.DefaultAnnotationConfig(),
		UseColors:  true,
	}
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Paths = append([]string(nil), c.Paths...)
	clone.Excludes = append([]string(nil), c.Excludes...)
	clone.Palette = append([]string(nil), c.Palette...)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processGrid(cfg, input); err != nil {
		return err
	}
	if err := processDetection(cfg, input.Detection); err != nil {
		return err
	}
	if err := processLayout(cfg, input.Layout); err != nil {
		return err
	}
	if err := processAnnotation(cfg, input.Annotation); err != nil {
		return err
	}
	if err := processColumns(cfg, input.Columns); err != nil {
		return err
	}
	return processProbe(cfg, input)
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// validateSimpleInputs processes and validates the flat flag values.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Paths = nil
	for _, p := range input.PathArgs {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Paths = append(cfg.Paths, p)
		}
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Detail = input.Detail
	cfg.Hover = strings.TrimSpace(input.Hover)

	emojis, err := parseOptionalBool(input.Emoji, false)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := parseOptionalBool(input.Color, true)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	palette, err := ParsePalette(input.Palette)
	if err != nil {
		return err
	}
	cfg.Palette = palette

	cfg.Excludes = nil
	for p := range strings.SplitSeq(input.Exclude, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cfg.Excludes = append(cfg.Excludes, trimmed)
		}
	}
	return nil
}

// processGrid validates grid and chart geometry settings.
func processGrid(cfg *Config, input *ConfigRawInput) error {
	if err := RevalidateGrid(cfg, input.Pad, input.Tolerance); err != nil {
		return err
	}
	if input.MaxSeconds != 0 {
		if input.MaxSeconds < 0 || input.MaxSeconds > schema.GridSecondsLimit {
			return fmt.Errorf("max-seconds must be between 0 and %d (received %g)", schema.GridSecondsLimit, input.MaxSeconds)
		}
		cfg.Grid.MaxSeconds = input.MaxSeconds
	}

	if input.ChartWidth < 0 || input.ChartHeight < 0 {
		return fmt.Errorf("chart width and height must not be negative")
	}
	cfg.Geometry = schema.ChartGeometry{
		Left:   input.ChartLeft,
		Top:    input.ChartTop,
		Width:  input.ChartWidth,
		Height: input.ChartHeight,
	}
	return nil
}

// RevalidateGrid applies and checks grid overrides that arrive after the
// initial validation, e.g. from MCP tool arguments.
func RevalidateGrid(cfg *Config, pad int, tolerance float64) error {
	if pad < 0 || pad > schema.GridSecondsLimit {
		return fmt.Errorf("pad must be between 0 and %d (received %d)", schema.GridSecondsLimit, pad)
	}
	if tolerance < 0 || tolerance > MaxTolerance {
		return fmt.Errorf("tolerance must be between 0 and %.1f (received %g)", MaxTolerance, tolerance)
	}
	cfg.Grid.Pad = pad
	cfg.Grid.Tolerance = tolerance
	return nil
}

// processDetection applies config file overrides to the detection thresholds.
func processDetection(cfg *Config, raw DetectionRawInput) error {
	d := schema.DefaultDetectionConfig()
	setFloat(&d.TurningPointMin, raw.TurningPointMin)
	setInt(&d.TurningPointWindow, raw.TurningPointWindow)
	setFloat(&d.YellowingTemp, raw.Yellowing)
	setFloat(&d.FirstEventTemp, raw.FirstEvent)

	if d.TurningPointWindow < 2 {
		return fmt.Errorf("detection.turning_point_window must be at least 2 (received %d)", d.TurningPointWindow)
	}
	cfg.Detection = d
	return nil
}

// processLayout applies config file overrides to the label layout constants.
func processLayout(cfg *Config, raw LayoutRawInput) error {
	l := schema.DefaultLayoutConfig()
	setFloat(&l.VerticalBase, raw.VerticalBase)
	setFloat(&l.VerticalSpacing, raw.VerticalSpacing)
	setFloat(&l.VerticalMax, raw.VerticalMax)
	setFloat(&l.VerticalClampFraction, raw.VerticalClampFraction)
	setFloat(&l.LowValue, raw.LowValue)
	setFloat(&l.HighValue, raw.HighValue)
	setFloat(&l.ExtremeTrigger, raw.ExtremeTrigger)
	setFloat(&l.HorizontalBase, raw.HorizontalBase)
	setFloat(&l.HorizontalSpacing, raw.HorizontalSpacing)
	setFloat(&l.HorizontalMax, raw.HorizontalMax)
	setFloat(&l.LabelWidth, raw.LabelWidth)
	setFloat(&l.LeftZone, raw.LeftZone)
	setFloat(&l.RightZone, raw.RightZone)
	setFloat(&l.EdgeMargin, raw.EdgeMargin)
	setInt(&l.EdgeSlots, raw.EdgeSlots)
	setFloat(&l.EdgeMinX, raw.EdgeMinX)

	for name, v := range map[string]float64{
		"vertical_base":      l.VerticalBase,
		"vertical_spacing":   l.VerticalSpacing,
		"vertical_max":       l.VerticalMax,
		"horizontal_base":    l.HorizontalBase,
		"horizontal_spacing": l.HorizontalSpacing,
		"horizontal_max":     l.HorizontalMax,
		"label_width":        l.LabelWidth,
		"edge_margin":        l.EdgeMargin,
	} {
		if v < 0 {
			return fmt.Errorf("layout.%s must not be negative (received %g)", name, v)
		}
	}
	if l.VerticalClampFraction < 0 || l.VerticalClampFraction > 1 {
		return fmt.Errorf("layout.vertical_clamp_fraction must be between 0 and 1 (received %g)", l.VerticalClampFraction)
	}
	if l.LeftZone < 0 || l.RightZone > 1 || l.LeftZone > l.RightZone {
		return fmt.Errorf("layout zones must satisfy 0 <= left_zone <= right_zone <= 1 (received %g, %g)", l.LeftZone, l.RightZone)
	}
	cfg.Layout = l
	return nil
}

// processAnnotation applies config file overrides to the annotation settings.
func processAnnotation(cfg *Config, raw AnnotationRawInput) error {
	a := schema.DefaultAnnotationConfig()
	setFloat(&a.ConnectorMinOffset, raw.ConnectorMinOffset)
	setFloat(&a.ConnectorMargin, raw.ConnectorMargin)
	setFloat(&a.MarkerRadius, raw.MarkerRadius)
	if raw.Unit != nil {
		a.Unit = *raw.Unit
	}
	if a.ConnectorMinOffset < 0 || a.ConnectorMargin < 0 || a.MarkerRadius < 0 {
		return fmt.Errorf("annotation sizes must not be negative")
	}
	cfg.Annotation = a
	return nil
}

// processColumns applies forced source columns.
func processColumns(cfg *Config, raw ColumnsRawInput) error {
	m := schema.DefaultFieldMapping()
	cfg.MappingSet = raw.Time != nil || raw.Primary != nil || raw.Secondary != nil
	setInt(&m.Time, raw.Time)
	setInt(&m.Primary, raw.Primary)
	setInt(&m.Secondary, raw.Secondary)

	if m.Time < 0 || m.Primary < 0 {
		return fmt.Errorf("columns.time and columns.primary must not be negative")
	}
	if m.Time == m.Primary || m.Time == m.Secondary || m.Primary == m.Secondary {
		return fmt.Errorf("columns must be distinct (time=%d, primary=%d, secondary=%d)", m.Time, m.Primary, m.Secondary)
	}
	cfg.Mapping = m
	return nil
}

// processProbe validates the single offset request of the layout command.
func processProbe(cfg *Config, input *ConfigRawInput) error {
	cfg.Probe = LayoutProbe{
		Index:          input.Index,
		Value:          input.Value,
		Total:          input.Total,
		RecordingIndex: input.RecordingIndex,
	}
	if input.Slots > 0 {
		cfg.Geometry.SlotCount = input.Slots
	}
	if input.Event == "" {
		return nil
	}
	ev, err := ParseEvent(input.Event)
	if err != nil {
		return err
	}
	cfg.Probe.Event = ev
	if input.Index < 0 || input.RecordingIndex < 0 || input.Total < 0 {
		return fmt.Errorf("index, total and recording-index must not be negative")
	}
	return nil
}

// ParseEvent accepts an event name or its short code, case-insensitively.
func ParseEvent(s string) (schema.EventType, error) {
	s = strings.TrimSpace(s)
	for _, ev := range schema.AllEvents {
		if strings.EqualFold(s, string(ev)) || strings.EqualFold(s, ev.Code()) {
			return ev, nil
		}
	}
	return "", fmt.Errorf("invalid event '%s'. must be turningPoint, yellowing, firstEvent, endPoint", s)
}

// ParsePalette parses a comma-separated list of hex colors.
// An empty string yields the default palette.
func ParsePalette(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return append([]string(nil), schema.DefaultPalette...), nil
	}
	var palette []string
	for c := range strings.SplitSeq(s, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !hexColorPattern.MatchString(c) {
			return nil, fmt.Errorf("invalid palette color '%s', expected #rgb or #rrggbb", c)
		}
		palette = append(palette, strings.ToLower(c))
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette must contain at least one color")
	}
	return palette, nil
}

func parseOptionalBool(s string, fallback bool) (bool, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return ParseBoolString(s)
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
