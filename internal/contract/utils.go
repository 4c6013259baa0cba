package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/roastcurve/schema"
)

// Color variables for console output, one per event.
var (
	TurningPointColor = color.New(color.FgCyan, color.Bold)    // the low point right after charge
	YellowingColor    = color.New(color.FgYellow, color.Bold)  // drying ends
	FirstEventColor   = color.New(color.FgMagenta, color.Bold) // first crack
	EndPointColor     = color.New(color.FgRed)                 // drop
	WarnColor         = color.New(color.FgYellow)
)

// GetPlainLabel returns the short tag of an event for CSV and plain output.
func GetPlainLabel(event schema.EventType) string {
	return event.Code()
}

// GetColorLabel returns a colored tag of an event for console output (table).
func GetColorLabel(event schema.EventType) string {
	text := GetPlainLabel(event)

	switch event {
	case schema.TurningPoint:
		return TurningPointColor.Sprint(text)
	case schema.Yellowing:
		return YellowingColor.Sprint(text)
	case schema.FirstEvent:
		return FirstEventColor.Sprint(text)
	default:
		return EndPointColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldIgnore returns true if the given path matches any of the exclude patterns.
// It supports simple glob patterns (using filepath.Match) when the pattern
// contains wildcard characters (*, ?, [ ]). Patterns ending with '/' are treated
// as prefixes. Patterns starting with '.' are treated as suffix (extension) matches.
// A user can provide patterns like "archive/", "*-test.csv", ".bak".
func ShouldIgnore(path string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		if strings.ContainsAny(ex, "*?[") {
			pat := strings.ReplaceAll(ex, "**", "*")
			if ok, err := filepath.Match(pat, path); err == nil && ok {
				return true
			}
			if ok, err := filepath.Match(pat, filepath.Base(path)); err == nil && ok {
				return true
			}
			continue
		}

		switch {
		case strings.HasSuffix(ex, "/"):
			if strings.HasPrefix(path, ex) || strings.Contains(path, "/"+ex) {
				return true
			}
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(path, ex) {
				return true
			}
		case strings.Contains(path, ex):
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs an informational line to stderr, keeping stdout for results.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// LogRecordingWarning prints one excluded recording.
func LogRecordingWarning(w schema.RecordingWarning, useColors bool) {
	tag := "Warn"
	if useColors {
		tag = WarnColor.Sprint(tag)
	}
	_, _ = fmt.Fprintf(os.Stderr, "%s %s (%s): %s\n", tag, w.RecordingID, w.Kind, w.Message)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to leave room for the "..." prefix.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
