package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatClock formats elapsed seconds as "MM:SS". Minutes are not wrapped
// at the hour, so 3725 seconds renders as "62:05".
func FormatClock(t TimeStamp) string {
	if t < 0 {
		return "-" + FormatClock(-t)
	}
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseClock parses "MM:SS", "H:MM:SS" or a plain number of seconds into
// elapsed seconds. Fractional seconds are kept.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid time value %q: %w", s, err)
		}
		return checkSeconds(s, v)
	case 2, 3:
		var total float64
		for i, p := range parts {
			p = strings.TrimSpace(p)
			last := i == len(parts)-1
			if last {
				v, err := strconv.ParseFloat(p, 64)
				if err != nil || v < 0 || v >= 60 {
					return 0, fmt.Errorf("invalid seconds in %q", s)
				}
				total = total*60 + v
				continue
			}
			v, err := strconv.Atoi(p)
			if err != nil || v < 0 {
				return 0, fmt.Errorf("invalid field %q in %q", p, s)
			}
			if i > 0 && v >= 60 {
				return 0, fmt.Errorf("invalid minutes in %q", s)
			}
			total = total*60 + float64(v)
		}
		return total, nil
	default:
		return 0, fmt.Errorf("invalid time value %q", s)
	}
}

func checkSeconds(s string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid time value %q", s)
	}
	return v, nil
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// PaletteColor returns the palette color for the given input position.
func PaletteColor(palette []string, idx int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if idx < 0 {
		idx = -idx
	}
	return palette[idx%len(palette)]
}
