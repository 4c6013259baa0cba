package outwriter

import (
	"os"

	"github.com/huangsam/roastcurve/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableIDWidth calculates the maximum width for recording IDs in table output
// based on terminal width and table configuration.
func GetMaxTableIDWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // #, Event, Time, Value, X and Y with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 25 // Secondary + Connector
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 20

	// Calculate available space for the recording ID
	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
