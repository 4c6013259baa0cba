package cmd

import (
	"github.com/huangsam/roastcurve/core"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/ingest"
	"github.com/spf13/cobra"
)

// analyzeCmd detects key points and lays out their labels.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Detect key points of each roast and place their labels.",
	Long: `Align every roast log on one shared grid, detect its key points and compute
where each annotation label goes so that labels of different roasts stay apart.

Accepts CSV, TXT, XLSX and Parquet logs. Folders are searched recursively.
Files are ordered by the number in their name, so roast-2 comes before roast-10.

Examples:
  # Annotate every log in a folder
  roastcurve analyze roasts/

  # Compare two roasts with a shorter tail after the longest one
  roastcurve analyze ethiopia-1.csv ethiopia-2.csv --pad 30

  # Show rate of rise and connector lines
  roastcurve analyze roasts/ --detail

  # Export the annotations for a chart front end
  roastcurve analyze roasts/ --output json --output-file annotations.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, ingest.NewReaderFromConfig(cfg)); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
