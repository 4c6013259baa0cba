package cmd

import (
	"github.com/huangsam/roastcurve/core"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/ingest"
	"github.com/spf13/cobra"
)

// seriesCmd prints the aligned series on the shared grid.
var seriesCmd = &cobra.Command{
	Use:   "series [path...]",
	Short: "Print every roast aligned on the shared time grid.",
	Long: `Align every roast log on one shared one-second grid and print the dense
series. Slots without a sample stay empty instead of being interpolated.

The table shows one row every 30 seconds; use --detail for every slot.

Examples:
  # Aligned bean temperature every 30 seconds
  roastcurve series roasts/

  # Full grid as CSV for plotting
  roastcurve series roasts/ --output csv --output-file grid.csv

  # Highlight one roast and dim the rest
  roastcurve series roasts/ --hover kenya-3.csv --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg, ingest.NewReaderFromConfig(cfg)); err != nil {
			contract.LogFatal("Cannot run series", err)
		}
	},
}
