package cmd

import (
	"github.com/huangsam/roastcurve/core"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/internal/ingest"
	"github.com/spf13/cobra"
)

// keypointsCmd prints the detected key points only.
var keypointsCmd = &cobra.Command{
	Use:   "keypoints [path...]",
	Short: "Print the turning point, yellowing, first crack and drop of each roast.",
	Long: `Detect the key points of every roast without computing a label layout.

Thresholds can be tuned in the detection section of .roastcurve.yaml.

Examples:
  # Key points of one roast
  roastcurve keypoints guatemala-7.csv

  # Include malformed row and alignment miss counts
  roastcurve keypoints roasts/ --detail

  # Key points as YAML
  roastcurve keypoints roasts/ --output yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteKeyPoints(rootCtx, cfg, ingest.NewReaderFromConfig(cfg)); err != nil {
			contract.LogFatal("Cannot run keypoints", err)
		}
	},
}
