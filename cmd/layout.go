package cmd

import (
	"github.com/huangsam/roastcurve/core"
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/spf13/cobra"
)

// layoutCmd computes the annotation of one hypothetical key point.
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Compute the label offset of a single key point.",
	Long: `Compute the label offset, marker and connector for one key point without
reading any log. Useful to tune the layout section of .roastcurve.yaml.

Examples:
  # Yellowing of the second of three roasts on a 10 minute grid
  roastcurve layout --event Y --index 300 --value 160 --total 3 --recording-index 1 --slots 631

  # Drop near the right edge of an 800 pixel chart
  roastcurve layout --event OUT --index 620 --value 210 --slots 631 --chart-width 800`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return sharedSetup(rootCtx, cmd, nil)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLayout(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run layout", err)
		}
	},
}
