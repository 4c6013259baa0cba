// Package cmd defines the command-line interface for roastcurve.
package cmd

import (
	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/huangsam/roastcurve/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(keypointsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	grid := schema.DefaultGridConfig()

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-recording diagnostics (rate of rise, connectors, misses)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent file readers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("palette", "", "Comma-separated hex colors assigned to recordings in input order")
	rootCmd.PersistentFlags().Int("pad", grid.Pad, "Seconds of empty grid after the longest recording")
	rootCmd.PersistentFlags().Float64("tolerance", grid.Tolerance, "Largest distance in seconds between a sample and its grid slot")
	rootCmd.PersistentFlags().Float64("max-seconds", grid.MaxSeconds, "Latest elapsed time accepted; later samples count as malformed")
	rootCmd.PersistentFlags().Float64("chart-left", 0, "Left edge of the plot area in pixels")
	rootCmd.PersistentFlags().Float64("chart-top", 0, "Top edge of the plot area in pixels")
	rootCmd.PersistentFlags().Float64("chart-width", 0, "Width of the plot area in pixels (0 = unknown)")
	rootCmd.PersistentFlags().Float64("chart-height", 0, "Height of the plot area in pixels (0 = unknown)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of seriesCmd to Viper
	seriesCmd.Flags().String("hover", "", "Recording ID to highlight; every other recording is dimmed")
	if err := viper.BindPFlags(seriesCmd.Flags()); err != nil {
		contract.LogFatal("Error binding series flags", err)
	}

	// Bind all flags of layoutCmd to Viper
	layoutCmd.Flags().String("event", "", "Key point event: turningPoint, yellowing, firstEvent, endPoint (or TP, Y, FIRST, OUT)")
	layoutCmd.Flags().Int("index", 0, "Grid slot of the key point")
	layoutCmd.Flags().Float64("value", 0, "Primary value at the key point")
	layoutCmd.Flags().Int("total", 1, "Number of usable recordings in the batch")
	layoutCmd.Flags().Int("recording-index", 0, "Position of the recording among usable recordings")
	layoutCmd.Flags().Int("slots", 0, "Number of grid slots on the chart")
	if err := viper.BindPFlags(layoutCmd.Flags()); err != nil {
		contract.LogFatal("Error binding layout flags", err)
	}
}
