// Package main is the entry point for the roastcurve CLI.
package main

import (
	"github.com/huangsam/roastcurve/cmd"
	"github.com/huangsam/roastcurve/internal/contract"
)

func main() {
	err := cmd.Execute()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Cannot stop profiling", perr)
	}
	if err != nil {
		contract.LogFatal("Cannot run roastcurve", err)
	}
}
