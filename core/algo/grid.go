// Package algo has the pure stages of the roast curve pipeline: grid
// construction, alignment, key point detection, label layout and annotation.
package algo

import (
	"math"

	"github.com/huangsam/roastcurve/schema"
)

// BuildGrid returns one slot per whole second from 0 through ceil(maxSeconds)+pad.
// Negative or non-finite input yields the empty Grid.
func BuildGrid(maxSeconds float64, pad int) schema.Grid {
	if maxSeconds < 0 || pad < 0 || math.IsNaN(maxSeconds) || math.IsInf(maxSeconds, 0) {
		return schema.Grid{}
	}
	if maxSeconds > schema.GridSecondsLimit || pad > schema.GridSecondsLimit {
		return schema.Grid{}
	}
	return schema.NewGrid(int(math.Ceil(maxSeconds)) + pad + 1)
}
