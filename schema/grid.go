package schema

import "math"

// Grid is the shared time axis of a batch: one TimeStamp per second starting at 0.
// A Grid is never mutated after construction; a new batch builds a new one.
type Grid struct {
	times []TimeStamp
}

// NewGrid returns a Grid with n consecutive seconds starting at 0.
// A non-positive n yields the empty Grid.
func NewGrid(n int) Grid {
	if n <= 0 {
		return Grid{}
	}
	times := make([]TimeStamp, n)
	for i := range times {
		times[i] = TimeStamp(i)
	}
	return Grid{times: times}
}

// Len returns the number of slots.
func (g Grid) Len() int {
	return len(g.times)
}

// Empty reports whether the Grid has no slots.
func (g Grid) Empty() bool {
	return len(g.times) == 0
}

// At returns the TimeStamp of slot i.
func (g Grid) At(i int) TimeStamp {
	return g.times[i]
}

// Last returns the final TimeStamp, or -1 for the empty Grid.
func (g Grid) Last() TimeStamp {
	if len(g.times) == 0 {
		return -1
	}
	return g.times[len(g.times)-1]
}

// Times returns a copy of the slot TimeStamps.
func (g Grid) Times() []TimeStamp {
	out := make([]TimeStamp, len(g.times))
	copy(out, g.times)
	return out
}

// Nearest returns the slot closest to the given elapsed seconds and the
// absolute distance to it. An exact half-second resolves to the lower slot.
// ok is false only for the empty Grid or a non-finite input.
func (g Grid) Nearest(seconds float64) (idx int, diff float64, ok bool) {
	if len(g.times) == 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, 0, false
	}
	first := float64(g.times[0])
	last := float64(g.times[len(g.times)-1])
	switch {
	case seconds <= first:
		return 0, first - seconds, true
	case seconds >= last:
		return len(g.times) - 1, seconds - last, true
	}

	lower := math.Floor(seconds)
	idx = int(lower - first)
	diff = seconds - lower
	if diff > 0.5 {
		idx++
		diff = 1 - diff
	}
	return idx, diff, true
}

// Labels returns the "MM:SS" label of every slot.
func (g Grid) Labels() []string {
	out := make([]string, len(g.times))
	for i, t := range g.times {
		out[i] = FormatClock(t)
	}
	return out
}

// TickLabels returns one label per slot, blank except on every
// interval-th second. It mirrors the sparse axis ticks of the chart.
func (g Grid) TickLabels(interval int) []string {
	out := make([]string, len(g.times))
	if interval <= 0 {
		return out
	}
	for i, t := range g.times {
		if int(t)%interval == 0 {
			out[i] = FormatClock(t)
		}
	}
	return out
}
