package ggchart

import "github.com/gogpu/ggchart/paint"

// PeriodColor returns the bar color of period i out of n.
// The first period is highlighted gold, the last (the full-range summary)
// blue, and all others green. With a single period the first rule wins.
func PeriodColor(i, n int) paint.RGBA {
	switch {
	case i == 0:
		return paint.Gold
	case i == n-1:
		return paint.Blue
	default:
		return paint.Green
	}
}

// InstrumentColor returns the bar color of an instrument. The first
// matching rule wins: primary instruments are gold, values below the
// baseline red, values above the high threshold green, the rest gray.
func InstrumentColor(r InstrumentRecord) paint.RGBA {
	switch {
	case r.Primary:
		return paint.Gold
	case r.OBPercent < Baseline:
		return paint.Red
	case r.OBPercent > HighThreshold:
		return paint.Green
	default:
		return paint.Gray
	}
}
