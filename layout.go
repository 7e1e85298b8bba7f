package ggchart

// Size is a canvas size in user units.
type Size struct {
	Width, Height float64
}

// Padding is the space between the canvas edge and the plot area.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Canvas dimensions and paddings of the two charts.
var (
	Canvas            = Size{Width: 800, Height: 400}
	PeriodPadding     = Padding{Top: 40, Right: 40, Bottom: 80, Left: 60}
	InstrumentPadding = Padding{Top: 40, Right: 40, Bottom: 60, Left: 60}
)

// Axis scales and thresholds.
const (
	// PeriodAxisMax is the top of the concentration ratio axis.
	PeriodAxisMax = 3.0

	// InstrumentAxisMax is the top of the percentage axis.
	InstrumentAxisMax = 100.0

	// Baseline is the random expectation percentage drawn as a dashed line
	// on the instrument chart. Values below it are colored as failures.
	Baseline = 33.3

	// HighThreshold is the percentage above which a non-primary instrument
	// is colored as a strong result.
	HighThreshold = 75.0

	// PeriodGridSteps and InstrumentGridSteps are the number of grid
	// intervals; each chart draws steps+1 grid lines.
	PeriodGridSteps     = 4
	InstrumentGridSteps = 5

	// BarRadius is the corner radius of every bar.
	BarRadius = 4.0

	// barShrink is the ratio of slot width to bar width.
	barShrink = 1.5
)

// Layout is the pixel geometry of one bar chart. All coordinates are
// relative to the plot area origin (canvas position Padding.Left,
// Padding.Top).
//
// Layout is a plain value; its methods are pure.
type Layout struct {
	Canvas  Size
	Padding Padding
	Count   int
	AxisMax float64

	PlotWidth  float64
	PlotHeight float64
	SlotWidth  float64
	BarWidth   float64
}

// ComputeLayout derives the chart geometry for n records on an axis
// spanning [0, axisMax]. For n <= 0 the slot and bar widths are zero.
func ComputeLayout(canvas Size, pad Padding, n int, axisMax float64) Layout {
	l := Layout{
		Canvas:     canvas,
		Padding:    pad,
		Count:      n,
		AxisMax:    axisMax,
		PlotWidth:  canvas.Width - pad.Left - pad.Right,
		PlotHeight: canvas.Height - pad.Top - pad.Bottom,
	}
	if n > 0 {
		l.SlotWidth = l.PlotWidth / float64(n)
		l.BarWidth = l.SlotWidth / barShrink
	}
	return l
}

// BarX returns the left edge of the bar in slot i.
func (l Layout) BarX(i int) float64 {
	return float64(i)*l.SlotWidth + (l.SlotWidth-l.BarWidth)/2
}

// BarCenter returns the horizontal center of the bar in slot i.
func (l Layout) BarCenter(i int) float64 {
	return l.BarX(i) + l.BarWidth/2
}

// BarHeight returns the height of a bar for value v.
// It is zero when the axis maximum is not positive.
func (l Layout) BarHeight(v float64) float64 {
	if l.AxisMax <= 0 {
		return 0
	}
	return v / l.AxisMax * l.PlotHeight
}

// BarTop returns the top edge of a bar for value v.
func (l Layout) BarTop(v float64) float64 {
	return l.PlotHeight - l.BarHeight(v)
}

// GridY returns the vertical position of grid line i of steps intervals.
// Line 0 is the bottom of the plot, line steps the top.
func (l Layout) GridY(i, steps int) float64 {
	if steps <= 0 {
		return l.PlotHeight
	}
	return l.PlotHeight - float64(i)/float64(steps)*l.PlotHeight
}

// GridValue returns the axis value at grid line i of steps intervals.
func (l Layout) GridValue(i, steps int) float64 {
	if steps <= 0 {
		return 0
	}
	return float64(i) / float64(steps) * l.AxisMax
}
