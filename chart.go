package ggchart

import (
	"math"

	"github.com/gogpu/ggchart/paint"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/text"
)

// chartKind holds the fixed decorations of one chart.
type chartKind struct {
	name      string
	title     string
	yTitle    string
	padding   Padding
	axisMax   float64
	gridSteps int
	gridUnit  string
	gridDecs  int
}

var (
	periodChart = chartKind{
		name:      "period",
		title:     "Order Block Concentration by Period",
		yTitle:    "Concentration Factor",
		padding:   PeriodPadding,
		axisMax:   PeriodAxisMax,
		gridSteps: PeriodGridSteps,
		gridUnit:  "x",
		gridDecs:  1,
	}
	instrumentChart = chartKind{
		name:      "instrument",
		title:     "Order Block Concentration by Instrument",
		yTitle:    "OB Concentration (%)",
		padding:   InstrumentPadding,
		axisMax:   InstrumentAxisMax,
		gridSteps: InstrumentGridSteps,
		gridUnit:  "%",
		gridDecs:  0,
	}
)

// Text styles shared by both charts.
const (
	gridLabelSize  = 12
	valueLabelSize = 14
	categorySize   = 13
	axisTitleSize  = 14
	titleSize      = 16
	baselineSize   = 11

	yTitleOffset = -45.0
	titleOffset  = -15.0
	valueOffset  = 10.0
)

// begin records the background, enters the plot area and draws the grid.
func (k chartKind) begin(l Layout, o chartOptions) *recording.Recorder {
	rec := recording.NewRecorder(int(l.Canvas.Width), int(l.Canvas.Height))

	rec.SetFillColor(paint.Background)
	rec.FillRectangle(0, 0, l.Canvas.Width, l.Canvas.Height)

	rec.Save()
	rec.Translate(l.Padding.Left, l.Padding.Top)

	for i := 0; i <= k.gridSteps; i++ {
		y := l.GridY(i, k.gridSteps)
		rec.SetStrokeColor(paint.GridLine)
		rec.SetLineWidth(1)
		rec.SetDash(4, 4)
		rec.DrawLine(0, y, l.PlotWidth, y)

		rec.SetFillColor(paint.AxisText)
		rec.SetFont(gridLabelSize, recording.WeightRegular)
		rec.SetTextAnchor(recording.AnchorEnd)
		rec.DrawString(FormatFixed(o.locale, l.GridValue(i, k.gridSteps), k.gridDecs)+k.gridUnit, -10, y+4)
	}
	rec.SetDash()
	return rec
}

// bar records one rounded bar and its value label above it.
func bar(rec *recording.Recorder, l Layout, i int, v float64, label string) {
	x, y := l.BarX(i), l.BarTop(v)
	rec.FillRoundedRectangle(x, y, l.BarWidth, l.BarHeight(v), BarRadius)

	rec.SetFillColor(paint.TitleText)
	rec.SetFont(valueLabelSize, recording.WeightSemiBold)
	rec.SetTextAnchor(recording.AnchorMiddle)
	rec.DrawString(label, l.BarCenter(i), y-valueOffset)
}

// finish records the axis title and chart title and leaves the plot area.
func (k chartKind) finish(rec *recording.Recorder, l Layout) *recording.Recording {
	rec.Save()
	rec.Translate(yTitleOffset, l.PlotHeight/2)
	rec.Rotate(-math.Pi / 2)
	rec.SetFillColor(paint.LabelText)
	rec.SetFont(axisTitleSize, recording.WeightSemiBold)
	rec.SetTextAnchor(recording.AnchorMiddle)
	rec.DrawString(k.yTitle, 0, 0)
	rec.Restore()

	rec.SetFillColor(paint.TitleText)
	rec.SetFont(titleSize, recording.WeightBold)
	rec.SetTextAnchor(recording.AnchorMiddle)
	rec.DrawString(k.title, l.PlotWidth/2, titleOffset)

	rec.Restore()
	return rec.FinishRecording()
}

// checkLabel logs a warning when a category label line is wider than the
// slot it is centered in.
func (k chartKind) checkLabel(o chartOptions, l Layout, i int, label string, bold bool) {
	if l.SlotWidth <= 0 {
		return
	}
	m := o.measurer
	if m == nil {
		var err error
		if m, err = text.DefaultMeasurer(); err != nil {
			Logger().Debug("ggchart: label measurement unavailable", "err", err)
		}
	}
	var w float64
	if m != nil {
		w = m.Measure(label, categorySize, bold)
	} else {
		w = text.Approximate(label, categorySize)
	}
	if w > l.SlotWidth {
		Logger().Warn("ggchart: category label wider than its slot",
			"chart", k.name, "index", i, "label", label,
			"width", w, "slot", l.SlotWidth)
	}
}
