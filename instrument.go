package ggchart

import (
	"github.com/gogpu/ggchart/paint"
	"github.com/gogpu/ggchart/recording"
)

const (
	instrumentLabelGap = 25.0
	baselineLabelInset = 5.0
)

// BuildInstrumentChart records the instrument comparison chart: one bar
// per instrument on a 0..100% axis, a dashed reference line at the 33.3%
// baseline, the percentage above each bar and the instrument name below.
// Bar colors follow InstrumentColor.
func BuildInstrumentChart(records []InstrumentRecord, opts ...Option) (*recording.Recording, error) {
	o := newOptions(opts)
	if err := ValidateInstruments(records); err != nil {
		if o.strict {
			return nil, err
		}
		Logger().Warn("ggchart: rendering out-of-range values", "chart", instrumentChart.name, "err", err)
	}

	l := ComputeLayout(Canvas, instrumentChart.padding, len(records), instrumentChart.axisMax)
	rec := instrumentChart.begin(l, o)

	by := l.BarTop(Baseline)
	rec.SetStrokeColor(paint.Red)
	rec.SetLineWidth(2)
	rec.SetDash(8, 4)
	rec.DrawLine(0, by, l.PlotWidth, by)
	rec.SetDash()

	rec.SetFillColor(paint.Red)
	rec.SetFont(baselineSize, recording.WeightSemiBold)
	rec.SetTextAnchor(recording.AnchorEnd)
	rec.DrawString(FormatFixed(o.locale, Baseline, 1)+"% Baseline", l.PlotWidth-baselineLabelInset, by-baselineLabelInset)

	for i, r := range records {
		rec.SetFillColor(InstrumentColor(r))
		bar(rec, l, i, r.OBPercent, FormatFixed(o.locale, r.OBPercent, 1)+"%")

		rec.SetFillColor(paint.LabelText)
		rec.SetFont(categorySize, recording.WeightSemiBold)
		rec.DrawString(r.Name, l.BarCenter(i), l.PlotHeight+instrumentLabelGap)

		instrumentChart.checkLabel(o, l, i, r.Name, true)
	}

	return instrumentChart.finish(rec, l), nil
}
