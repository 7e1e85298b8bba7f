package ggchart

import (
	"github.com/gogpu/ggchart/paint"
	"github.com/gogpu/ggchart/recording"
)

const (
	periodLabelGap    = 20.0
	periodLineSpacing = 16.0
)

// BuildPeriodChart records the period comparison chart.
//
// Each record becomes one bar whose height is proportional to its ratio on
// a 0..3 axis, labeled with the ratio ("2.80x") above and the period
// label, one text line per "\n" separated line, below. Every call returns
// a fresh Recording; equal input gives equal commands.
//
// Out-of-range ratios are rendered as given and logged, unless WithStrict
// is set, in which case the RangeError is returned.
func BuildPeriodChart(records []PeriodRecord, opts ...Option) (*recording.Recording, error) {
	o := newOptions(opts)
	if err := ValidatePeriods(records); err != nil {
		if o.strict {
			return nil, err
		}
		Logger().Warn("ggchart: rendering out-of-range values", "chart", periodChart.name, "err", err)
	}

	n := len(records)
	l := ComputeLayout(Canvas, periodChart.padding, n, periodChart.axisMax)
	rec := periodChart.begin(l, o)

	for i, r := range records {
		rec.SetFillColor(PeriodColor(i, n))
		rec.SetClass("bar")
		bar(rec, l, i, r.Ratio, FormatFixed(o.locale, r.Ratio, 2)+"x")
		rec.SetClass("")

		rec.SetFillColor(paint.LabelText)
		rec.SetFont(categorySize, recording.WeightSemiBold)
		rec.DrawLines(r.Label, l.BarCenter(i), l.PlotHeight+periodLabelGap, periodLineSpacing,
			recording.WeightSemiBold, recording.WeightRegular)

		for k, line := range recording.SplitLines(r.Label) {
			periodChart.checkLabel(o, l, i, line, k == 0)
		}
	}

	return periodChart.finish(rec, l), nil
}
