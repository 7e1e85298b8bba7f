package ggchart

import (
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart/text"
)

// Option configures chart building.
//
// Example:
//
//	rec, err := ggchart.BuildInstrumentChart(records, ggchart.WithStrict())
type Option func(*chartOptions)

type chartOptions struct {
	strict   bool
	locale   language.Tag
	measurer *text.Measurer
}

func defaultOptions() chartOptions {
	return chartOptions{locale: language.English}
}

func newOptions(opts []Option) chartOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrict makes the builders return a RangeError for values outside the
// axis range instead of rendering them and logging a warning.
func WithStrict() Option {
	return func(o *chartOptions) {
		o.strict = true
	}
}

// WithLocale sets the locale used to format value and axis labels.
// The default is English.
func WithLocale(tag language.Tag) Option {
	return func(o *chartOptions) {
		o.locale = tag
	}
}

// WithMeasurer sets the text measurer used to check that category labels
// fit their slot. By default the shared Go font measurer is used.
func WithMeasurer(m *text.Measurer) Option {
	return func(o *chartOptions) {
		o.measurer = m
	}
}
