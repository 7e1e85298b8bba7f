package ggchart

import (
	"errors"
	"sync"

	"github.com/gogpu/ggchart/surface"
)

// Mount point identifiers of the two charts.
const (
	PeriodChartID     = "periodChart"
	InstrumentChartID = "instrumentChart"
)

// Renderer rebuilds both charts from its datasets and mounts them.
// The datasets are copied on construction and never modified.
//
// Renderer is safe for concurrent use; each RenderAll is a full rebuild.
type Renderer struct {
	periods     []PeriodRecord
	instruments []InstrumentRecord
	opts        []Option

	mu      sync.Mutex
	renders uint64
}

// NewRenderer creates a renderer for the given datasets.
func NewRenderer(periods []PeriodRecord, instruments []InstrumentRecord, opts ...Option) *Renderer {
	return &Renderer{
		periods:     append([]PeriodRecord(nil), periods...),
		instruments: append([]InstrumentRecord(nil), instruments...),
		opts:        append([]Option(nil), opts...),
	}
}

// DefaultRenderer creates a renderer for the built-in datasets.
func DefaultRenderer(opts ...Option) *Renderer {
	return NewRenderer(PeriodData(), InstrumentData(), opts...)
}

// NewPage returns a page with the two chart mount points.
func NewPage(opts ...surface.PageOption) *surface.Page {
	p := surface.NewPage(opts...)
	p.AddMount(PeriodChartID)
	p.AddMount(InstrumentChartID)
	return p
}

// RenderAll builds both charts and mounts them on page. Charts whose mount
// point is absent are built but not mounted. A chart that fails to build
// leaves its mount untouched; the other chart is still mounted.
func (r *Renderer) RenderAll(page *surface.Page) error {
	var errs []error

	if rec, err := BuildPeriodChart(r.periods, r.opts...); err != nil {
		errs = append(errs, err)
	} else {
		page.Mount(PeriodChartID, rec)
	}

	if rec, err := BuildInstrumentChart(r.instruments, r.opts...); err != nil {
		errs = append(errs, err)
	} else {
		page.Mount(InstrumentChartID, rec)
	}

	r.mu.Lock()
	r.renders++
	n := r.renders
	r.mu.Unlock()

	Logger().Debug("ggchart: charts rendered", "render", n, "failed", len(errs))
	return errors.Join(errs...)
}

// Renders returns how many times RenderAll has run.
func (r *Renderer) Renders() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}
