// Package ggchart renders the order block concentration bar charts.
//
// # Overview
//
// Two static bar charts are provided: the period comparison chart
// (concentration ratio per time period) and the instrument comparison chart
// (order block percentage per instrument). Each chart is built in three
// steps:
//
//  1. A fixed ordered dataset ([PeriodData], [InstrumentData]).
//  2. Pixel geometry from canvas size, padding, record count and axis
//     maximum ([ComputeLayout]).
//  3. An ordered list of vector primitives recorded into an immutable
//     [recording.Recording] ([BuildPeriodChart], [BuildInstrumentChart]).
//
// A Recording is played back to any registered backend. Import the
// backends you need for their side effects:
//
//	import (
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/recording"
//	    _ "github.com/gogpu/ggchart/recording/backends/svg"
//	)
//
//	rec, err := ggchart.BuildPeriodChart(ggchart.PeriodData())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend)
//
// # Mounting
//
// [Renderer] rebuilds both charts and mounts them on a [surface.Page] under
// the stable identifiers [PeriodChartID] and [InstrumentChartID]. Every
// render is a full rebuild; a mount's content is replaced in one step.
//
// # Coordinate System
//
// The logical canvas is 800x400 with the origin at the top-left corner and
// y increasing downwards. Bars grow upwards from the bottom of the plot
// area. SVG output carries a viewBox so scaling to the viewport is left to
// the host page.
package ggchart
