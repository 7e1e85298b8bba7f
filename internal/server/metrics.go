package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gogpu/ggchart/text"
)

// metrics holds the server collectors, registered on a private registry.
type metrics struct {
	registry *prometheus.Registry

	builds      prometheus.Counter
	renders     *prometheus.CounterVec
	renderTime  prometheus.Histogram
	resizes     prometheus.Counter
	coalesced   prometheus.Counter
	connections prometheus.Gauge
	requests    *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggchart",
			Name:      "chart_builds_total",
			Help:      "Full rebuilds of both charts.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ggchart",
			Name:      "chart_renders_total",
			Help:      "Scene playbacks by chart and output format.",
		}, []string{"chart", "format"}),
		renderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ggchart",
			Name:      "render_duration_seconds",
			Help:      "Time spent rebuilding both charts.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
		resizes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggchart",
			Name:      "resize_signals_total",
			Help:      "Resize messages received over websockets.",
		}),
		coalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ggchart",
			Name:      "debounced_renders_total",
			Help:      "Re-renders run after a burst of resize messages settled.",
		}),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ggchart",
			Name:      "websocket_connections",
			Help:      "Open websocket connections.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Tracks the number of HTTP requests.",
		}, []string{"handler", "method", "code"}),
	}

	if mr, err := text.DefaultMeasurer(); err == nil {
		reg.MustRegister(
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace: "ggchart",
				Name:      "label_measure_cache_hits_total",
				Help:      "Label width lookups served from the cache.",
			}, func() float64 {
				hits, _ := mr.CacheStats()
				return float64(hits)
			}),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace: "ggchart",
				Name:      "label_measure_cache_misses_total",
				Help:      "Label width lookups that shaped the text.",
			}, func() float64 {
				_, misses := mr.CacheStats()
				return float64(misses)
			}),
		)
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.builds, m.renders, m.renderTime, m.resizes, m.coalesced, m.connections, m.requests,
	)
	return m
}

// handler exposes the registry in the Prometheus text format.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// instrument counts requests to h by method and status code.
func (m *metrics) instrument(name string, h http.HandlerFunc) http.Handler {
	return promhttp.InstrumentHandlerCounter(
		m.requests.MustCurryWith(prometheus.Labels{"handler": name}), h)
}
