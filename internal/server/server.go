// Package server serves the chart page, the chart images and the live
// re-render channel.
//
// Routes:
//
//	GET /                     page with both charts inline
//	GET /page.js              client glue for the websocket channel
//	GET /charts/{id}.svg      one chart as SVG
//	GET /charts/{id}.png      one chart as PNG
//	GET /ws                   resize signals in, scenes and counter frames out
//	GET /metrics              Prometheus metrics
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/counter"
	"github.com/gogpu/ggchart/internal/config"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/surface"

	// Output backends.
	_ "github.com/gogpu/ggchart/recording/backends/raster"
	_ "github.com/gogpu/ggchart/recording/backends/svg"
)

// Server renders the charts onto a shared page and serves it.
type Server struct {
	cfg      config.Config
	page     *surface.Page
	renderer *ggchart.Renderer
	router   *mux.Router
	metrics  *metrics
	upgrader websocket.Upgrader

	counterTick time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCounterTick sets the frame interval of the stat counters pushed to
// websocket clients.
func WithCounterTick(d time.Duration) Option {
	return func(s *Server) {
		s.counterTick = d
	}
}

// New creates a server and renders the charts once.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:         cfg,
		renderer:    cfg.Renderer(),
		metrics:     newMetrics(),
		counterTick: counter.DefaultTick,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	pageOpts := append(cfg.PageOptions(), surface.WithScript("/page.js"))
	s.page = ggchart.NewPage(pageOpts...)
	if err := s.renderAll(); err != nil {
		return nil, fmt.Errorf("server: initial render: %w", err)
	}

	r := mux.NewRouter()
	r.Handle("/", s.metrics.instrument("page", s.handlePage)).Methods(http.MethodGet)
	r.Handle("/page.js", s.metrics.instrument("script", handleScript)).Methods(http.MethodGet)
	r.Handle("/charts/{id:[A-Za-z0-9_-]+}.{format:svg|png}", s.metrics.instrument("chart", s.handleChart)).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebsocket)
	r.Handle("/metrics", s.metrics.handler())
	s.router = r
	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Page returns the page the charts are mounted on.
func (s *Server) Page() *surface.Page {
	return s.page
}

// ListenAndServe serves on the configured address until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	hs := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		ggchart.Logger().Info("server: listening", "addr", s.cfg.Listen)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}
}

// renderAll rebuilds both charts and records the build metrics.
func (s *Server) renderAll() error {
	start := time.Now()
	err := s.renderer.RenderAll(s.page)
	s.metrics.renderTime.Observe(time.Since(start).Seconds())
	s.metrics.builds.Inc()
	return err
}

func (s *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.WriteHTML(w); err != nil {
		ggchart.Logger().Warn("server: write page", "err", err)
		return
	}
	for _, id := range s.page.IDs() {
		s.metrics.renders.WithLabelValues(id, "html").Inc()
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, format := vars["id"], vars["format"]

	backendName := "svg"
	if format == config.FormatPNG {
		backendName = "raster"
	}
	contentType, _ := recording.ContentType(backendName)

	var body []byte
	var err error
	if format == config.FormatSVG {
		body, err = s.page.RenderSVG(id)
	} else {
		body, err = s.renderPNG(id)
	}
	switch {
	case errors.Is(err, surface.ErrUnknownMount):
		http.NotFound(w, r)
		return
	case errors.Is(err, surface.ErrEmptyMount):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		ggchart.Logger().Warn("server: render chart", "id", id, "format", format, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.metrics.renders.WithLabelValues(id, format).Inc()
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(body)
}

func (s *Server) renderPNG(id string) ([]byte, error) {
	backend, err := recording.NewBackend("raster")
	if err != nil {
		return nil, err
	}
	if err := s.page.Render(id, backend); err != nil {
		return nil, err
	}
	wb, ok := backend.(recording.WriterBackend)
	if !ok {
		return nil, errors.New("server: raster backend cannot write")
	}
	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("server: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
