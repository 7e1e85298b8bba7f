// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/recording/backends/svg"
)

// Common errors.
var (
	// ErrUnknownMount is returned when rendering an identifier the page
	// does not have.
	ErrUnknownMount = errors.New("surface: unknown mount point")

	// ErrEmptyMount is returned when rendering a mount point that has not
	// received a scene yet.
	ErrEmptyMount = errors.New("surface: mount point is empty")
)

// Mount is a snapshot of one mount point.
type Mount struct {
	// ID is the stable identifier of the mount point.
	ID string

	// Recording is the current scene, or nil if nothing was mounted yet.
	Recording *recording.Recording

	// Generation counts the scenes mounted so far.
	Generation uint64
}

// Section is a navigation entry of the page.
type Section struct {
	ID    string
	Title string
}

// Stat is a headline figure shown above the charts.
type Stat struct {
	Label string
	Value string
}

// Page holds named mount points and the page furniture around them.
type Page struct {
	mu     sync.RWMutex
	mounts map[string]*Mount
	order  []string

	title    string
	sections []Section
	stats    []Stat
	scripts  []string
	logger   *slog.Logger
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithTitle sets the document title.
func WithTitle(title string) PageOption {
	return func(p *Page) {
		p.title = title
	}
}

// WithSections sets the navigation entries.
func WithSections(sections ...Section) PageOption {
	return func(p *Page) {
		p.sections = append([]Section(nil), sections...)
	}
}

// WithStats sets the headline figures.
func WithStats(stats ...Stat) PageOption {
	return func(p *Page) {
		p.stats = append([]Stat(nil), stats...)
	}
}

// WithScript adds a script URL loaded at the end of the document.
func WithScript(src string) PageOption {
	return func(p *Page) {
		p.scripts = append(p.scripts, src)
	}
}

// WithLogger sets the logger for mount diagnostics. By default the page
// does not log.
func WithLogger(l *slog.Logger) PageOption {
	return func(p *Page) {
		p.logger = l
	}
}

// NewPage creates a page without mount points.
func NewPage(opts ...PageOption) *Page {
	p := &Page{
		mounts: make(map[string]*Mount),
		title:  "Order Block Concentration",
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(discardHandler{})
	}
	return p
}

// AddMount adds an empty mount point. Adding an existing id is a no-op.
func (p *Page) AddMount(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.mounts[id]; ok {
		return
	}
	p.mounts[id] = &Mount{ID: id}
	p.order = append(p.order, id)
}

// RemoveMount removes a mount point and its scene.
func (p *Page) RemoveMount(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.mounts[id]; !ok {
		return
	}
	delete(p.mounts, id)
	for i, v := range p.order {
		if v == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// HasMount reports whether the page has a mount point named id.
func (p *Page) HasMount(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.mounts[id]
	return ok
}

// IDs returns the mount point identifiers in the order they were added.
func (p *Page) IDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]string(nil), p.order...)
}

// Mount replaces the scene of mount point id with rec and reports whether
// the mount point exists. A missing mount point is not an error: nothing
// happens and false is returned.
func (p *Page) Mount(id string, rec *recording.Recording) bool {
	p.mu.Lock()
	m, ok := p.mounts[id]
	if ok {
		m.Recording = rec
		m.Generation++
	}
	p.mu.Unlock()

	if !ok {
		p.logger.Debug("surface: mount point not found", "id", id)
	}
	return ok
}

// Get returns a snapshot of mount point id.
func (p *Page) Get(id string) (Mount, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, ok := p.mounts[id]
	if !ok {
		return Mount{}, false
	}
	return *m, true
}

// Generation returns the number of scenes mounted on id, or 0 if the
// mount point does not exist.
func (p *Page) Generation(id string) uint64 {
	m, _ := p.Get(id)
	return m.Generation
}

// Render plays the scene mounted on id back to backend.
func (p *Page) Render(id string, backend recording.Backend) error {
	m, ok := p.Get(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMount, id)
	}
	if m.Recording == nil {
		return fmt.Errorf("%w: %q", ErrEmptyMount, id)
	}
	return m.Recording.Playback(backend)
}

// ChartClass is the class of every inlined chart's root element.
const ChartClass = "chart"

// RenderSVG renders the scene mounted on id as an SVG document whose root
// element carries id.
func (p *Page) RenderSVG(id string) ([]byte, error) {
	b := svg.NewBackend(svg.WithID(id), svg.WithClass(ChartClass))
	if err := p.Render(id, b); err != nil {
		return nil, err
	}
	p.logger.Debug("surface: rendered svg", "id", id, "elements", b.Elements())
	return b.Bytes()
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
