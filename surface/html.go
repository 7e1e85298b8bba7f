// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{- if .Sections}}
<nav class="nav-menu">
{{- range .Sections}}
<a class="nav-link" href="#{{.ID}}">{{.Title}}</a>
{{- end}}
</nav>
{{- end}}
{{- if .Stats}}
<section id="stats" class="stats">
{{- range .Stats}}
<div class="stat"><span class="stat-value">{{.Value}}</span><span class="stat-label">{{.Label}}</span></div>
{{- end}}
</section>
{{- end}}
{{- range .Sections}}
<section id="{{.ID}}" class="page-section"><h2>{{.Title}}</h2></section>
{{- end}}
{{- range .Charts}}
<figure class="chart-container" data-mount="{{.ID}}">
{{.SVG}}
</figure>
{{- end}}
{{- range .Scripts}}
<script src="{{.}}"></script>
{{- end}}
</body>
</html>
`))

type chartView struct {
	ID  string
	SVG template.HTML
}

type pageView struct {
	Title    string
	Sections []Section
	Stats    []Stat
	Charts   []chartView
	Scripts  []string
}

// WriteHTML writes the page as an HTML document. Every mount point is
// inlined as an SVG element with the mount id; empty mount points are
// written as an empty svg element so client code can still find them.
func (p *Page) WriteHTML(w io.Writer) error {
	view := pageView{}

	p.mu.RLock()
	view.Title = p.title
	view.Sections = p.sections
	view.Stats = p.stats
	view.Scripts = p.scripts
	ids := append([]string(nil), p.order...)
	p.mu.RUnlock()

	for _, id := range ids {
		data, err := p.RenderSVG(id)
		if err != nil {
			p.logger.Debug("surface: writing empty mount", "id", id, "err", err)
			data = []byte(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" id="%s"></svg>`, template.HTMLEscapeString(id)))
		}
		view.Charts = append(view.Charts, chartView{ID: id, SVG: template.HTML(data)}) //nolint:gosec // svg backend escapes all text
	}

	bw := bufio.NewWriter(w)
	if err := pageTemplate.Execute(bw, view); err != nil {
		return fmt.Errorf("surface: write page: %w", err)
	}
	return bw.Flush()
}
