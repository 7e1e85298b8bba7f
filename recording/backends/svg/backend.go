// Package svg provides an SVG backend for the recording system.
//
// Each playback produces one standalone <svg> document whose viewBox is the
// recording size, so the host page is free to scale it. Translation-only
// transforms are folded into element coordinates; any other transform is
// emitted as a transform="matrix(...)" attribute on the affected element.
//
// # Example
//
//	import _ "github.com/gogpu/ggchart/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	_ = r.Playback(b)
//	_, _ = b.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/ggchart/recording"
)

// ContentType is the media type of the backend output.
const ContentType = "image/svg+xml"

func init() {
	recording.Register("svg", ContentType, func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotFinished is returned when output is requested before End.
var ErrNotFinished = errors.New("svg: playback not finished")

// Option configures a Backend.
type Option func(*Backend)

// WithID sets the id attribute of the root <svg> element.
func WithID(id string) Option {
	return func(b *Backend) { b.id = id }
}

// WithClass sets the class attribute of the root <svg> element.
func WithClass(class string) Option {
	return func(b *Backend) { b.class = class }
}

// Backend renders recordings to SVG markup.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	id    string
	class string

	buf       bytes.Buffer
	transform recording.Matrix
	stack     []recording.Matrix
	done      bool
	elements  int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{transform: recording.Identity()}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Begin starts a new document, discarding any previous output.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.buf.Reset()
	b.transform = recording.Identity()
	b.stack = b.stack[:0]
	b.done = false
	b.elements = 0

	b.buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if b.id != "" {
		fmt.Fprintf(&b.buf, ` id="%s"`, html.EscapeString(b.id))
	}
	if b.class != "" {
		fmt.Fprintf(&b.buf, ` class="%s"`, html.EscapeString(b.class))
	}
	fmt.Fprintf(&b.buf, ` width="%d" height="%d" viewBox="0 0 %d %d" role="img">`+"\n",
		width, height, width, height)
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	b.done = true
	return nil
}

// Save pushes the current transform.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.transform)
}

// Restore pops the transform saved by the matching Save.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.transform = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// SetTransform sets the current transformation matrix.
func (b *Backend) SetTransform(m recording.Matrix) {
	b.transform = m
}

// FillRect emits a <rect> element.
func (b *Backend) FillRect(r recording.Rect, radius float64, brush recording.Brush, class string) {
	x, y, attr := b.place(r.X(), r.Y())

	fmt.Fprintf(&b.buf, `<rect x="%s" y="%s" width="%s" height="%s"`,
		num(x), num(y), num(r.Width()), num(r.Height()))
	if radius > 0 {
		fmt.Fprintf(&b.buf, ` rx="%s"`, num(radius))
	}
	b.paintAttr("fill", brush)
	if class != "" {
		fmt.Fprintf(&b.buf, ` class="%s"`, html.EscapeString(class))
	}
	b.buf.WriteString(attr)
	b.buf.WriteString("/>\n")
	b.elements++
}

// StrokeLine emits a <line> element.
func (b *Backend) StrokeLine(x1, y1, x2, y2 float64, brush recording.Brush, stroke recording.Stroke) {
	var attr string
	if b.transform.IsTranslation() {
		x1, y1 = b.transform.TransformPoint(x1, y1)
		x2, y2 = b.transform.TransformPoint(x2, y2)
	} else {
		attr = matrixAttr(b.transform)
	}

	fmt.Fprintf(&b.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"`, num(x1), num(y1), num(x2), num(y2))
	b.paintAttr("stroke", brush)
	fmt.Fprintf(&b.buf, ` stroke-width="%s"`, num(stroke.Width))
	if stroke.IsDashed() {
		b.buf.WriteString(` stroke-dasharray="`)
		for i, d := range stroke.DashPattern {
			if i > 0 {
				b.buf.WriteByte(',')
			}
			b.buf.WriteString(num(d))
		}
		b.buf.WriteByte('"')
	}
	b.buf.WriteString(attr)
	b.buf.WriteString("/>\n")
	b.elements++
}

// DrawText emits a <text> element.
func (b *Backend) DrawText(s string, x, y float64, font recording.Font, anchor recording.TextAnchor, brush recording.Brush) {
	x, y, attr := b.place(x, y)

	fmt.Fprintf(&b.buf, `<text x="%s" y="%s" text-anchor="%s"`, num(x), num(y), anchor)
	b.paintAttr("fill", brush)
	fmt.Fprintf(&b.buf, ` font-size="%s"`, num(font.Size))
	if font.Weight != 0 && font.Weight != recording.WeightRegular {
		fmt.Fprintf(&b.buf, ` font-weight="%d"`, font.Weight)
	}
	b.buf.WriteString(attr)
	b.buf.WriteByte('>')
	b.buf.WriteString(html.EscapeString(s))
	b.buf.WriteString("</text>\n")
	b.elements++
}

// place maps (x, y) into output coordinates. For non-translation
// transforms the point stays in user space and the returned attribute
// carries the matrix.
func (b *Backend) place(x, y float64) (float64, float64, string) {
	if b.transform.IsTranslation() {
		px, py := b.transform.TransformPoint(x, y)
		return px, py, ""
	}
	return x, y, matrixAttr(b.transform)
}

func (b *Backend) paintAttr(name string, brush recording.Brush) {
	c := recording.BrushColor(brush)
	fmt.Fprintf(&b.buf, ` %s="%s"`, name, c.Hex())
	if op := c.Opacity(); op < 1 {
		fmt.Fprintf(&b.buf, ` %s-opacity="%s"`, name, num(op))
	}
}

// matrixAttr converts m to an SVG transform attribute. SVG's
// matrix(a b c d e f) maps x' = a*x + c*y + e, y' = b*x + d*y + f.
func matrixAttr(m recording.Matrix) string {
	return fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Elements returns how many elements the last playback emitted.
func (b *Backend) Elements() int {
	return b.elements
}

// Bytes returns the finished document.
func (b *Backend) Bytes() ([]byte, error) {
	if !b.done {
		return nil, ErrNotFinished
	}
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	return out, nil
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("svg: save %s: %w", path, err)
	}
	return nil
}
