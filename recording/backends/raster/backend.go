// Package raster provides a PNG backend for the recording system.
//
// Shapes are scan-converted with golang.org/x/image/vector, text is drawn
// with golang.org/x/image/font faces of the Go fonts, and text under a
// non-translation transform (the rotated axis titles) is drawn into a
// scratch image and resampled with golang.org/x/image/draw.
//
// # Supported Features
//
//   - Solid color fills and strokes
//   - Rounded rectangles
//   - Dashed lines
//   - Transform matrix with Save/Restore
//   - PNG output
//
// # Example
//
//	import _ "github.com/gogpu/ggchart/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = rec.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("chart.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/text"
)

// ContentType is the media type of the backend output.
const ContentType = "image/png"

func init() {
	recording.Register("raster", ContentType, func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when output is requested before a playback.
var ErrNotStarted = errors.New("raster: no image rendered")

// Backend renders recordings to an RGBA image.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	width  int
	height int

	dst       *image.RGBA
	z         *vector.Rasterizer
	transform recording.Matrix
	stack     []recording.Matrix

	faces    *text.Faces
	measurer *text.Measurer
	err      error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{transform: recording.Identity()}
}

// Begin allocates a transparent image of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	if b.faces == nil {
		faces, err := text.NewFaces()
		if err != nil {
			return err
		}
		b.faces = faces
	}
	if b.measurer == nil {
		m, err := text.DefaultMeasurer()
		if err != nil {
			return err
		}
		b.measurer = m
	}
	b.width = width
	b.height = height
	b.dst = image.NewRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	b.transform = recording.Identity()
	b.stack = b.stack[:0]
	b.err = nil
	return nil
}

// End finalizes the rendering and reports the first drawing error, if any.
func (b *Backend) End() error {
	return b.err
}

// Save saves the current transform onto a stack.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.transform)
}

// Restore restores the transform from the stack.
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

// FillRect fills a rectangle, rounding its corners by radius.
func (b *Backend) FillRect(r recording.Rect, radius float64, brush recording.Brush, _ string) {
	if r.IsEmpty() {
		return
	}
	x, y, w, h := r.X(), r.Y(), r.Width(), r.Height()
	radius = math.Min(radius, math.Min(w, h)/2)

	b.z.Reset(b.width, b.height)
	if radius <= 0 {
		b.moveTo(x, y)
		b.lineTo(x+w, y)
		b.lineTo(x+w, y+h)
		b.lineTo(x, y+h)
	} else {
		b.moveTo(x+radius, y)
		b.lineTo(x+w-radius, y)
		b.quadTo(x+w, y, x+w, y+radius)
		b.lineTo(x+w, y+h-radius)
		b.quadTo(x+w, y+h, x+w-radius, y+h)
		b.lineTo(x+radius, y+h)
		b.quadTo(x, y+h, x, y+h-radius)
		b.lineTo(x, y+radius)
		b.quadTo(x, y, x+radius, y)
	}
	b.z.ClosePath()
	b.paint(brush)
}

// StrokeLine strokes a segment, splitting it into dashes when the stroke
// carries a dash pattern.
func (b *Backend) StrokeLine(x1, y1, x2, y2 float64, brush recording.Brush, stroke recording.Stroke) {
	if stroke.Width <= 0 {
		return
	}
	b.z.Reset(b.width, b.height)
	for _, seg := range dashSegments(x1, y1, x2, y2, stroke) {
		b.segmentQuad(seg, stroke.Width/2)
	}
	b.paint(brush)
}

// segmentQuad adds the rectangle covering seg with half-width hw.
func (b *Backend) segmentQuad(seg [4]float64, hw float64) {
	dx, dy := seg[2]-seg[0], seg[3]-seg[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	b.moveTo(seg[0]+nx, seg[1]+ny)
	b.lineTo(seg[2]+nx, seg[3]+ny)
	b.lineTo(seg[2]-nx, seg[3]-ny)
	b.lineTo(seg[0]-nx, seg[1]-ny)
	b.z.ClosePath()
}

// dashSegments splits a line into the "on" parts of the dash pattern.
func dashSegments(x1, y1, x2, y2 float64, stroke recording.Stroke) [][4]float64 {
	if !stroke.IsDashed() {
		return [][4]float64{{x1, y1, x2, y2}}
	}
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	ux, uy := dx/l, dy/l

	var out [][4]float64
	pos, i, on := 0.0, 0, true
	for pos < l {
		d := stroke.DashPattern[i%len(stroke.DashPattern)]
		end := math.Min(pos+d, l)
		if on && end > pos {
			out = append(out, [4]float64{x1 + ux*pos, y1 + uy*pos, x1 + ux*end, y1 + uy*end})
		}
		pos = end
		on = !on
		i++
	}
	return out
}

// DrawText draws a line of text with its baseline at y.
func (b *Backend) DrawText(s string, x, y float64, f recording.Font, anchor recording.TextAnchor, brush recording.Brush) {
	if s == "" || f.Size <= 0 {
		return
	}
	bold := f.Weight.IsBold()
	face, err := b.faces.Face(f.Size, bold)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}

	switch anchor {
	case recording.AnchorMiddle:
		x -= b.measurer.Measure(s, f.Size, bold) / 2
	case recording.AnchorEnd:
		x -= b.measurer.Measure(s, f.Size, bold)
	}
	src := image.NewUniform(recording.BrushColor(brush).Color())

	if b.transform.IsTranslation() {
		px, py := b.transform.TransformPoint(x, y)
		d := font.Drawer{Dst: b.dst, Src: src, Face: face, Dot: toFixed(px, py)}
		d.DrawString(s)
		return
	}

	// Draw upright into a scratch image, then map it through the transform.
	const pad = 2
	m := face.Metrics()
	ascent := float64(m.Ascent.Ceil())
	descent := float64(m.Descent.Ceil())
	w := int(math.Ceil(b.measurer.Measure(s, f.Size, bold))) + 2*pad
	h := int(ascent+descent) + 2*pad

	scratch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: scratch, Src: src, Face: face, Dot: toFixed(pad, pad+ascent)}
	d.DrawString(s)

	ox, oy := x-pad, y-ascent-pad
	t := b.transform.Multiply(recording.Translate(ox, oy))
	s2d := f64.Aff3{t.A, t.B, t.C, t.D, t.E, t.F}
	xdraw.BiLinear.Transform(b.dst, s2d, scratch, scratch.Bounds(), xdraw.Over, nil)
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

func (b *Backend) moveTo(x, y float64) {
	px, py := b.transform.TransformPoint(x, y)
	b.z.MoveTo(float32(px), float32(py))
}

func (b *Backend) lineTo(x, y float64) {
	px, py := b.transform.TransformPoint(x, y)
	b.z.LineTo(float32(px), float32(py))
}

func (b *Backend) quadTo(cx, cy, x, y float64) {
	pcx, pcy := b.transform.TransformPoint(cx, cy)
	px, py := b.transform.TransformPoint(x, y)
	b.z.QuadTo(float32(pcx), float32(pcy), float32(px), float32(py))
}

// paint composites the accumulated rasterizer coverage with the brush color.
func (b *Backend) paint(brush recording.Brush) {
	b.z.DrawOp = draw.Over
	src := image.NewUniform(recording.BrushColor(brush).Color())
	b.z.Draw(b.dst, b.dst.Bounds(), src, image.Point{})
}

// Image returns the rendered image, or nil before the first Begin.
func (b *Backend) Image() *image.RGBA {
	return b.dst
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.dst == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.dst)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
