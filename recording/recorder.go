package recording

import (
	"strings"

	"github.com/gogpu/ggchart/paint"
)

// Recorder captures drawing operations as commands.
// It keeps a small graphics state (colors, stroke, font, transform) and
// stamps that state onto every drawing command it records. Use
// FinishRecording to obtain an immutable Recording that can be replayed
// to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 400)
//	rec.SetFillColor(paint.Gold)
//	rec.FillRoundedRectangle(10, 10, 80, 200, 4)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// Current state
	fillBrush   Brush
	strokeBrush Brush
	lineWidth   float64
	dashPattern []float64
	font        Font
	anchor      TextAnchor
	class       string
	transform   Matrix

	// State stack
	stateStack []recorderState
}

// recorderState stores the graphics state for Save/Restore.
type recorderState struct {
	fillBrush   Brush
	strokeBrush Brush
	lineWidth   float64
	dashPattern []float64
	font        Font
	anchor      TextAnchor
	class       string
	transform   Matrix
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with default state: black fill/stroke, 1 unit solid
// line, 12 unit regular font anchored at start, and identity transform.
func NewRecorder(width, height int) *Recorder {
	defaultBrush := NewSolidBrush(paint.Black)
	return &Recorder{
		width:       width,
		height:      height,
		commands:    make([]Command, 0, 64),
		fillBrush:   defaultBrush,
		strokeBrush: defaultBrush,
		lineWidth:   1.0,
		font:        Font{Size: 12, Weight: WeightRegular},
		anchor:      AnchorStart,
		transform:   Identity(),
		stateStack:  make([]recorderState, 0, 8),
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns a copy of the recorded commands in drawing order.
func (r *Recording) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t the recording holds.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Texts returns the text of every DrawText command in drawing order.
func (r *Recording) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if t, ok := c.(DrawTextCommand); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case SetTransformCommand:
			backend.SetTransform(c.Matrix)
		case FillRectCommand:
			backend.FillRect(c.Rect, c.Radius, c.Brush, c.Class)
		case StrokeLineCommand:
			backend.StrokeLine(c.X1, c.Y1, c.X2, c.Y2, c.Brush, c.Stroke)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Font, c.Anchor, c.Brush)
		}
	}

	return backend.End()
}

// --------------------------------------------------------------------------
// Dimensions
// --------------------------------------------------------------------------

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save saves the current graphics state to the stack.
func (r *Recorder) Save() {
	var dashCopy []float64
	if r.dashPattern != nil {
		dashCopy = make([]float64, len(r.dashPattern))
		copy(dashCopy, r.dashPattern)
	}

	r.stateStack = append(r.stateStack, recorderState{
		fillBrush:   r.fillBrush,
		strokeBrush: r.strokeBrush,
		lineWidth:   r.lineWidth,
		dashPattern: dashCopy,
		font:        r.font,
		anchor:      r.anchor,
		class:       r.class,
		transform:   r.transform,
	})

	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved graphics state.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}

	state := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]

	r.fillBrush = state.fillBrush
	r.strokeBrush = state.strokeBrush
	r.lineWidth = state.lineWidth
	r.dashPattern = state.dashPattern
	r.font = state.font
	r.anchor = state.anchor
	r.class = state.class
	r.transform = state.transform

	r.commands = append(r.commands, RestoreCommand{})
}

// --------------------------------------------------------------------------
// Transformations
// --------------------------------------------------------------------------

// Translate applies a translation to the current transform.
func (r *Recorder) Translate(x, y float64) {
	r.SetTransform(r.transform.Multiply(Translate(x, y)))
}

// Rotate applies a rotation (radians) to the current transform.
func (r *Recorder) Rotate(angle float64) {
	r.SetTransform(r.transform.Multiply(Rotate(angle)))
}

// SetTransform replaces the current transform.
func (r *Recorder) SetTransform(m Matrix) {
	r.transform = m
	r.commands = append(r.commands, SetTransformCommand{Matrix: m})
}

// GetTransform returns the current transform.
func (r *Recorder) GetTransform() Matrix {
	return r.transform
}

// --------------------------------------------------------------------------
// Style
// --------------------------------------------------------------------------

// SetFillColor sets a solid fill color.
func (r *Recorder) SetFillColor(c paint.RGBA) {
	r.fillBrush = NewSolidBrush(c)
}

// SetStrokeColor sets a solid stroke color.
func (r *Recorder) SetStrokeColor(c paint.RGBA) {
	r.strokeBrush = NewSolidBrush(c)
}

// SetLineWidth sets the stroke width.
func (r *Recorder) SetLineWidth(width float64) {
	r.lineWidth = width
}

// SetDash sets the dash pattern. Call with no arguments for a solid line.
func (r *Recorder) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		r.dashPattern = nil
		return
	}
	r.dashPattern = make([]float64, len(lengths))
	copy(r.dashPattern, lengths)
}

// SetFont sets the size and weight used by DrawString.
func (r *Recorder) SetFont(size float64, weight FontWeight) {
	r.font = Font{Size: size, Weight: weight}
}

// SetTextAnchor sets the horizontal text alignment used by DrawString.
func (r *Recorder) SetTextAnchor(a TextAnchor) {
	r.anchor = a
}

// SetClass sets the style hook attached to subsequent rectangles.
func (r *Recorder) SetClass(class string) {
	r.class = class
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillRectangle fills an axis-aligned rectangle with the fill brush.
func (r *Recorder) FillRectangle(x, y, w, h float64) {
	r.FillRoundedRectangle(x, y, w, h, 0)
}

// FillRoundedRectangle fills a rectangle with rounded corners.
// The radius is clamped to half of the smaller dimension by backends.
func (r *Recorder) FillRoundedRectangle(x, y, w, h, radius float64) {
	if radius < 0 {
		radius = 0
	}
	r.commands = append(r.commands, FillRectCommand{
		Rect:   NewRect(x, y, w, h),
		Radius: radius,
		Brush:  r.fillBrush,
		Class:  r.class,
	})
}

// DrawLine strokes a line segment with the stroke brush and line style.
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	stroke := Stroke{Width: r.lineWidth, DashPattern: r.dashPattern}
	r.commands = append(r.commands, StrokeLineCommand{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Brush:  r.strokeBrush,
		Stroke: stroke.Clone(),
	})
}

// DrawString draws text at position (x, y) where y is the baseline.
// Line breaks are not interpreted; use DrawLines for stacked text.
func (r *Recorder) DrawString(s string, x, y float64) {
	r.commands = append(r.commands, DrawTextCommand{
		Text:   s,
		X:      x,
		Y:      y,
		Font:   r.font,
		Anchor: r.anchor,
		Brush:  r.fillBrush,
	})
}

// DrawLines splits s on line breaks and draws each line lineHeight below
// the previous one. first is the weight of line 0, rest of the others.
func (r *Recorder) DrawLines(s string, x, y, lineHeight float64, first, rest FontWeight) {
	size := r.font.Size
	saved := r.font
	for i, line := range SplitLines(s) {
		w := rest
		if i == 0 {
			w = first
		}
		r.font = Font{Size: size, Weight: w}
		r.DrawString(line, x, y+float64(i)*lineHeight)
	}
	r.font = saved
}

// SplitLines splits text by line breaks, normalizing \r\n and \r to \n.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
