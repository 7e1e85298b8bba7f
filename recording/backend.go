package recording

import "io"

// Backend is the interface that all export backends must implement.
// Backends receive high-level drawing commands and translate them to
// their output format (SVG elements, raster pixels, ...).
//
// A Backend manages its own state stack for Save/Restore operations and
// applies the current transform to everything it draws.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Manage own state stack for Save/Restore
//  4. Start from an empty canvas on every Begin
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	// Any output from a previous playback is discarded.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	// Save saves the current graphics state (transform) onto a stack.
	Save()

	// Restore restores the graphics state from the stack.
	// If the stack is empty, this is a no-op.
	Restore()

	// SetTransform sets the current transformation matrix.
	SetTransform(m Matrix)

	// FillRect fills a rectangle, rounding its corners by radius.
	// class is an optional style hook that markup backends may emit.
	FillRect(rect Rect, radius float64, brush Brush, class string)

	// StrokeLine strokes the segment (x1, y1)-(x2, y2).
	StrokeLine(x1, y1, x2, y2 float64, brush Brush, stroke Stroke)

	// DrawText draws a single line of text whose baseline passes through y
	// and which is aligned around x according to anchor.
	DrawText(s string, x, y float64, font Font, anchor TextAnchor, brush Brush)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
