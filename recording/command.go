package recording

// CommandType identifies the type of a command.
// Each command type corresponds to a specific drawing operation.
type CommandType uint8

const (
	// State commands
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Set transformation matrix

	// Drawing commands
	CmdFillRect   // Fill a (possibly rounded) rectangle
	CmdStrokeLine // Stroke a straight line segment
	CmdDrawText   // Draw a single line of text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdSetTransform: "SetTransform",
	CmdFillRect:     "FillRect",
	CmdStrokeLine:   "StrokeLine",
	CmdDrawText:     "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current graphics state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved graphics state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetTransformCommand sets the current transformation matrix.
type SetTransformCommand struct {
	// Matrix is the new (absolute) transformation matrix.
	Matrix Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRectCommand fills a rectangle with a brush.
type FillRectCommand struct {
	// Rect is the rectangle in user space.
	Rect Rect
	// Radius is the corner radius; zero means square corners.
	Radius float64
	// Brush is the fill brush.
	Brush Brush
	// Class is an optional style hook carried into markup outputs.
	Class string
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeLineCommand strokes a line segment.
type StrokeLineCommand struct {
	X1, Y1, X2, Y2 float64
	// Brush is the stroke brush.
	Brush Brush
	// Stroke contains the stroke style (width, dash).
	Stroke Stroke
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// DrawTextCommand draws text at a specified position.
type DrawTextCommand struct {
	// Text is the string to render. It never contains line breaks.
	Text string
	// X is the horizontal anchor position.
	X float64
	// Y is the vertical position (baseline).
	Y float64
	// Font is the font size and weight.
	Font Font
	// Anchor aligns the text horizontally around X.
	Anchor TextAnchor
	// Brush is the text color.
	Brush Brush
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// --------------------------------------------------------------------------
// Supporting Types
// --------------------------------------------------------------------------

// Stroke defines the style for stroking lines.
type Stroke struct {
	// Width is the line width in user units.
	Width float64
	// DashPattern is the dash pattern (nil for solid line).
	DashPattern []float64
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	if s.DashPattern != nil {
		result.DashPattern = make([]float64, len(s.DashPattern))
		copy(result.DashPattern, s.DashPattern)
	}
	return result
}

// IsDashed reports whether the stroke has a usable dash pattern.
func (s Stroke) IsDashed() bool {
	var total float64
	for _, d := range s.DashPattern {
		if d < 0 {
			return false
		}
		total += d
	}
	return total > 0
}

// FontWeight is a CSS-style numeric font weight.
type FontWeight int

// Common font weights.
const (
	WeightRegular  FontWeight = 400
	WeightSemiBold FontWeight = 600
	WeightBold     FontWeight = 700
)

// IsBold reports whether the weight should use a bold face when only
// regular and bold faces are available.
func (w FontWeight) IsBold() bool { return w >= WeightSemiBold }

// Font describes the text face of a DrawText command.
type Font struct {
	Size   float64
	Weight FontWeight
}

// TextAnchor aligns text horizontally around its X position.
type TextAnchor uint8

const (
	// AnchorStart places X at the start of the text.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the text on X.
	AnchorMiddle
	// AnchorEnd places X at the end of the text.
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a TextAnchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}
