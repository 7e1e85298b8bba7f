package recording

import "fmt"

// mockBackend records the calls it receives as strings.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	calls      []string
	beginErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	b.calls = nil
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) Save()    { b.calls = append(b.calls, "save") }
func (b *mockBackend) Restore() { b.calls = append(b.calls, "restore") }

func (b *mockBackend) SetTransform(m Matrix) {
	b.calls = append(b.calls, fmt.Sprintf("transform %g,%g", m.C, m.F))
}

func (b *mockBackend) FillRect(r Rect, radius float64, brush Brush, class string) {
	b.calls = append(b.calls, fmt.Sprintf("rect %g,%g %gx%g r%g %s", r.X(), r.Y(), r.Width(), r.Height(), radius, BrushColor(brush).Hex()))
}

func (b *mockBackend) StrokeLine(x1, y1, x2, y2 float64, brush Brush, s Stroke) {
	b.calls = append(b.calls, fmt.Sprintf("line %g,%g-%g,%g w%g", x1, y1, x2, y2, s.Width))
}

func (b *mockBackend) DrawText(s string, x, y float64, f Font, a TextAnchor, brush Brush) {
	b.calls = append(b.calls, fmt.Sprintf("text %q %g,%g %s %d", s, x, y, a, f.Weight))
}
