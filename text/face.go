package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces caches golang.org/x/image font faces by size and weight.
// Faces is safe for concurrent use, but the font.Face values it returns
// are not; callers must not share a returned face between goroutines.
type Faces struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewFaces parses the Go regular and bold fonts.
func NewFaces() (*Faces, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Faces{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face returns a face for the given pixel size (72 DPI) and weight.
func (f *Faces) Face(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: new face %.1fpx: %w", size, err)
	}
	f.faces[key] = face
	return face, nil
}

// Close releases every cached face.
func (f *Faces) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var first error
	for k, face := range f.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(f.faces, k)
	}
	return first
}
