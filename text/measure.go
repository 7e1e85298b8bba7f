package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggchart/internal/cache"
)

// Measurer returns the advance width of single-line strings using
// HarfBuzz shaping via go-text/typesetting, so kerning is accounted for.
//
// Measurer is safe for concurrent use. Parsed font.Font objects are shared
// (they are read-only); a lightweight font.Face is created per call because
// font.Face is not safe for concurrent use. HarfbuzzShaper instances are
// pooled since they carry a mutable buffer.
type Measurer struct {
	regular *font.Font
	bold    *font.Font

	shaperPool sync.Pool

	widths *cache.LRU[measureKey, float64]
}

// measureCacheSize bounds the number of cached widths.
const measureCacheSize = 1024

type measureKey struct {
	s    string
	size float64
	bold bool
}

var (
	defaultMeasurer     *Measurer
	defaultMeasurerErr  error
	defaultMeasurerOnce sync.Once
)

// DefaultMeasurer returns a process-wide Measurer backed by the Go fonts.
func DefaultMeasurer() (*Measurer, error) {
	defaultMeasurerOnce.Do(func() {
		defaultMeasurer, defaultMeasurerErr = NewMeasurer(goregular.TTF, gobold.TTF)
	})
	return defaultMeasurer, defaultMeasurerErr
}

// NewMeasurer parses the regular and bold TrueType fonts.
func NewMeasurer(regularTTF, boldTTF []byte) (*Measurer, error) {
	regular, err := parseFont(regularTTF)
	if err != nil {
		return nil, fmt.Errorf("text: parse regular font: %w", err)
	}
	bold, err := parseFont(boldTTF)
	if err != nil {
		return nil, fmt.Errorf("text: parse bold font: %w", err)
	}
	return &Measurer{
		regular: regular,
		bold:    bold,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		widths: cache.New[measureKey, float64](measureCacheSize),
	}, nil
}

// parseFont returns the thread-safe Font embedded in the parsed Face.
func parseFont(ttf []byte) (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

// Measure returns the advance width of s at the given size in user units.
// Empty strings measure zero.
func (m *Measurer) Measure(s string, size float64, bold bool) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	key := measureKey{s: s, size: size, bold: bold}

	if w, ok := m.widths.Get(key); ok {
		return w
	}
	w := m.shape(s, size, bold)
	m.widths.Set(key, w)
	return w
}

// CacheStats returns the hit and miss counts of the width cache.
func (m *Measurer) CacheStats() (hits, misses uint64) {
	st := m.widths.Stats()
	return st.Hits, st.Misses
}

func (m *Measurer) shape(s string, size float64, bold bool) float64 {
	f := m.regular
	if bold {
		f = m.bold
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Approximate estimates the advance width of s without a font, using the
// common 0.6em average glyph width.
func Approximate(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}
