// Package config loads the chart and server settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Stat is a headline figure shown on the page.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Section is a navigation entry of the page.
type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Config holds everything the CLI and the server need. Keys absent from
// the file keep their defaults.
type Config struct {
	Format   string        `yaml:"format"`
	OutDir   string        `yaml:"out_dir"`
	Listen   string        `yaml:"listen"`
	Locale   string        `yaml:"locale"`
	Strict   bool          `yaml:"strict"`
	Debounce time.Duration `yaml:"debounce"`

	Title       string                     `yaml:"title"`
	Sections    []Section                  `yaml:"sections"`
	Stats       []Stat                     `yaml:"stats"`
	Periods     []ggchart.PeriodRecord     `yaml:"periods"`
	Instruments []ggchart.InstrumentRecord `yaml:"instruments"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   FormatSVG,
		OutDir:   ".",
		Listen:   ":8080",
		Locale:   "en",
		Debounce: 250 * time.Millisecond,
		Title:    "Order Block Concentration",
		Sections: []Section{
			{ID: "overview", Title: "Overview"},
			{ID: "results", Title: "Results"},
			{ID: "methodology", Title: "Methodology"},
		},
		Stats: []Stat{
			{Label: "XAUUSD order block rate", Value: "95.3%"},
			{Label: "Zones analyzed", Value: "130"},
			{Label: "Concentration factor", Value: "2.56x"},
			{Label: "Significance", Value: "p<0.001"},
			{Label: "Period covered", Value: "6 Years"},
		},
		Periods:     ggchart.PeriodData(),
		Instruments: ggchart.InstrumentData(),
	}
}

// Load reads a YAML file. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the output format, locale and timing.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("%w: unknown format %q (want svg or png)", ErrInvalid, c.Format)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce %v", ErrInvalid, c.Debounce)
	}
	return nil
}

// LocaleTag returns the parsed locale, falling back to English.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Backend returns the recording backend name for the output format.
func (c Config) Backend() string {
	if c.Format == FormatPNG {
		return "raster"
	}
	return "svg"
}

// Extension returns the file extension for the output format.
func (c Config) Extension() string {
	return "." + c.Format
}

// ChartOptions returns the chart building options.
func (c Config) ChartOptions() []ggchart.Option {
	opts := []ggchart.Option{ggchart.WithLocale(c.LocaleTag())}
	if c.Strict {
		opts = append(opts, ggchart.WithStrict())
	}
	return opts
}

// Renderer returns a renderer for the configured datasets.
func (c Config) Renderer() *ggchart.Renderer {
	return ggchart.NewRenderer(c.Periods, c.Instruments, c.ChartOptions()...)
}

// PageOptions returns the page furniture.
func (c Config) PageOptions() []surface.PageOption {
	sections := make([]surface.Section, len(c.Sections))
	for i, s := range c.Sections {
		sections[i] = surface.Section{ID: s.ID, Title: s.Title}
	}
	stats := make([]surface.Stat, len(c.Stats))
	for i, s := range c.Stats {
		stats[i] = surface.Stat{Label: s.Label, Value: s.Value}
	}
	return []surface.PageOption{
		surface.WithTitle(c.Title),
		surface.WithSections(sections...),
		surface.WithStats(stats...),
		surface.WithLogger(ggchart.Logger()),
	}
}
