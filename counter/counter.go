// Package counter animates headline figures from zero up to their value.
//
// Only plain figures are animated: a decimal number with an optional
// M, x, k or % suffix ("95.3%", "130", "2.56x", "1.2M"). Anything else
// ("p<0.001", "6 Years") is shown as is.
package counter

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/ggchart"
)

// Animation timing.
const (
	DefaultSteps = 50
	DefaultTick  = 20 * time.Millisecond
)

var figurePattern = regexp.MustCompile(`^([\d.]+)(M|x|k|%)?$`)

// Target is a classified figure.
type Target struct {
	Value    float64
	Suffix   string
	Decimals int
}

// Classify parses a display text. It reports false when the text is not a
// plain figure and must be left alone.
func Classify(text string) (Target, bool) {
	m := figurePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Target{}, false
	}
	v, err := strconv.ParseFloat(leadingNumber(m[1]), 64)
	if err != nil {
		return Target{}, false
	}
	t := Target{Value: v, Suffix: m[2]}
	if math.Mod(v, 1) != 0 {
		t.Decimals = 1
	}
	return t, true
}

// leadingNumber cuts s before its second decimal point, so "1.2.3"
// counts up to 1.2.
func leadingNumber(s string) string {
	first := strings.IndexByte(s, '.')
	if first < 0 {
		return s
	}
	if second := strings.IndexByte(s[first+1:], '.'); second >= 0 {
		return s[:first+1+second]
	}
	return s
}

// Counter steps a displayed value from zero to its target.
// A Counter is not safe for concurrent use.
type Counter struct {
	target    Target
	tick      time.Duration
	increment float64
	locale    language.Tag

	current float64
	done    bool
}

// Option configures a Counter.
type Option func(*Counter)

// WithTick sets the interval between frames.
func WithTick(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.tick = d
		}
	}
}

// WithSteps sets how many increments reach the target.
func WithSteps(n int) Option {
	return func(c *Counter) {
		if n > 0 {
			c.increment = c.target.Value / float64(n)
		}
	}
}

// WithLocale sets the number formatting locale.
func WithLocale(tag language.Tag) Option {
	return func(c *Counter) {
		c.locale = tag
	}
}

// New creates a Counter for t.
func New(t Target, opts ...Option) *Counter {
	c := &Counter{
		target:    t,
		tick:      DefaultTick,
		increment: t.Value / DefaultSteps,
		locale:    language.English,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text formats v the way the target is displayed.
func (c *Counter) Text(v float64) string {
	return ggchart.FormatFixed(c.locale, v, c.target.Decimals) + c.target.Suffix
}

// Next advances one step and returns the text to display. done is true
// once the target has been reached; the final text is exactly the target.
func (c *Counter) Next() (text string, done bool) {
	if !c.done {
		c.current += c.increment
		if c.current >= c.target.Value {
			c.current = c.target.Value
			c.done = true
		}
	}
	return c.Text(c.current), c.done
}

// Done reports whether the target has been reached.
func (c *Counter) Done() bool {
	return c.done
}

// Run emits one frame per tick until the target is reached or ctx is
// canceled. It returns ctx.Err() on cancellation.
func (c *Counter) Run(ctx context.Context, emit func(string)) error {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			text, done := c.Next()
			emit(text)
			if done {
				ggchart.Logger().Debug("counter: reached target", "text", text)
				return nil
			}
		}
	}
}

// Animate classifies text and runs a counter for it. Text that is not a
// plain figure is emitted once unchanged.
func Animate(ctx context.Context, text string, emit func(string), opts ...Option) error {
	t, ok := Classify(text)
	if !ok {
		emit(text)
		return nil
	}
	return New(t, opts...).Run(ctx, emit)
}
