package counter

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		ok   bool
		want Target
	}{
		{"95.3%", true, Target{Value: 95.3, Suffix: "%", Decimals: 1}},
		{"130", true, Target{Value: 130}},
		{"2.56x", true, Target{Value: 2.56, Suffix: "x", Decimals: 1}},
		{"1.2M", true, Target{Value: 1.2, Suffix: "M", Decimals: 1}},
		{"5k", true, Target{Value: 5, Suffix: "k"}},
		{" 85 ", true, Target{Value: 85}},
		{"p<0.001", false, Target{}},
		{"6 Years", false, Target{}},
		{"1.2.3", true, Target{Value: 1.2, Decimals: 1}},
		{"7..5%", true, Target{Value: 7, Suffix: "%"}},
		{".", false, Target{}},
		{"", false, Target{}},
		{"%", false, Target{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Classify(tt.text)
			if ok != tt.ok {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func frames(c *Counter) []string {
	var out []string
	for n := 0; n < 1000; n++ {
		text, done := c.Next()
		out = append(out, text)
		if done {
			break
		}
	}
	return out
}

func TestCounterFrames(t *testing.T) {
	tests := []struct {
		text  string
		final string
	}{
		{"95.3%", "95.3%"},
		{"130", "130"},
		{"2.56x", "2.6x"},
		{"0", "0"},
		{"1500", "1500"},
		{"12345.6k", "12345.6k"},
		{"1.2.3", "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			target, ok := Classify(tt.text)
			if !ok {
				t.Fatalf("Classify(%q) failed", tt.text)
			}
			got := frames(New(target))
			if n := len(got); n > DefaultSteps+1 {
				t.Errorf("frames = %d, want <= %d", n, DefaultSteps+1)
			}
			if last := got[len(got)-1]; last != tt.final {
				t.Errorf("final text = %q, want %q", last, tt.final)
			}
		})
	}
}

func TestCounterMonotonic(t *testing.T) {
	target, _ := Classify("130")
	c := New(target, WithSteps(10))
	prev := -1.0
	for !c.Done() {
		c.Next()
		if c.current < prev {
			t.Fatalf("value went down: %v < %v", c.current, prev)
		}
		prev = c.current
	}
	if c.current != 130 {
		t.Errorf("final value = %v, want 130", c.current)
	}
	// Further steps keep the final text.
	if text, done := c.Next(); text != "130" || !done {
		t.Errorf("Next after done = %q, %v", text, done)
	}
}

func TestRun(t *testing.T) {
	target, _ := Classify("85")
	c := New(target, WithTick(time.Millisecond), WithSteps(5))

	var got []string
	if err := c.Run(context.Background(), func(s string) { got = append(got, s) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) == 0 || got[len(got)-1] != "85" {
		t.Errorf("frames = %v, want to end at 85", got)
	}
}

func TestRunCanceled(t *testing.T) {
	target, _ := Classify("1000")
	c := New(target, WithTick(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx, func(string) {}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestAnimateNonFigure(t *testing.T) {
	var got []string
	if err := Animate(context.Background(), "p<0.001", func(s string) { got = append(got, s) }); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "p<0.001" {
		t.Errorf("frames = %v, want the text unchanged", got)
	}
}

func TestCounterLocale(t *testing.T) {
	target, ok := Classify("2.56x")
	if !ok {
		t.Fatal("Classify(2.56x) = false")
	}
	got := frames(New(target, WithLocale(language.German), WithSteps(4)))
	if final := got[len(got)-1]; final != "2,6x" {
		t.Errorf("final frame = %q, want %q", final, "2,6x")
	}
}
