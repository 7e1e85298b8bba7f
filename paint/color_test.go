package paint

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#fbbf24", "#fbbf24"},
		{"2563eb", "#2563eb"},
		{"#fff", "#ffffff"},
		{"#10B981", "#10b981"},
	}
	for _, tt := range tests {
		if got := Hex(tt.in).Hex(); got != tt.want {
			t.Errorf("Hex(%q).Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexAlpha(t *testing.T) {
	c := Hex("#ff000080")
	if c.Opacity() < 0.5 || c.Opacity() > 0.51 {
		t.Errorf("Opacity() = %v, want ~0.502", c.Opacity())
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) returned nil error", in)
		}
	}
	if got := Hex("nope"); got != (RGBA{A: 1}) {
		t.Errorf("Hex(invalid) = %v, want opaque black", got)
	}
}

func TestColorConversion(t *testing.T) {
	got := Hex("#ef4444").Color().(color.NRGBA)
	want := color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}
