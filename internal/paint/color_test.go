package paint

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected RGB
	}{
		{"hex long", "#ff0000", RGB{255, 0, 0}},
		{"hex upper", "#00FF7F", RGB{0, 255, 127}},
		{"hex no hash", "0a0b0c", RGB{10, 11, 12}},
		{"hex short", "#f80", RGB{255, 136, 0}},
		{"rgb commas", "rgb(1,2,3)", RGB{1, 2, 3}},
		{"rgb spaced commas", "rgb(10, 20, 30)", RGB{10, 20, 30}},
		{"rgb spaces", "rgb(255 128 0)", RGB{255, 128, 0}},
		{"rgb upper", "RGB(0,0,0)", RGB{0, 0, 0}},
		{"surrounding whitespace", "  #ffffff ", RGB{255, 255, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, c, tc.expected)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	inputs := []string{
		"",
		"red",
		"#12",
		"#1234",
		"#12345g",
		"#1234567",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgb(256,0,0)",
		"rgb(-1,0,0)",
		"rgb(1,2,3",
		"rgba(1,2,3,1)",
	}

	for _, in := range inputs {
		_, err := ParseColor(in)
		if err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
			continue
		}
		if !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("ParseColor(%q) error = %v, expected ErrInvalidColorFormat", in, err)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c        RGB
		expected string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{1, 2, 3}, "#010203"},
		{RGB{171, 205, 239}, "#abcdef"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("%v.Hex() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Walk every channel value on each axis plus a diagonal.
	for v := 0; v < 256; v++ {
		for _, c := range []RGB{
			{uint8(v), 0, 0},
			{0, uint8(v), 0},
			{0, 0, uint8(v)},
			{uint8(v), uint8(255 - v), uint8(v / 2)},
		} {
			parsed, err := ParseColor(c.Hex())
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", c.Hex(), err)
			}
			if parsed.Hex() != c.Hex() {
				t.Fatalf("round trip %q -> %q", c.Hex(), parsed.Hex())
			}
		}
	}
}

func TestShadeClamps(t *testing.T) {
	colors := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{5, 128, 250},
		{250, 3, 100},
	}
	amounts := []int{-1000, -256, -10, -1, 0, 1, 10, 256, 1000}

	for _, c := range colors {
		for _, amt := range amounts {
			got := Shade(c, amt)
			// uint8 already guarantees [0,255]; verify each channel matches the clamped sum.
			want := RGB{
				R: clampChannel(int(c.R) + amt),
				G: clampChannel(int(c.G) + amt),
				B: clampChannel(int(c.B) + amt),
			}
			if got != want {
				t.Errorf("Shade(%v, %d) = %v, expected %v", c, amt, got, want)
			}
		}
	}
}

func TestShadeZeroIsIdentity(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {12, 34, 56}, {255, 255, 255}} {
		if got := Shade(c, 0); got != c {
			t.Errorf("Shade(%v, 0) = %v", c, got)
		}
	}
}

func TestShadeSteps(t *testing.T) {
	if got := Shade(RGB{250, 100, 5}, LightenStep); got != (RGB{255, 110, 15}) {
		t.Errorf("lighten = %v", got)
	}
	if got := Shade(RGB{250, 100, 5}, -LightenStep); got != (RGB{240, 90, 0}) {
		t.Errorf("darken = %v", got)
	}
}

func TestClampChannel(t *testing.T) {
	tests := []struct {
		in       int
		expected uint8
	}{
		{-5, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}

	for _, tc := range tests {
		if got := clampChannel(tc.in); got != tc.expected {
			t.Errorf("clampChannel(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestLuminance(t *testing.T) {
	if Black.Luminance() > 0.01 {
		t.Errorf("black luminance = %f", Black.Luminance())
	}
	if White.Luminance() < 0.99 {
		t.Errorf("white luminance = %f", White.Luminance())
	}
}
