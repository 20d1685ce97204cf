package paint

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// LightenStep is the per-channel amount the Lighten and Darken tools shift a cell by.
const LightenStep = 10

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseColor accepts either the textual "rgb(r, g, b)" form or a hex
// form ("#rrggbb", "#rgb", with or without the leading '#').
func ParseColor(s string) (RGB, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrInvalidColorFormat)
	}

	if strings.HasPrefix(in, "rgb(") {
		return parseRGBFunc(s, in)
	}

	hex := in
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if (len(hex) != 4 && len(hex) != 7) || !isHexDigits(hex[1:]) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// parseRGBFunc handles "rgb(r,g,b)" and "rgb(r g b)".
func parseRGBFunc(orig, in string) (RGB, error) {
	if !strings.HasSuffix(in, ")") {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, orig)
	}
	body := in[len("rgb(") : len(in)-1]

	sep := " "
	if strings.Contains(body, ",") {
		sep = ","
	}
	var parts []string
	for _, p := range strings.Split(body, sep) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, orig)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: channel %q in %q", ErrInvalidColorFormat, p, orig)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseColor is ParseColor for constants known to be valid.
func MustParseColor(s string) RGB {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb", each channel zero-padded to two digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Luminance returns the CIE L* lightness of the color in [0, 1].
func (c RGB) Luminance() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Shade adds amount to each channel independently and clamps the result to [0, 255].
func Shade(c RGB, amount int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + amount),
		G: clampChannel(int(c.G) + amount),
		B: clampChannel(int(c.B) + amount),
	}
}

// clampChannel restricts v to a valid 8-bit channel value.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
