// Package colour provides the colour matching and palette generation engine.
//
// Every function in this package is pure: it operates on values handed in by
// the caller and never touches shared state, so all of it is safe for
// concurrent use.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in RGB format.
// Channels are always in canonical red, green, blue order.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Channels returns the channels as a slice in canonical order.
func (rgb RGB) Channels() []int {
	return []int{int(rgb.R), int(rgb.G), int(rgb.B)}
}

// HSL is a hue (degrees, [0,360)), saturation ([0,1]) and lightness ([0,1]) triple.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S*100, c.L*100)
}

// ParseHex parses a hex colour string into an RGB struct.
// Accepts RRGGBB with an optional leading '#'. Shorthand forms are rejected.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: expected 6 hex digits, got %d", ErrInvalidFormat, hex, len(digits))
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, fmt.Errorf("%w: %q: invalid hex digit %q", ErrInvalidFormat, hex, digits[i])
		}
	}

	r, _ := strconv.ParseUint(digits[0:2], 16, 8)
	g, _ := strconv.ParseUint(digits[2:4], 16, 8)
	b, _ := strconv.ParseUint(digits[4:6], 16, 8)

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ToHSL converts RGB to HSL colour space.
// Achromatic colours have hue and saturation of zero.
func ToHSL(rgb RGB) HSL {
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	h, s, l := c.Hsl()
	return HSL{H: NormaliseHue(h), S: s, L: l}
}

// FromHSL converts HSL to RGB colour space, rounding each channel to the
// nearest integer and clamping it into [0,255].
func FromHSL(c HSL) RGB {
	r, g, b := colorful.Hsl(NormaliseHue(c.H), clamp01(c.S), clamp01(c.L)).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// NormaliseHue wraps a hue in degrees into [0,360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-18 mod 360 + 360 rounds up to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}
