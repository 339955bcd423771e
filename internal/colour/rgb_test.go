package colour

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", hex: "#ff0000", want: RGB{R: 255}},
		{name: "without hash", hex: "00ff00", want: RGB{G: 255}},
		{name: "uppercase", hex: "#1A2B3C", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "black", hex: "#000000", want: RGB{}},
		{name: "shorthand rejected", hex: "#fff", wantErr: true},
		{name: "too long", hex: "#ff00000", wantErr: true},
		{name: "non hex digit", hex: "#gg0000", wantErr: true},
		{name: "double hash", hex: "##ff0000", wantErr: true},
		{name: "sign rejected", hex: "+f0000", wantErr: true},
		{name: "empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidFormat", tt.hex, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#0a0B0c", "#7f3E21", "#00ff80"} {
		rgb, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", hex, err)
		}
		if got := rgb.Hex(); got != strings.ToLower(hex) {
			t.Errorf("round trip %q = %q", hex, got)
		}
	}
}

func TestRGBHexPadding(t *testing.T) {
	if got := (RGB{R: 1, G: 2, B: 3}).Hex(); got != "#010203" {
		t.Errorf("Hex() = %q, want #010203", got)
	}
}

func TestToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "red", rgb: RGB{R: 255}, want: HSL{H: 0, S: 1, L: 0.5}},
		{name: "green", rgb: RGB{G: 255}, want: HSL{H: 120, S: 1, L: 0.5}},
		{name: "blue", rgb: RGB{B: 255}, want: HSL{H: 240, S: 1, L: 0.5}},
		{name: "magenta wraps positive", rgb: RGB{R: 255, B: 128}, want: HSL{H: 329.88, S: 1, L: 0.5}},
		{name: "gray", rgb: RGB{R: 128, G: 128, B: 128}, want: HSL{H: 0, S: 0, L: 0.502}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSL{H: 0, S: 0, L: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSL(tt.rgb)
			if math.Abs(got.H-tt.want.H) > 0.1 || math.Abs(got.S-tt.want.S) > 0.01 || math.Abs(got.L-tt.want.L) > 0.01 {
				t.Errorf("ToHSL(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 13 {
				in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				out := FromHSL(ToHSL(in))
				if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
					t.Fatalf("HSL round trip %v -> %v", in, out)
				}
			}
		}
	}
}

func TestFromHSLClamps(t *testing.T) {
	got := FromHSL(HSL{H: -30, S: 1.5, L: 2})
	if got != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("FromHSL out of range = %v, want white", got)
	}
}

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{390, 30},
		{-30, 330},
		{-720, 0},
		{719.5, 359.5},
	}
	for _, tt := range tests {
		if got := NormaliseHue(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormaliseHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
