package colour

import (
	"slices"
	"strings"
)

// themes holds the built-in palette themes. The colours are hand-picked
// reference targets, listed in the order palettes are filled.
var themes = map[string][]RGB{
	"ocean": {
		{R: 0, G: 61, B: 91},
		{R: 0, G: 105, B: 148},
		{R: 0, G: 150, B: 199},
		{R: 72, G: 202, B: 228},
		{R: 144, G: 224, B: 239},
	},
	"forest": {
		{R: 34, G: 68, B: 34},
		{R: 46, G: 107, B: 48},
		{R: 85, G: 107, B: 47},
		{R: 107, G: 142, B: 35},
		{R: 101, G: 67, B: 33},
	},
	"sunset": {
		{R: 255, G: 94, B: 77},
		{R: 255, G: 149, B: 5},
		{R: 255, G: 201, B: 60},
		{R: 199, G: 44, B: 65},
		{R: 106, G: 44, B: 112},
	},
	"autumn": {
		{R: 165, G: 42, B: 42},
		{R: 204, G: 85, B: 0},
		{R: 218, G: 165, B: 32},
		{R: 128, G: 70, B: 27},
		{R: 85, G: 107, B: 47},
	},
	"spring": {
		{R: 152, G: 251, B: 152},
		{R: 255, G: 182, B: 193},
		{R: 230, G: 230, B: 250},
		{R: 255, G: 250, B: 150},
		{R: 135, G: 206, B: 235},
	},
	"winter": {
		{R: 25, G: 25, B: 112},
		{R: 70, G: 130, B: 180},
		{R: 176, G: 196, B: 222},
		{R: 112, G: 128, B: 144},
		{R: 47, G: 79, B: 79},
	},
	"earth": {
		{R: 139, G: 69, B: 19},
		{R: 160, G: 82, B: 45},
		{R: 107, G: 142, B: 35},
		{R: 188, G: 143, B: 143},
		{R: 112, G: 84, B: 62},
	},
	"pastel": {
		{R: 255, G: 179, B: 186},
		{R: 255, G: 223, B: 186},
		{R: 255, G: 255, B: 186},
		{R: 186, G: 255, B: 201},
		{R: 186, G: 225, B: 255},
		{R: 218, G: 186, B: 255},
	},
	"jewel": {
		{R: 15, G: 82, B: 186},
		{R: 0, G: 128, B: 96},
		{R: 155, G: 17, B: 30},
		{R: 102, G: 51, B: 153},
		{R: 230, G: 190, B: 0},
	},
	"monochrome": {
		{R: 20, G: 20, B: 20},
		{R: 64, G: 64, B: 64},
		{R: 112, G: 112, B: 112},
		{R: 160, G: 160, B: 160},
	},
	"vintage": {
		{R: 112, G: 66, B: 20},
		{R: 128, G: 0, B: 32},
		{R: 0, G: 66, B: 37},
		{R: 54, G: 69, B: 79},
		{R: 184, G: 134, B: 11},
	},
	"desert": {
		{R: 237, G: 201, B: 175},
		{R: 210, G: 180, B: 140},
		{R: 194, G: 120, B: 62},
		{R: 160, G: 82, B: 45},
	},
}

// ThemeNames returns the names of the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Theme returns a copy of the target colours of a built-in theme.
// Lookup is case-insensitive.
func Theme(name string) ([]RGB, bool) {
	targets, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return slices.Clone(targets), true
}
