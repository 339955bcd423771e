package colour

import (
	"strings"
)

// Colour family labels returned by ClassifyFamily.
const (
	FamilyGray        = "gray"
	FamilyRed         = "red"
	FamilyGreen       = "green"
	FamilyBlue        = "blue"
	FamilyYellow      = "yellow"
	FamilyMagenta     = "magenta"
	FamilyCyan        = "cyan"
	FamilyOrange      = "orange"
	FamilyPurple      = "purple"
	FamilyTeal        = "teal"
	FamilyYellowGreen = "yellow-green"
	FamilyBlueGreen   = "blue-green"
	FamilyMixed       = "mixed"
)

// Classification thresholds. These are tuned against the swatch catalog and
// must not change without re-checking every family boundary.
const (
	grayMaxSpread     = 22  // spread strictly below this is gray
	dominantMargin    = 20  // a primary must exceed both others by more than this
	secondaryHigh     = 150 // both blended channels must exceed this
	secondaryLow      = 100 // the remaining channel must be under this
	subFamilyMargin   = 30  // margin between the non-dominant channels
	darkBrightness    = 85
	lightBrightness   = 170
	mutedSaturation   = 30
	vibrantSaturation = 150
)

// ClassifyFamily derives a discrete colour family label from an RGB value.
// Rules are evaluated in priority order and the first match wins.
func ClassifyFamily(rgb RGB) string {
	r, g, b := int(rgb.R), int(rgb.G), int(rgb.B)
	hi, lo := max(r, g, b), min(r, g, b)

	if hi-lo < grayMaxSpread {
		return FamilyGray
	}

	switch {
	case r-g > dominantMargin && r-b > dominantMargin:
		return FamilyRed
	case g-r > dominantMargin && g-b > dominantMargin:
		return FamilyGreen
	case b-r > dominantMargin && b-g > dominantMargin:
		return FamilyBlue
	}

	switch {
	case r > secondaryHigh && g > secondaryHigh && b < secondaryLow:
		return FamilyYellow
	case r > secondaryHigh && b > secondaryHigh && g < secondaryLow:
		return FamilyMagenta
	case g > secondaryHigh && b > secondaryHigh && r < secondaryLow:
		return FamilyCyan
	}

	switch hi {
	case r:
		return subFamily(g, b, FamilyOrange, FamilyPurple, FamilyRed)
	case g:
		return subFamily(b, r, FamilyTeal, FamilyYellowGreen, FamilyGreen)
	case b:
		return subFamily(r, g, FamilyPurple, FamilyBlueGreen, FamilyBlue)
	}

	return FamilyMixed
}

// subFamily picks a finer label within a dominant-channel branch by comparing
// the two remaining channels.
func subFamily(first, second int, firstWins, secondWins, neither string) string {
	switch {
	case first-second > subFamilyMargin:
		return firstWins
	case second-first > subFamilyMargin:
		return secondWins
	default:
		return neither
	}
}

// DescribeColour returns a short human readable description such as
// "dark vibrant red", built from brightness, saturation and family.
func DescribeColour(rgb RGB) string {
	r, g, b := int(rgb.R), int(rgb.G), int(rgb.B)
	brightness := float64(r+g+b) / 3.0
	saturation := max(r, g, b) - min(r, g, b)

	var sb strings.Builder
	switch {
	case brightness < darkBrightness:
		sb.WriteString("dark ")
	case brightness > lightBrightness:
		sb.WriteString("light ")
	}

	switch {
	case saturation < mutedSaturation:
		sb.WriteString("muted ")
	case saturation > vibrantSaturation:
		sb.WriteString("vibrant ")
	}

	sb.WriteString(ClassifyFamily(rgb))
	return strings.TrimSpace(sb.String())
}
