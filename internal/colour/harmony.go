package colour

import (
	"fmt"
	"strings"
)

// HarmonyRule names a hue offset pattern used to derive related colours from
// a base colour.
type HarmonyRule string

// Supported harmony rules.
const (
	HarmonyComplementary      HarmonyRule = "complementary"
	HarmonyAnalogous          HarmonyRule = "analogous"
	HarmonyTriadic            HarmonyRule = "triadic"
	HarmonySplitComplementary HarmonyRule = "split-complementary"
)

// harmonyOffsets maps each rule to its hue offsets in degrees. The base
// colour is always first.
var harmonyOffsets = map[HarmonyRule][]float64{
	HarmonyComplementary:      {0, 180},
	HarmonyAnalogous:          {0, 30, 330},
	HarmonyTriadic:            {0, 120, 240},
	HarmonySplitComplementary: {0, 150, 210},
}

// HarmonyRules returns all supported harmony rules in a stable order.
func HarmonyRules() []HarmonyRule {
	return []HarmonyRule{
		HarmonyComplementary,
		HarmonyAnalogous,
		HarmonyTriadic,
		HarmonySplitComplementary,
	}
}

// ParseHarmonyRule parses a rule name case-insensitively. Underscores and
// spaces are accepted in place of hyphens.
func ParseHarmonyRule(s string) (HarmonyRule, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)

	rule := HarmonyRule(name)
	if _, ok := harmonyOffsets[rule]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownHarmonyRule, s, joinRules(HarmonyRules()))
	}
	return rule, nil
}

// GenerateHarmony returns the colours of a harmony rule applied to base. All
// results share the base saturation and lightness.
func GenerateHarmony(base HSL, rule HarmonyRule) ([]HSL, error) {
	offsets, ok := harmonyOffsets[rule]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownHarmonyRule, string(rule), joinRules(HarmonyRules()))
	}

	out := make([]HSL, len(offsets))
	for i, offset := range offsets {
		out[i] = HSL{H: NormaliseHue(base.H + offset), S: base.S, L: base.L}
	}
	return out, nil
}

func joinRules(rules []HarmonyRule) string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
