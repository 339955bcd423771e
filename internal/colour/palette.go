package colour

import (
	"fmt"
	"strings"
)

// candidatesPerTarget bounds the ranking done for each palette target.
const candidatesPerTarget = 5

// ResolveTargets turns a theme request into an ordered list of target colours.
//
// With a harmony rule, themeSpec must be a single hex colour and the targets
// are its harmony. Otherwise themeSpec is looked up as a built-in theme and,
// failing that, parsed as a comma-separated list of hex colours.
func ResolveTargets(themeSpec, harmony string) ([]RGB, error) {
	if harmony != "" {
		base, err := ParseHex(strings.TrimSpace(themeSpec))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidBaseColor, themeSpec, err)
		}
		rule, err := ParseHarmonyRule(harmony)
		if err != nil {
			return nil, err
		}
		hsls, err := GenerateHarmony(ToHSL(base), rule)
		if err != nil {
			return nil, err
		}
		targets := make([]RGB, len(hsls))
		for i, c := range hsls {
			targets[i] = FromHSL(c)
		}
		return targets, nil
	}

	if targets, ok := Theme(themeSpec); ok {
		return targets, nil
	}

	if strings.HasPrefix(themeSpec, "#") || strings.Contains(themeSpec, ",") {
		return parseCustomPalette(themeSpec)
	}

	return nil, &UnknownThemeError{Theme: themeSpec, Available: ThemeNames()}
}

func parseCustomPalette(list string) ([]RGB, error) {
	segments := strings.Split(list, ",")
	targets := make([]RGB, 0, len(segments))
	for i, seg := range segments {
		rgb, err := ParseHex(strings.TrimSpace(seg))
		if err != nil {
			return nil, fmt.Errorf("%w: colour %d: %w", ErrInvalidCustomPalette, i+1, err)
		}
		targets = append(targets, rgb)
	}
	return targets, nil
}

// BuildPalette resolves a theme request and assigns each target colour the
// nearest catalog swatch not already used in this palette.
//
// Targets beyond size are ignored. A target with no remaining candidate is
// skipped, so the palette may be shorter than size.
func BuildPalette[T Swatch](themeSpec string, size int, harmony string, catalog []T) ([]Match[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: palette size must be positive, got %d", ErrInvalidArgument, size)
	}

	targets, err := ResolveTargets(themeSpec, harmony)
	if err != nil {
		return nil, err
	}

	return FillPalette(targets, size, catalog), nil
}

// FillPalette assigns catalog swatches to already resolved targets.
func FillPalette[T Swatch](targets []RGB, size int, catalog []T) []Match[T] {
	n := min(size, len(targets))
	used := make(map[string]struct{}, n)
	out := make([]Match[T], 0, n)

	for _, target := range targets[:max(n, 0)] {
		matches, err := NearestExcluding(target, catalog, candidatesPerTarget, used)
		if err != nil || len(matches) == 0 {
			continue
		}
		best := matches[0]
		used[best.Item.SwatchID()] = struct{}{}
		out = append(out, best)
	}
	return out
}
