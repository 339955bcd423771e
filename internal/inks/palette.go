package inks

import (
	"strings"

	"github.com/jmylchreest/inkswatch/internal/colour"
)

// PaletteRequest describes a palette to build.
type PaletteRequest struct {
	// Theme is a built-in theme name, a comma-separated hex list, or the
	// base hex colour when Harmony is set.
	Theme   string
	Size    int
	Harmony string
}

// Palette is the response of a palette build. Inks may be fewer than
// Requested when the catalog runs out of distinct candidates.
type Palette struct {
	Theme     string      `json:"theme"`
	Harmony   string      `json:"harmony,omitempty"`
	Requested int         `json:"requested"`
	Targets   []string    `json:"targets"`
	Inks      []InkResult `json:"inks"`
}

// BuildPalette resolves req and picks one distinct ink per target colour.
func (s *Service) BuildPalette(req PaletteRequest) (*Palette, error) {
	size, err := clampLimit("size", req.Size, MaxPaletteSize)
	if err != nil {
		return nil, err
	}
	harmony := strings.TrimSpace(req.Harmony)

	snap := s.Snapshot()
	matches, err := colour.BuildPalette(req.Theme, size, harmony, snap.Inks())
	if err != nil {
		return nil, err
	}
	// Resolution already succeeded inside BuildPalette.
	targets, _ := colour.ResolveTargets(req.Theme, harmony)

	out := &Palette{
		Theme:     req.Theme,
		Harmony:   harmony,
		Requested: req.Size,
		Targets:   make([]string, 0, min(size, len(targets))),
		Inks:      make([]InkResult, len(matches)),
	}
	for _, t := range targets[:min(size, len(targets))] {
		out.Targets = append(out.Targets, t.Hex())
	}
	for i, m := range matches {
		out.Inks[i] = s.scored(snap, m)
	}
	return out, nil
}

// ThemeInfo describes a built-in theme.
type ThemeInfo struct {
	Name    string   `json:"name"`
	Colours []string `json:"colours"`
}

// Themes lists the built-in palette themes.
func Themes() []ThemeInfo {
	names := colour.ThemeNames()
	out := make([]ThemeInfo, len(names))
	for i, name := range names {
		targets, _ := colour.Theme(name)
		hexes := make([]string, len(targets))
		for j, t := range targets {
			hexes[j] = t.Hex()
		}
		out[i] = ThemeInfo{Name: name, Colours: hexes}
	}
	return out
}
