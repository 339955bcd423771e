package inks

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/inkswatch/internal/catalog"
	"github.com/jmylchreest/inkswatch/internal/colour"
)

// ColourInfo describes a single colour.
type ColourInfo struct {
	Hex         string     `json:"hex"`
	RGB         colour.RGB `json:"rgb"`
	HSL         colour.HSL `json:"hsl"`
	Family      string     `json:"family"`
	Description string     `json:"description"`
}

// DescribeRGB classifies and describes rgb.
func DescribeRGB(rgb colour.RGB) ColourInfo {
	return ColourInfo{
		Hex:         rgb.Hex(),
		RGB:         rgb,
		HSL:         colour.ToHSL(rgb),
		Family:      colour.ClassifyFamily(rgb),
		Description: colour.DescribeColour(rgb),
	}
}

// ColourSearch is the response of a nearest-colour query.
type ColourSearch struct {
	Target  ColourInfo  `json:"target"`
	Results []InkResult `json:"results"`
}

// SearchByName fuzzy-matches ink names.
func (s *Service) SearchByName(query string, limit int) ([]InkResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	limit, err := clampLimit("limit", limit, MaxSearchResults)
	if err != nil {
		return nil, err
	}

	snap := s.Snapshot()
	matches := snap.SearchName(query, limit)
	out := make([]InkResult, len(matches))
	for i, m := range matches {
		out[i] = s.result(snap, m.Ink)
	}
	return out, nil
}

// SearchByColour ranks the catalog by distance to a hex colour.
func (s *Service) SearchByColour(hex string, limit int) (*ColourSearch, error) {
	target, err := colour.ParseHex(strings.TrimSpace(hex))
	if err != nil {
		return nil, err
	}
	limit, err = clampLimit("limit", limit, MaxSearchResults)
	if err != nil {
		return nil, err
	}

	snap := s.Snapshot()
	matches, err := colour.Nearest(target, snap.Inks(), limit)
	if err != nil {
		return nil, err
	}

	out := &ColourSearch{Target: DescribeRGB(target), Results: make([]InkResult, len(matches))}
	for i, m := range matches {
		out.Results[i] = s.scored(snap, m)
	}
	return out, nil
}

// InkDetails is the full record for a single ink.
type InkDetails struct {
	InkResult
	ShortName string     `json:"shortName,omitempty"`
	ScanDate  string     `json:"scanDate,omitempty"`
	Colour    ColourInfo `json:"colour"`
}

// Details returns one ink joined with its metadata. Missing metadata leaves
// the detail fields empty.
func (s *Service) Details(id string) (*InkDetails, error) {
	snap := s.Snapshot()
	ink, ok := snap.Ink(strings.TrimSpace(id))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInkNotFound, id)
	}

	d := &InkDetails{
		InkResult: s.result(snap, ink),
		Colour:    DescribeRGB(ink.Colour),
	}
	if m, ok := snap.Metadata(ink.ID); ok {
		d.ShortName = m.Name
		d.ScanDate = m.ScanDate
	}
	return d, nil
}

// MakerInks is the response of a per-maker listing.
type MakerInks struct {
	Maker string      `json:"maker"`
	Total int         `json:"total"`
	Inks  []InkResult `json:"inks"`
}

// ByMaker lists a maker's inks in catalog order.
func (s *Service) ByMaker(maker string, limit int) (*MakerInks, error) {
	if strings.TrimSpace(maker) == "" {
		return nil, ErrEmptyQuery
	}
	limit, err := clampLimit("limit", limit, MaxMakerResults)
	if err != nil {
		return nil, err
	}

	snap := s.Snapshot()
	all := snap.ByMaker(maker)
	out := &MakerInks{Maker: maker, Total: len(all), Inks: make([]InkResult, 0, min(limit, len(all)))}
	for _, ink := range all[:min(limit, len(all))] {
		out.Inks = append(out.Inks, s.result(snap, ink))
	}
	return out, nil
}

// Makers lists every maker with its ink count.
func (s *Service) Makers() []catalog.MakerCount {
	return s.Snapshot().Makers()
}
