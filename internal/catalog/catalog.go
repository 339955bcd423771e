// Package catalog holds the in-memory ink swatch catalog and its metadata.
//
// A Snapshot is built once from the loaded sources and never mutated. Hot
// reloads build a new Snapshot and swap it into a Store atomically.
package catalog

import (
	"cmp"
	"slices"
	"time"

	"github.com/jmylchreest/inkswatch/internal/colour"
)

// Ink is a single swatch in the catalog.
type Ink struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Colour colour.RGB `json:"rgb"`
}

// SwatchID implements colour.Swatch.
func (i Ink) SwatchID() string { return i.ID }

// SwatchRGB implements colour.Swatch.
func (i Ink) SwatchRGB() colour.RGB { return i.Colour }

// Metadata is descriptive information about an ink, joined to Ink by ID.
// Not every ink has metadata.
type Metadata struct {
	ID       string `json:"id"`
	Maker    string `json:"maker"`
	Name     string `json:"name"`
	ScanDate string `json:"date,omitempty"`
}

// MakerCount is a maker and the number of catalog inks attributed to it.
type MakerCount struct {
	Maker string `json:"maker"`
	Count int    `json:"count"`
}

// Snapshot is an immutable view of the catalog.
type Snapshot struct {
	inks     []Ink
	byID     map[string]int
	metadata map[string]Metadata
	makers   []MakerCount
	// searchKeys[i] is the normalised search text for inks[i].
	searchKeys []string
	loadedAt   time.Time
}

// NewSnapshot builds a snapshot from inks and metadata. Inks keep their
// order. For duplicate IDs the first entry wins on lookup.
func NewSnapshot(inks []Ink, metadata []Metadata) *Snapshot {
	s := &Snapshot{
		inks:       slices.Clone(inks),
		byID:       make(map[string]int, len(inks)),
		metadata:   make(map[string]Metadata, len(metadata)),
		searchKeys: make([]string, len(inks)),
		loadedAt:   time.Now(),
	}

	for i, ink := range s.inks {
		if _, dup := s.byID[ink.ID]; !dup {
			s.byID[ink.ID] = i
		}
	}
	for _, m := range metadata {
		if _, dup := s.metadata[m.ID]; !dup {
			s.metadata[m.ID] = m
		}
	}

	counts := make(map[string]int)
	for i, ink := range s.inks {
		key := ink.Name
		if m, ok := s.metadata[ink.ID]; ok {
			counts[m.Maker]++
			if !containsFolded(ink.Name, m.Maker) {
				key = m.Maker + " " + ink.Name
			}
		}
		s.searchKeys[i] = Normalise(key)
	}

	s.makers = make([]MakerCount, 0, len(counts))
	for maker, n := range counts {
		s.makers = append(s.makers, MakerCount{Maker: maker, Count: n})
	}
	slices.SortFunc(s.makers, func(a, b MakerCount) int {
		return cmp.Compare(Normalise(a.Maker), Normalise(b.Maker))
	})

	return s
}

// Len returns the number of inks.
func (s *Snapshot) Len() int {
	return len(s.inks)
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Inks returns a copy of all inks in catalog order.
func (s *Snapshot) Inks() []Ink {
	return slices.Clone(s.inks)
}

// Ink looks up an ink by ID.
func (s *Snapshot) Ink(id string) (Ink, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Ink{}, false
	}
	return s.inks[i], true
}

// Metadata looks up the metadata for an ink ID. A miss is normal.
func (s *Snapshot) Metadata(id string) (Metadata, bool) {
	m, ok := s.metadata[id]
	return m, ok
}

// Makers returns every maker with at least one ink, sorted by name.
func (s *Snapshot) Makers() []MakerCount {
	return slices.Clone(s.makers)
}

// ByMaker returns the inks made by maker in catalog order. Matching ignores
// case and diacritics. When no maker matches exactly, makers containing the
// query are used instead.
func (s *Snapshot) ByMaker(maker string) []Ink {
	want := Normalise(maker)
	if want == "" {
		return nil
	}

	match := func(m Metadata) bool { return Normalise(m.Maker) == want }
	out := s.filterByMetadata(match)
	if len(out) == 0 {
		out = s.filterByMetadata(func(m Metadata) bool {
			return containsFolded(m.Maker, maker)
		})
	}
	return out
}

func (s *Snapshot) filterByMetadata(keep func(Metadata) bool) []Ink {
	var out []Ink
	for _, ink := range s.inks {
		if m, ok := s.metadata[ink.ID]; ok && keep(m) {
			out = append(out, ink)
		}
	}
	return out
}
