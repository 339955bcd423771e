package catalog

import (
	"github.com/sahilm/fuzzy"
)

// NameMatch is a fuzzy name search hit.
type NameMatch struct {
	Ink   Ink
	Score int
}

// searchSource adapts the snapshot's search keys to fuzzy.Source.
type searchSource []string

func (s searchSource) String(i int) string { return s[i] }
func (s searchSource) Len() int            { return len(s) }

// SearchName fuzzy-matches query against ink names (prefixed with the maker
// when the name does not already contain it). Results are ordered best
// first and truncated to limit.
func (s *Snapshot) SearchName(query string, limit int) []NameMatch {
	q := Normalise(query)
	if q == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(q, searchSource(s.searchKeys))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]NameMatch, len(matches))
	for i, m := range matches {
		out[i] = NameMatch{Ink: s.inks[m.Index], Score: m.Score}
	}
	return out
}
