package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalise folds a name for matching: diacritics are stripped, case is
// folded and runs of whitespace collapse to a single space.
func Normalise(s string) string {
	// Transformers carry state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

func containsFolded(haystack, needle string) bool {
	n := Normalise(needle)
	return n != "" && strings.Contains(Normalise(haystack), n)
}
