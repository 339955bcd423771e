package colour

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// MaxDistance is the distance between black and white.
var MaxDistance = math.Sqrt(3 * 255 * 255)

// Swatch is anything that can be ranked by colour. Ink catalog entries
// implement it.
type Swatch interface {
	SwatchID() string
	SwatchRGB() RGB
}

// Match is a swatch paired with its distance to a target colour.
// Lower distances are more similar.
type Match[T Swatch] struct {
	Item     T
	Distance float64
}

// Distance returns the unweighted Euclidean distance between two colours in
// RGB space. The result lies in [0, MaxDistance].
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Nearest ranks candidates by distance to target and returns at most limit
// matches. Equal distances keep their candidate order.
func Nearest[T Swatch](target RGB, candidates []T, limit int) ([]Match[T], error) {
	return NearestExcluding(target, candidates, limit, nil)
}

// NearestExcluding is Nearest with the candidates whose ids are in exclude
// removed before ranking.
func NearestExcluding[T Swatch](target RGB, candidates []T, limit int, exclude map[string]struct{}) ([]Match[T], error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}

	matches := make([]Match[T], 0, len(candidates))
	for _, c := range candidates {
		if _, skip := exclude[c.SwatchID()]; skip {
			continue
		}
		matches = append(matches, Match[T]{Item: c, Distance: Distance(target, c.SwatchRGB())})
	}

	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
