// Package inks implements the catalog query operations shared by the MCP
// tools and the command line.
package inks

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/jmylchreest/inkswatch/internal/catalog"
	"github.com/jmylchreest/inkswatch/internal/colour"
)

// Result caps. Larger requests are clamped rather than rejected.
const (
	MaxSearchResults = 50
	MaxMakerResults  = 200
	MaxPaletteSize   = 12
)

var (
	// ErrInkNotFound is returned when an ink ID is not in the catalog.
	ErrInkNotFound = errors.New("ink not found")

	// ErrEmptyQuery is returned for blank search terms.
	ErrEmptyQuery = errors.New("query must not be empty")
)

// URLTemplates build per-ink links. "{id}" is replaced with the escaped ink ID.
type URLTemplates struct {
	Detail string
	Image  string
}

// DefaultURLTemplates returns the templates used when none are configured.
func DefaultURLTemplates() URLTemplates {
	return URLTemplates{
		Detail: "https://inkswatch.app/inks/{id}",
		Image:  "https://inkswatch.app/swatches/{id}.jpg",
	}
}

// DetailURL returns the detail page link for id.
func (t URLTemplates) DetailURL(id string) string {
	return expand(t.Detail, id)
}

// ImageURL returns the swatch image link for id.
func (t URLTemplates) ImageURL(id string) string {
	return expand(t.Image, id)
}

func expand(tmpl, id string) string {
	return strings.ReplaceAll(tmpl, "{id}", url.PathEscape(id))
}

// Service answers catalog queries against the store's current snapshot.
type Service struct {
	store *catalog.Store
	urls  URLTemplates
}

// NewService creates a query service.
func NewService(store *catalog.Store, urls URLTemplates) *Service {
	return &Service{store: store, urls: urls}
}

// Snapshot returns the snapshot queries currently run against.
func (s *Service) Snapshot() *catalog.Snapshot {
	return s.store.Snapshot()
}

// InkResult is one ink in a query response.
type InkResult struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Maker     string     `json:"maker,omitempty"`
	Hex       string     `json:"hex"`
	RGB       colour.RGB `json:"rgb"`
	Distance  *float64   `json:"distance,omitempty"`
	DetailURL string     `json:"detailUrl"`
	ImageURL  string     `json:"imageUrl"`
}

func (s *Service) result(snap *catalog.Snapshot, ink catalog.Ink) InkResult {
	r := InkResult{
		ID:        ink.ID,
		Name:      ink.Name,
		Hex:       ink.Colour.Hex(),
		RGB:       ink.Colour,
		DetailURL: s.urls.DetailURL(ink.ID),
		ImageURL:  s.urls.ImageURL(ink.ID),
	}
	if m, ok := snap.Metadata(ink.ID); ok {
		r.Maker = m.Maker
	}
	return r
}

func (s *Service) scored(snap *catalog.Snapshot, m colour.Match[catalog.Ink]) InkResult {
	r := s.result(snap, m.Item)
	d := math.Round(m.Distance*100) / 100
	r.Distance = &d
	return r
}

// clampLimit rejects non-positive values and clamps large ones to upper.
func clampLimit(name string, limit, upper int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", colour.ErrInvalidArgument, name, limit)
	}
	return min(limit, upper), nil
}
