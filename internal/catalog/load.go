package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/inkswatch/internal/colour"
	"github.com/jmylchreest/inkswatch/internal/compression"
	"github.com/jmylchreest/inkswatch/internal/security"
	httputil "github.com/jmylchreest/inkswatch/internal/util/http"
	"github.com/jmylchreest/inkswatch/internal/util/sourcecache"
)

// maxSourceBytes caps a decompressed catalog source.
const maxSourceBytes = 256 * 1024 * 1024

var (
	errMissing  = errors.New("missing required field")
	errNotArray = errors.New("expected a JSON array of objects")
)

// Sources names the two catalog inputs. Each may be a local path or an
// http(s) URL; a ".xz", ".gz" or ".bz2" suffix marks compressed content.
type Sources struct {
	Inks     string
	Metadata string
}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// Timeout bounds each remote fetch.
	Timeout time.Duration
	// CacheDir enables on-disk caching of remote sources when set.
	CacheDir string
	// Logger receives load progress. Defaults to a null logger.
	Logger hclog.Logger
}

// Loader reads and validates catalog sources.
type Loader struct {
	opts   LoaderOptions
	logger hclog.Logger
}

// NewLoader creates a loader.
func NewLoader(opts LoaderOptions) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{opts: opts, logger: logger.Named("catalog")}
}

// Load reads both sources and builds a snapshot. Metadata is optional: an
// empty Metadata source yields a catalog without maker details.
func (l *Loader) Load(ctx context.Context, src Sources) (*Snapshot, error) {
	start := time.Now()

	data, err := l.read(ctx, src.Inks)
	if err != nil {
		return nil, err
	}
	inks, err := ParseInks(src.Inks, data)
	if err != nil {
		return nil, err
	}

	var metadata []Metadata
	if src.Metadata != "" {
		data, err := l.read(ctx, src.Metadata)
		if err != nil {
			return nil, err
		}
		metadata, err = ParseMetadata(src.Metadata, data)
		if err != nil {
			return nil, err
		}
	}

	snap := NewSnapshot(inks, metadata)
	l.logger.Info("catalog loaded", "inks", snap.Len(), "metadata", len(metadata),
		"makers", len(snap.Makers()), "duration", time.Since(start))
	return snap, nil
}

// read returns the decoded bytes of a source.
func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	var (
		raw []byte
		err error
	)

	switch {
	case security.IsRemoteSource(source) && l.opts.CacheDir != "":
		res, ferr := sourcecache.FetchAndCache(ctx, source, sourcecache.CacheOptions{
			CacheDir: l.opts.CacheDir,
			Timeout:  l.opts.Timeout,
		})
		if ferr != nil {
			err = ferr
			break
		}
		if res.Stale {
			l.logger.Warn("remote source unavailable, using cached copy",
				"source", source, "path", res.Path, "error", res.FetchErr)
		}
		raw = res.Data
	case security.IsRemoteSource(source):
		l.logger.Debug("fetching remote source", "source", source)
		raw, err = httputil.Fetch(ctx, source, httputil.FetchOptions{Timeout: l.opts.Timeout})
	default:
		raw, err = os.ReadFile(source) // #nosec G304 - Catalog path is supplied by the operator
	}
	if err != nil {
		return nil, &LoadError{Source: source, Index: -1, Err: err}
	}

	raw, err = compression.Decompress(source, raw, maxSourceBytes)
	if err != nil {
		return nil, &LoadError{Source: source, Index: -1, Err: err}
	}
	return raw, nil
}

// rawInk is the persisted ink layout. The rgb field is stored in blue,
// green, red order.
type rawInk struct {
	ID   *string   `json:"id"`
	Name *string   `json:"name"`
	RGB  []float64 `json:"rgb"`
}

type rawMetadata struct {
	ID    *string `json:"id"`
	Maker *string `json:"maker"`
	Name  *string `json:"name"`
	Date  *string `json:"date"`
}

// ParseInks validates an ink catalog document. Channels are reordered from
// the stored blue, green, red order into canonical RGB here and nowhere else.
func ParseInks(source string, data []byte) ([]Ink, error) {
	entries, err := splitArray(source, data)
	if err != nil {
		return nil, err
	}

	inks := make([]Ink, 0, len(entries))
	for i, entry := range entries {
		var raw rawInk
		if err := json.Unmarshal(entry, &raw); err != nil {
			return nil, &LoadError{Source: source, Index: i, Err: err}
		}
		if err := requireString(raw.ID, "id"); err != nil {
			return nil, &LoadError{Source: source, Index: i, Field: "id", Err: err}
		}
		if err := requireString(raw.Name, "name"); err != nil {
			return nil, &LoadError{Source: source, Index: i, Field: "name", Err: err}
		}
		bgr, err := channels(raw.RGB)
		if err != nil {
			return nil, &LoadError{Source: source, Index: i, Field: "rgb", Err: err}
		}

		inks = append(inks, Ink{
			ID:     *raw.ID,
			Name:   *raw.Name,
			Colour: colour.RGB{R: bgr[2], G: bgr[1], B: bgr[0]},
		})
	}
	return inks, nil
}

// ParseMetadata validates an ink metadata document.
func ParseMetadata(source string, data []byte) ([]Metadata, error) {
	entries, err := splitArray(source, data)
	if err != nil {
		return nil, err
	}

	out := make([]Metadata, 0, len(entries))
	for i, entry := range entries {
		var raw rawMetadata
		if err := json.Unmarshal(entry, &raw); err != nil {
			return nil, &LoadError{Source: source, Index: i, Err: err}
		}
		for _, f := range []struct {
			name string
			val  *string
		}{{"id", raw.ID}, {"maker", raw.Maker}, {"name", raw.Name}} {
			if err := requireString(f.val, f.name); err != nil {
				return nil, &LoadError{Source: source, Index: i, Field: f.name, Err: err}
			}
		}

		m := Metadata{ID: *raw.ID, Maker: *raw.Maker, Name: *raw.Name}
		if raw.Date != nil {
			m.ScanDate = *raw.Date
		}
		out = append(out, m)
	}
	return out, nil
}

func splitArray(source string, data []byte) ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &LoadError{Source: source, Index: -1, Err: fmt.Errorf("%w: %w", errNotArray, err)}
	}
	for i, e := range entries {
		if len(bytes.TrimSpace(e)) == 0 || bytes.TrimSpace(e)[0] != '{' {
			return nil, &LoadError{Source: source, Index: i, Err: errNotArray}
		}
	}
	return entries, nil
}

func requireString(v *string, name string) error {
	if v == nil {
		return errMissing
	}
	if name == "id" && strings.TrimSpace(*v) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func channels(values []float64) ([3]uint8, error) {
	var out [3]uint8
	if values == nil {
		return out, errMissing
	}
	if len(values) != 3 {
		return out, fmt.Errorf("expected 3 channels, got %d", len(values))
	}
	for i, v := range values {
		if v != math.Trunc(v) || v < 0 || v > 255 {
			return out, fmt.Errorf("channel %d: %v is not an integer in [0,255]", i, v)
		}
		out[i] = uint8(v)
	}
	return out, nil
}
