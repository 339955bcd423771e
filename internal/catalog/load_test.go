package catalog

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/inkswatch/internal/colour"
)

const testInksJSON = `[
  {"id": "diamine-oxblood", "name": "Diamine Oxblood", "rgb": [25, 20, 100]},
  {"id": "kon-peki", "name": "Kon-peki", "rgb": [190, 120, 0]}
]`

const testMetadataJSON = `[
  {"id": "diamine-oxblood", "maker": "Diamine", "name": "Oxblood", "date": "2021-03-01"},
  {"id": "kon-peki", "maker": "Pilot Iroshizuku", "name": "Kon-peki"}
]`

func TestParseInksReordersChannels(t *testing.T) {
	inks, err := ParseInks("inks.json", []byte(testInksJSON))
	if err != nil {
		t.Fatalf("ParseInks() error: %v", err)
	}
	if len(inks) != 2 {
		t.Fatalf("ParseInks() returned %d inks, want 2", len(inks))
	}

	want := colour.RGB{R: 100, G: 20, B: 25}
	if inks[0].Colour != want {
		t.Errorf("inks[0].Colour = %v, want %v", inks[0].Colour, want)
	}
	if inks[1].Colour.Hex() != "#0078be" {
		t.Errorf("inks[1] hex = %s, want #0078be", inks[1].Colour.Hex())
	}
}

func TestParseInksValidation(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantIndex int
		wantField string
	}{
		{name: "not json", data: `{`, wantIndex: -1},
		{name: "object instead of array", data: `{"id": "a"}`, wantIndex: -1},
		{name: "non object entry", data: `[{"id":"a","name":"A","rgb":[1,2,3]}, 5]`, wantIndex: 1},
		{name: "null entry", data: `[null]`, wantIndex: 0},
		{name: "missing id", data: `[{"name":"A","rgb":[1,2,3]}]`, wantIndex: 0, wantField: "id"},
		{name: "empty id", data: `[{"id":" ","name":"A","rgb":[1,2,3]}]`, wantIndex: 0, wantField: "id"},
		{name: "missing name", data: `[{"id":"a","rgb":[1,2,3]}]`, wantIndex: 0, wantField: "name"},
		{name: "missing rgb", data: `[{"id":"a","name":"A"}]`, wantIndex: 0, wantField: "rgb"},
		{name: "short rgb", data: `[{"id":"a","name":"A","rgb":[1,2]}]`, wantIndex: 0, wantField: "rgb"},
		{name: "out of range", data: `[{"id":"a","name":"A","rgb":[1,2,256]}]`, wantIndex: 0, wantField: "rgb"},
		{name: "negative", data: `[{"id":"a","name":"A","rgb":[-1,2,3]}]`, wantIndex: 0, wantField: "rgb"},
		{name: "fractional", data: `[{"id":"a","name":"A","rgb":[1.5,2,3]}]`, wantIndex: 0, wantField: "rgb"},
		{name: "wrong type", data: `[{"id":7,"name":"A","rgb":[1,2,3]}]`, wantIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInks("inks.json", []byte(tt.data))
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("ParseInks() error = %v, want *LoadError", err)
			}
			if loadErr.Index != tt.wantIndex || loadErr.Field != tt.wantField {
				t.Errorf("LoadError index=%d field=%q, want index=%d field=%q (%v)",
					loadErr.Index, loadErr.Field, tt.wantIndex, tt.wantField, err)
			}
			if !strings.Contains(err.Error(), "inks.json") {
				t.Errorf("error %q does not name the source", err)
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	md, err := ParseMetadata("meta.json", []byte(testMetadataJSON))
	if err != nil {
		t.Fatalf("ParseMetadata() error: %v", err)
	}
	if len(md) != 2 || md[0].ScanDate != "2021-03-01" || md[1].ScanDate != "" {
		t.Errorf("ParseMetadata() = %+v", md)
	}

	_, err = ParseMetadata("meta.json", []byte(`[{"id":"a","name":"A"}]`))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Field != "maker" {
		t.Errorf("missing maker error = %v", err)
	}
}

func writeXz(t *testing.T, path, content string) {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoaderLocalFiles(t *testing.T) {
	dir := t.TempDir()
	inksPath := filepath.Join(dir, "inks.json.xz")
	metaPath := filepath.Join(dir, "metadata.json")
	writeXz(t, inksPath, testInksJSON)
	if err := os.WriteFile(metaPath, []byte(testMetadataJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := NewLoader(LoaderOptions{}).Load(context.Background(), Sources{Inks: inksPath, Metadata: metaPath})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if snap.Len() != 2 {
		t.Errorf("Len() = %d, want 2", snap.Len())
	}
	if m, ok := snap.Metadata("kon-peki"); !ok || m.Maker != "Pilot Iroshizuku" {
		t.Errorf("Metadata(kon-peki) = %+v, %v", m, ok)
	}
}

func TestLoaderWithoutMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inks.json")
	if err := os.WriteFile(path, []byte(testInksJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := NewLoader(LoaderOptions{}).Load(context.Background(), Sources{Inks: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(snap.Makers()) != 0 {
		t.Errorf("Makers() = %+v, want none", snap.Makers())
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(LoaderOptions{}).Load(context.Background(), Sources{Inks: filepath.Join(t.TempDir(), "nope.json")})
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want LoadError wrapping ErrNotExist", err)
	}
}

func TestLoaderRemoteWithCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/inks.json":
			_, _ = w.Write([]byte(testInksJSON))
		case "/metadata.json":
			_, _ = w.Write([]byte(testMetadataJSON))
		default:
			http.NotFound(w, r)
		}
	}))

	sources := Sources{Inks: srv.URL + "/inks.json", Metadata: srv.URL + "/metadata.json"}
	loader := NewLoader(LoaderOptions{CacheDir: t.TempDir()})

	snap, err := loader.Load(context.Background(), sources)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if snap.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", snap.Len())
	}

	// With the remote gone the cached copies still load.
	srv.Close()
	snap, err = loader.Load(context.Background(), sources)
	if err != nil {
		t.Fatalf("Load() from cache error: %v", err)
	}
	if _, ok := snap.Ink("kon-peki"); !ok {
		t.Error("cached load lost kon-peki")
	}
}
