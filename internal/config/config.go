// Package config holds runtime configuration for inkswatch.
//
// Values come from defaults, then INKSWATCH_* environment variables, then
// command-line flags, with later sources taking precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/inkswatch/internal/catalog"
	"github.com/jmylchreest/inkswatch/internal/inks"
)

// Environment variable names.
const (
	EnvCatalog      = "INKSWATCH_CATALOG"
	EnvMetadata     = "INKSWATCH_METADATA"
	EnvDetailURL    = "INKSWATCH_DETAIL_URL"
	EnvImageURL     = "INKSWATCH_IMAGE_URL"
	EnvFetchTimeout = "INKSWATCH_FETCH_TIMEOUT"
	EnvCacheDir     = "INKSWATCH_CACHE_DIR"
	EnvLogLevel     = "INKSWATCH_LOG_LEVEL"
)

// Config is the resolved runtime configuration.
type Config struct {
	// CatalogPath is the ink catalog source (path or URL).
	CatalogPath string
	// MetadataPath is the optional ink metadata source (path or URL).
	MetadataPath string
	// URLs build the detailUrl and imageUrl fields.
	URLs inks.URLTemplates
	// FetchTimeout bounds each remote catalog fetch.
	FetchTimeout time.Duration
	// CacheDir enables caching of remote sources when set.
	CacheDir string
	// LogLevel is an hclog level name. Empty means derive from flags.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CatalogPath:  "data/inks.json",
		MetadataPath: "data/metadata.json",
		URLs:         inks.DefaultURLTemplates(),
		FetchTimeout: 10 * time.Second,
	}
}

// FromEnv returns Default overlaid with INKSWATCH_* environment variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvCatalog); ok {
		cfg.CatalogPath = v
	}
	if v, ok := lookup(EnvMetadata); ok {
		cfg.MetadataPath = v
	}
	if v, ok := lookup(EnvDetailURL); ok {
		cfg.URLs.Detail = v
	}
	if v, ok := lookup(EnvImageURL); ok {
		cfg.URLs.Image = v
	}
	if v, ok := lookup(EnvCacheDir); ok {
		cfg.CacheDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvFetchTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvFetchTimeout, err)
		}
		cfg.FetchTimeout = d
	}

	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("catalog source is required (--catalog or %s)", EnvCatalog)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	for name, tmpl := range map[string]string{"detail": c.URLs.Detail, "image": c.URLs.Image} {
		if !strings.Contains(tmpl, "{id}") {
			return fmt.Errorf("%s URL template %q must contain {id}", name, tmpl)
		}
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Sources returns the catalog sources described by the configuration.
func (c Config) Sources() catalog.Sources {
	return catalog.Sources{Inks: c.CatalogPath, Metadata: c.MetadataPath}
}

// LoaderOptions returns catalog loader options using logger.
func (c Config) LoaderOptions(logger hclog.Logger) catalog.LoaderOptions {
	return catalog.LoaderOptions{
		Timeout:  c.FetchTimeout,
		CacheDir: c.CacheDir,
		Logger:   logger,
	}
}
