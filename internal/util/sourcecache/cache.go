// Package sourcecache provides utilities for downloading and caching remote
// catalog sources so the server can start when the remote is unreachable.
package sourcecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	httputil "github.com/jmylchreest/inkswatch/internal/util/http"
)

// CacheOptions configures source caching behavior.
type CacheOptions struct {
	// CacheDir is the directory where sources will be cached.
	// If empty, defaults to ~/.cache/inkswatch/sources
	CacheDir string

	// Timeout is passed through to the HTTP fetch.
	Timeout time.Duration
}

// Result describes where fetched content came from.
type Result struct {
	Data []byte
	// Path is the cached copy on disk.
	Path string
	// Stale is true when the download failed and the cached copy was used.
	Stale bool
	// FetchErr is the download error that forced a stale read, if any.
	FetchErr error
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir not available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "inkswatch", "sources"), nil
	}
	return filepath.Join(cacheDir, "inkswatch", "sources"), nil
}

// generateFilename creates a deterministic filename from a URL.
// Uses SHA256 hash of URL + original file extension.
func generateFilename(url string) string {
	hash := sha256.Sum256([]byte(url))
	hashStr := fmt.Sprintf("%x", hash[:16])

	// Keep compression suffixes so the loader can still detect them.
	base := url
	if idx := strings.IndexAny(base, "?#"); idx != -1 {
		base = base[:idx]
	}
	ext := filepath.Ext(base)
	if ext == ".xz" {
		ext = filepath.Ext(strings.TrimSuffix(base, ext)) + ext
	}
	if ext == "" || len(ext) > 8 {
		ext = ".json"
	}

	return hashStr + ext
}

// FetchAndCache downloads a remote source and refreshes its cached copy.
// If the download fails and a cached copy exists, the cached copy is
// returned with Stale set.
func FetchAndCache(ctx context.Context, url string, opts CacheOptions) (*Result, error) {
	cacheDir := opts.CacheDir
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		cacheDir = defaultDir
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(cacheDir, generateFilename(url))

	data, fetchErr := httputil.Fetch(ctx, url, httputil.FetchOptions{Timeout: opts.Timeout})
	if fetchErr != nil {
		cached, err := os.ReadFile(cachedPath) // #nosec G304 - Path derived from URL hash inside cache dir
		if err != nil {
			return nil, fmt.Errorf("failed to download source: %w", fetchErr)
		}
		return &Result{Data: cached, Path: cachedPath, Stale: true, FetchErr: fetchErr}, nil
	}

	// Write via a temp file so a concurrent reader never sees a partial copy.
	tmp := cachedPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return nil, fmt.Errorf("failed to write cached source: %w", err)
	}
	if err := os.Rename(tmp, cachedPath); err != nil {
		return nil, fmt.Errorf("failed to write cached source: %w", err)
	}

	return &Result{Data: data, Path: cachedPath}, nil
}
