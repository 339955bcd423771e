// Package security provides validation helpers for untrusted catalog sources.
package security

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ErrSizeLimitExceeded is returned once a LimitedReader has been drained.
var ErrSizeLimitExceeded = errors.New("source size limit exceeded")

// IsRemoteSource reports whether a catalog source refers to an HTTP(S) URL
// rather than a local file.
func IsRemoteSource(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// ValidateSourceURL validates an HTTP(S) URL used as a catalog source.
func ValidateSourceURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid URL protocol (only http:// and https:// allowed): %s", scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	if parsed.User != nil {
		return fmt.Errorf("URL must not embed credentials")
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// It guards against oversized or maliciously compressed catalog files.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimitExceeded
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
