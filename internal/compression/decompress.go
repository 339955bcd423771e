// Package compression decodes compressed catalog sources in memory.
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/inkswatch/internal/security"
)

// Format is a supported compression format.
type Format string

const (
	FormatNone  Format = ""
	FormatXz    Format = "xz"
	FormatGzip  Format = "gzip"
	FormatBzip2 Format = "bzip2"
)

// DetectFormat returns the compression format implied by name's extension.
// Query strings and fragments on URLs are ignored.
func DetectFormat(name string) Format {
	if idx := strings.IndexAny(name, "?#"); idx != -1 && strings.Contains(name, "://") {
		name = name[:idx]
	}
	name = strings.ToLower(name)

	switch {
	case strings.HasSuffix(name, ".xz"):
		return FormatXz
	case strings.HasSuffix(name, ".gz"):
		return FormatGzip
	case strings.HasSuffix(name, ".bz2"):
		return FormatBzip2
	default:
		return FormatNone
	}
}

// Decompress decodes data according to the format implied by name. Data
// with no recognised compression extension is returned unchanged. Output
// beyond maxBytes fails with security.ErrSizeLimitExceeded.
func Decompress(name string, data []byte, maxBytes int64) ([]byte, error) {
	var (
		r   io.Reader
		err error
	)

	switch format := DetectFormat(name); format {
	case FormatNone:
		return data, nil
	case FormatXz:
		r, err = xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
	case FormatGzip:
		gzr, gerr := gzip.NewReader(bytes.NewReader(data))
		if gerr != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", gerr)
		}
		defer gzr.Close()
		r = gzr
	case FormatBzip2:
		r = bzip2.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported compression format %q", format)
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", name, err)
	}
	return out, nil
}
