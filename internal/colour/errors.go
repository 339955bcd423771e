package colour

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFormat is returned for malformed hex colour strings.
	ErrInvalidFormat = errors.New("invalid hex colour format")

	// ErrInvalidArgument is returned for non-positive size or limit parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownTheme is returned when a theme is neither built in nor a hex list.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrUnknownHarmonyRule is returned for harmony rules outside the fixed set.
	ErrUnknownHarmonyRule = errors.New("unknown harmony rule")

	// ErrInvalidBaseColor is returned when a harmony is requested for a theme
	// string that is not a single hex colour.
	ErrInvalidBaseColor = errors.New("invalid base colour for harmony")

	// ErrInvalidCustomPalette is returned when a comma-separated custom palette
	// contains a segment that is not a hex colour.
	ErrInvalidCustomPalette = errors.New("invalid custom palette")
)

// UnknownThemeError reports an unrecognised theme together with the names of
// the built-in themes, so callers can show the valid choices.
type UnknownThemeError struct {
	Theme     string
	Available []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q (available: %s, or a comma-separated list of hex colours)",
		e.Theme, strings.Join(e.Available, ", "))
}

// Unwrap allows errors.Is(err, ErrUnknownTheme).
func (e *UnknownThemeError) Unwrap() error {
	return ErrUnknownTheme
}
