package catalog

import (
	"fmt"
)

// LoadError reports a catalog source that failed validation.
type LoadError struct {
	Source string
	// Index is the offending entry, or -1 when the whole document is bad.
	Index int
	Field string
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
	case e.Field == "":
		return fmt.Sprintf("failed to load %s: entry %d: %v", e.Source, e.Index, e.Err)
	default:
		return fmt.Sprintf("failed to load %s: entry %d: field %q: %v", e.Source, e.Index, e.Field, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
