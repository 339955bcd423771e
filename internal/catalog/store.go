package catalog

import (
	"context"
	"sync/atomic"
)

// Store holds the current catalog snapshot. Readers always see a complete
// snapshot; Swap replaces it in one step.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store serving snap.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

// Snapshot returns the snapshot currently being served.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap installs snap and returns the previous snapshot.
func (s *Store) Swap(snap *Snapshot) *Snapshot {
	return s.current.Swap(snap)
}

// Reload loads src with loader and swaps the result in. On failure the
// current snapshot keeps serving.
func (s *Store) Reload(ctx context.Context, loader *Loader, src Sources) (*Snapshot, error) {
	snap, err := loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	s.Swap(snap)
	return snap, nil
}
