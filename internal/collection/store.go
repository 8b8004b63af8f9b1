// Package collection maps a collection name to a decoded list of records,
// persisted as a single JSON blob under one storage key.
package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"mockadmin/internal/storage"
)

// Store owns one named collection of records of type T.
//
// There is no in-memory cache: every Load reads the medium and every Save
// rewrites the whole blob. Save followed by Load (with no intervening writer)
// returns an equivalent list; nothing is guaranteed across concurrent writers.
type Store[T any] struct {
	storage storage.Store
	key     string
	seed    func() []T
}

// NewStore binds a collection key to a storage medium and a seed dataset.
// The seed function is called whenever the persisted blob is absent or
// unreadable, so each fallback yields a fresh copy.
func NewStore[T any](st storage.Store, key string, seed func() []T) *Store[T] {
	return &Store[T]{storage: st, key: key, seed: seed}
}

// Key returns the storage key the collection lives under.
func (s *Store[T]) Key() string {
	return s.key
}

// Load reads and decodes the collection. An absent or unparseable blob is
// treated as first run and yields the seed dataset, never an error; medium
// failures propagate.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", s.key, err)
	}
	if data == nil {
		return s.seed(), nil
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		// Corrupt blob is indistinguishable from first run.
		return s.seed(), nil
	}
	if list == nil {
		// A literal null decodes without error but is not a list of
		// records. A saved empty list decodes to a non-nil slice.
		return s.seed(), nil
	}
	return list, nil
}

// Save serializes the full list and replaces any prior value for the key.
func (s *Store[T]) Save(ctx context.Context, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", s.key, err)
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", s.key, err)
	}
	return nil
}
