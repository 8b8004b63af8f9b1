// Package storage provides the durable key→blob medium underneath the
// simulated backend. One value holds one whole collection (or the session
// pair); there are no transactions and no atomicity across keys.
package storage

import "context"

// Store is a persistent key-value store.
//
// Get returns (nil, nil) when the key is absent; absence is not an error.
// Set fully replaces any prior value for the key. Medium failures are
// reported wrapped in common.ErrorStorageUnavailable.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
