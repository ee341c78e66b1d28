// Package cache is the client-side durable store: one JSON value per
// key, surviving restarts. It is the fallback of last resort when the
// remote backend is unreachable.
package cache

import "context"

// Cache persists one JSON-encoded value per key.
//
// Get reports (false, nil) both for an absent key and for a stored
// value that no longer parses; a corrupt value is discarded so the
// caller can reseed from fixtures. Errors are reserved for transport
// problems with the underlying medium.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}
