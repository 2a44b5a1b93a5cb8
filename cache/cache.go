// Package cache defines the lookup-cache abstraction used by locsync.
//
// A Backend is a flat string-to-string store addressed by canonical resource
// keys. Exactly one backend is active per deployment, selected at construction
// time: a local in-process variant (memory, bigcache, ristretto) or the
// distributed redis variant when multiple process instances must observe the
// same cache state. The sync core never branches on backend identity.
//
// Semantics all implementations must provide: Set is last-writer-wins, Remove
// is idempotent, and Get distinguishes a missing key from an empty value.
package cache

import "context"

// Backend is a minimal string cache.
// Must be safe for concurrent use.
type Backend interface {
	// Get returns (value, true, nil) on hit and ("", false, nil) on miss.
	// An IO/remote error is returned as ("", false, err).
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
