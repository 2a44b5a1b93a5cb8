// Package memory provides the reference in-process cache backend: an
// unbounded map with no expiry. Entries live until explicitly removed.
package memory

import (
	"context"
	"sync"

	"github.com/unkn0wn-root/locsync/cache"
)

type Backend struct {
	mu sync.RWMutex
	m  map[string]string
}

var _ cache.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{m: make(map[string]string)}
}

func (b *Backend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	v, ok := b.m[key]
	b.mu.RUnlock()
	return v, ok, nil
}

func (b *Backend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	b.m[key] = value
	b.mu.Unlock()
	return nil
}

func (b *Backend) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	delete(b.m, key)
	b.mu.Unlock()
	return nil
}

func (b *Backend) Close(context.Context) error { return nil }

// Len reports the number of cached entries.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.m)
}
