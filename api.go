package locsync

import (
	"github.com/unkn0wn-root/locsync/cache"
	"github.com/unkn0wn-root/locsync/store"
)

// Pair is one (name, value) entry of a batch mutation. Batches preserve
// caller order while staging, though the cache writes that follow a commit
// carry no ordering guarantee.
type Pair struct {
	Name  string
	Value string
}

// Options configure a Crud. Store and Cache are required; the rest default.
type Options struct {
	Store store.Store
	Cache cache.Backend

	Keys   *KeyBuilder // nil => default templates
	Logger Logger      // nil => NopLogger
}

// New builds the write-through CRUD core. It fails fast when either backend
// is absent; there is no lazy wiring.
func New(opts Options) (*Crud, error) {
	if opts.Store == nil {
		return nil, ErrNilStore
	}
	if opts.Cache == nil {
		return nil, ErrNilCache
	}
	return &Crud{
		store: opts.Store,
		cache: opts.Cache,
		keys:  coalesce(opts.Keys, NewKeyBuilder("", "")),
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
	}, nil
}
