package locsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/unkn0wn-root/locsync/cache"
	"github.com/unkn0wn-root/locsync/store"
)

const defaultWarmupConcurrency = 8

// Source supplies the full record snapshot of a (culture, resource group)
// bucket for cache warm-up. snapshot.FileSource and StoreSource implement it.
type Source interface {
	Load(ctx context.Context, culture, resource string) ([]store.Record, error)
}

// StoreSource adapts a record store as a warm-up Source.
type StoreSource struct {
	Store store.Store
	Keys  *KeyBuilder // nil => default templates
}

func (s StoreSource) Load(ctx context.Context, culture, resource string) ([]store.Record, error) {
	keys := s.Keys
	if keys == nil {
		keys = NewKeyBuilder("", "")
	}
	return s.Store.FindByKeyPrefix(ctx, keys.PathFragment(culture, resource))
}

// LocalizerOptions configure a Localizer. Cache is required; Culture scopes
// every lookup. When Source is set, construction performs the one-shot
// concurrent warm-up before returning.
type LocalizerOptions struct {
	Cache    cache.Backend
	Culture  string
	Resource string // "" => shared resource

	Keys   *KeyBuilder // nil => default templates
	Logger Logger      // nil => NopLogger

	// Source, when non-nil, is read once and fanned out into the cache
	// during construction.
	Source Source

	// WarmupConcurrency bounds the fan-out. 0 => 8.
	WarmupConcurrency int
}

// Localizer is the read facade: lookups hit only the cache, and a miss (or a
// backend error) yields the lookup name itself. Callers never receive a fault
// for a missing translation.
type Localizer struct {
	cache    cache.Backend
	keys     *KeyBuilder
	log      Logger
	culture  string
	resource string
}

// NewLocalizer builds the facade and, when a Source is present, warms the
// cache: one sequential snapshot read, then a bounded concurrent fan-out of
// cache writes joined before return. Individual write failures are counted
// and logged but never abort the load - a partially warmed cache is degraded
// but usable.
func NewLocalizer(ctx context.Context, opts LocalizerOptions) (*Localizer, error) {
	if opts.Cache == nil {
		return nil, ErrNilCache
	}
	l := &Localizer{
		cache:    opts.Cache,
		keys:     coalesce(opts.Keys, NewKeyBuilder("", "")),
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		culture:  opts.Culture,
		resource: opts.Resource,
	}
	if opts.Source != nil {
		recs, err := opts.Source.Load(ctx, opts.Culture, opts.Resource)
		if err != nil {
			return nil, fmt.Errorf("locsync: warm-up load: %w", err)
		}
		failed := warmCache(ctx, l.cache, l.log, recs, opts.WarmupConcurrency)
		l.log.Info("cache warm-up finished", Fields{
			"culture":  opts.Culture,
			"resource": resourceOrShared(opts.Resource),
			"records":  len(recs),
			"failed":   failed,
		})
	}
	return l, nil
}

// Get returns the localized value for name, or name itself when the key is
// uncached or the backend errs.
func (l *Localizer) Get(ctx context.Context, name string) string {
	key := l.keys.Key(l.culture, l.resource, name)
	v, ok, err := l.cache.Get(ctx, key)
	if err != nil {
		l.log.Warn("cache get failed; identity fallback", Fields{"key": key, "err": err})
		return name
	}
	if !ok {
		return name
	}
	return v
}

// Culture reports the culture this facade is scoped to.
func (l *Localizer) Culture() string { return l.culture }

// warmCache fans records out to workers writing disjoint keys. No ordering
// guarantee between writes; the WaitGroup join is the readiness barrier.
// Returns the number of failed writes.
func warmCache(ctx context.Context, b cache.Backend, log Logger, recs []store.Record, workers int) int {
	if len(recs) == 0 {
		return 0
	}
	if workers <= 0 {
		workers = defaultWarmupConcurrency
	}

	jobs := make(chan store.Record)
	var (
		mu     sync.Mutex
		failed int
		wg     sync.WaitGroup
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for rec := range jobs {
				if err := b.Set(ctx, rec.ResourceKey, rec.Value); err != nil {
					log.Warn("warm-up set failed", Fields{"key": rec.ResourceKey, "err": err})
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}
		}()
	}
	for _, rec := range recs {
		jobs <- rec
	}
	close(jobs)
	wg.Wait()
	return failed
}
