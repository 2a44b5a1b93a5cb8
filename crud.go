package locsync

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/locsync/cache"
	"github.com/unkn0wn-root/locsync/snapshot"
	"github.com/unkn0wn-root/locsync/store"
)

// Crud synchronizes a durable record store with a lookup cache. Every
// mutation follows the same discipline: compute the canonical key, mutate the
// store, and only after store success mirror the mutation into the cache under
// the identical key. A store failure aborts the operation and leaves the
// cache untouched; a cache failure is logged and swallowed - it must never
// undo a committed store write.
type Crud struct {
	store store.Store
	cache cache.Backend
	keys  *KeyBuilder
	log   Logger
}

// Insert creates the record and mirrors it into the cache. When the triple
// already exists the call degenerates into Update, and the update path owns
// the single cache write; the net effect is exactly one cache write per
// logical insert-or-update call.
func (c *Crud) Insert(ctx context.Context, name, value, culture, resource string) error {
	key := c.keys.Key(culture, resource, name)

	existing, err := c.store.FindOne(ctx, name, culture, key)
	if err != nil {
		return fmt.Errorf("locsync: insert %q: %w", name, err)
	}
	if existing != nil {
		return c.Update(ctx, name, value, culture, resource)
	}

	rec := &store.Record{Name: name, Value: value, CultureName: culture, ResourceKey: key}
	if err := c.store.Insert(ctx, rec); err != nil {
		return fmt.Errorf("locsync: insert %q: %w", name, err)
	}
	c.cacheSet(ctx, key, value)
	return nil
}

// InsertAll creates the missing entries of the batch in one store
// transaction. Pairs whose triple already exists are skipped - unlike the
// single-item form there is no update fallback. Cache writes happen after the
// commit, for the newly created pairs only.
func (c *Crud) InsertAll(ctx context.Context, pairs []Pair, culture, resource string) error {
	created := make([]Pair, 0, len(pairs))
	err := c.store.Tx(ctx, func(s store.Store) error {
		keys := make([]string, len(pairs))
		for i, p := range pairs {
			keys[i] = c.keys.Key(culture, resource, p.Name)
		}
		existing, err := s.FindMany(ctx, culture, keys)
		if err != nil {
			return err
		}
		taken := make(map[string]struct{}, len(existing))
		for _, r := range existing {
			taken[r.ResourceKey] = struct{}{}
		}
		for i, p := range pairs {
			if _, ok := taken[keys[i]]; ok {
				continue
			}
			rec := &store.Record{Name: p.Name, Value: p.Value, CultureName: culture, ResourceKey: keys[i]}
			if err := s.Insert(ctx, rec); err != nil {
				return err
			}
			taken[keys[i]] = struct{}{} // repeated names within one batch stage once
			created = append(created, Pair{Name: keys[i], Value: p.Value})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("locsync: insert batch: %w", err)
	}
	for _, p := range created {
		c.cacheSet(ctx, p.Name, p.Value)
	}
	return nil
}

// Update replaces the value of an existing record and refreshes the cache
// entry. A miss is a silent no-op: nothing is created and the cache is left
// untouched.
func (c *Crud) Update(ctx context.Context, name, value, culture, resource string) error {
	key := c.keys.Key(culture, resource, name)

	rec, err := c.store.FindOne(ctx, name, culture, key)
	if err != nil {
		return fmt.Errorf("locsync: update %q: %w", name, err)
	}
	if rec == nil {
		return nil
	}

	rec.Value = value
	if err := c.store.Update(ctx, rec); err != nil {
		return fmt.Errorf("locsync: update %q: %w", name, err)
	}
	c.cacheSet(ctx, key, value)
	return nil
}

// UpdateAll updates the batch in one store transaction. Pairs whose triple is
// absent are skipped, consistent with the single-item contract. Cache writes
// happen after the commit, for the updated pairs only.
func (c *Crud) UpdateAll(ctx context.Context, pairs []Pair, culture, resource string) error {
	updated := make([]Pair, 0, len(pairs))
	err := c.store.Tx(ctx, func(s store.Store) error {
		keys := make([]string, len(pairs))
		for i, p := range pairs {
			keys[i] = c.keys.Key(culture, resource, p.Name)
		}
		existing, err := s.FindMany(ctx, culture, keys)
		if err != nil {
			return err
		}
		byKey := make(map[string]store.Record, len(existing))
		for _, r := range existing {
			byKey[r.ResourceKey] = r
		}
		for i, p := range pairs {
			rec, ok := byKey[keys[i]]
			if !ok {
				continue
			}
			rec.Value = p.Value
			if err := s.Update(ctx, &rec); err != nil {
				return err
			}
			updated = append(updated, Pair{Name: keys[i], Value: p.Value})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("locsync: update batch: %w", err)
	}
	for _, p := range updated {
		c.cacheSet(ctx, p.Name, p.Value)
	}
	return nil
}

// Delete removes the record and its cache entry. A miss is a silent no-op,
// which also makes Delete idempotent.
func (c *Crud) Delete(ctx context.Context, name, culture, resource string) error {
	key := c.keys.Key(culture, resource, name)

	rec, err := c.store.FindOne(ctx, name, culture, key)
	if err != nil {
		return fmt.Errorf("locsync: delete %q: %w", name, err)
	}
	if rec == nil {
		return nil
	}

	if err := c.store.Delete(ctx, rec); err != nil {
		return fmt.Errorf("locsync: delete %q: %w", name, err)
	}
	c.cacheRemove(ctx, key)
	return nil
}

// DeleteAll removes the named records in one store transaction and then
// clears exactly the cache keys that were actually removed.
func (c *Crud) DeleteAll(ctx context.Context, names []string, culture, resource string) error {
	removed := make([]string, 0, len(names))
	err := c.store.Tx(ctx, func(s store.Store) error {
		keys := make([]string, len(names))
		for i, name := range names {
			keys[i] = c.keys.Key(culture, resource, name)
		}
		existing, err := s.FindMany(ctx, culture, keys)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}
		if err := s.DeleteMany(ctx, existing); err != nil {
			return err
		}
		for _, r := range existing {
			removed = append(removed, r.ResourceKey)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("locsync: delete batch: %w", err)
	}
	for _, key := range removed {
		c.cacheRemove(ctx, key)
	}
	return nil
}

// Export returns every record of the (culture, resource group) bucket.
// Read-only; serialization is the caller's concern (or see ExportJSON and
// ExportXML).
func (c *Crud) Export(ctx context.Context, culture, resource string) ([]store.Record, error) {
	recs, err := c.store.FindByKeyPrefix(ctx, c.keys.PathFragment(culture, resource))
	if err != nil {
		return nil, fmt.Errorf("locsync: export: %w", err)
	}
	return recs, nil
}

// ExportJSON exports the bucket as a JSON array.
func (c *Crud) ExportJSON(ctx context.Context, culture, resource string) ([]byte, error) {
	recs, err := c.Export(ctx, culture, resource)
	if err != nil {
		return nil, err
	}
	return snapshot.JSON{}.Encode(recs)
}

// ExportXML exports the bucket as an XML document.
func (c *Crud) ExportXML(ctx context.Context, culture, resource string) ([]byte, error) {
	recs, err := c.Export(ctx, culture, resource)
	if err != nil {
		return nil, err
	}
	return snapshot.XML{}.Encode(recs)
}

// cacheSet mirrors a committed store write. Best-effort: the store already
// holds the new value, so a failure here leaves the entry stale until the
// next write rather than failing the operation.
func (c *Crud) cacheSet(ctx context.Context, key, value string) {
	if err := c.cache.Set(ctx, key, value); err != nil {
		c.log.Warn("cache set failed; entry stale until next write", Fields{"key": key, "err": err})
	}
}

func (c *Crud) cacheRemove(ctx context.Context, key string) {
	if err := c.cache.Remove(ctx, key); err != nil {
		c.log.Warn("cache remove failed; entry stale until next write", Fields{"key": key, "err": err})
	}
}
