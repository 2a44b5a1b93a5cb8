// Package bigcache adapts allegro/bigcache as a size-bounded local backend.
// BigCache evicts by its global LifeWindow rather than per-entry policy; an
// evicted entry simply reads as a miss, which the read facade treats as the
// identity fallback.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/locsync/cache"
)

type Backend struct {
	c *bc.BigCache
}

var _ cache.Backend = (*Backend)(nil)

type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Backend, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Backend{c: c}, nil
}

func (b *Backend) Get(_ context.Context, key string) (string, bool, error) {
	v, err := b.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func (b *Backend) Set(_ context.Context, key, value string) error {
	return b.c.Set(key, []byte(value))
}

func (b *Backend) Remove(_ context.Context, key string) error {
	if err := b.c.Delete(key); err != nil && !errors.Is(err, bc.ErrEntryNotFound) {
		return err
	}
	return nil
}

func (b *Backend) Close(context.Context) error {
	return b.c.Close()
}
