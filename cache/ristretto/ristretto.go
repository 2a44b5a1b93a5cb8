// Package ristretto adapts dgraph-io/ristretto as a cost-bounded local
// backend. Admission is asynchronous and may reject writes under pressure;
// both outcomes surface as cache misses, never as errors.
package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/locsync/cache"
)

type Backend struct {
	c *rc.Cache
}

var _ cache.Backend = (*Backend)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Backend, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Backend{c: c}, nil
}

func (b *Backend) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := b.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		// drop unexpected entry shape
		b.c.Del(key)
		return "", false, nil
	}
	return s, true, nil
}

func (b *Backend) Set(_ context.Context, key, value string) error {
	b.c.Set(key, value, int64(len(key)+len(value)))
	return nil
}

func (b *Backend) Remove(_ context.Context, key string) error {
	b.c.Del(key)
	return nil
}

func (b *Backend) Close(context.Context) error {
	b.c.Wait()
	b.c.Close()
	return nil
}

// Wait blocks until buffered writes have been applied. Mostly useful in
// tests, where a Get may otherwise race the async admission pipeline.
func (b *Backend) Wait() { b.c.Wait() }
