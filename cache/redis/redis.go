// Package redis provides the distributed cache backend: a shared redis
// keyspace observed by every process instance. Entries are written without
// expiry; they live until explicitly removed by the sync layer.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/locsync/cache"
)

var ErrNilClient = errors.New("redis backend: nil client")

type Backend struct {
	rdb         goredis.UniversalClient
	keyPrefix   string
	closeClient bool
}

var _ cache.Backend = (*Backend)(nil)

type Config struct {
	// Client is an existing go-redis client. Required unless URL is set.
	Client goredis.UniversalClient

	// URL is parsed into a new client when Client is nil,
	// e.g. "redis://localhost:6379/0".
	URL string

	// KeyPrefix namespaces every key, e.g. "locsync:".
	KeyPrefix string

	// CloseClient releases the client on Close. Set only when this backend
	// exclusively owns the client.
	CloseClient bool
}

func New(cfg Config) (*Backend, error) {
	rdb := cfg.Client
	closeClient := cfg.CloseClient
	if rdb == nil {
		if cfg.URL == "" {
			return nil, ErrNilClient
		}
		opts, err := goredis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		rdb = goredis.NewClient(opts)
		closeClient = true
	}
	return &Backend{rdb: rdb, keyPrefix: cfg.KeyPrefix, closeClient: closeClient}, nil
}

func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.rdb.Get(ctx, b.keyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil // miss
	}
	if err != nil {
		return "", false, err // transport/server error
	}
	return v, true, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	return b.rdb.Set(ctx, b.keyPrefix+key, value, 0).Err()
}

func (b *Backend) Remove(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, b.keyPrefix+key).Err()
}

// Close releases the underlying client only when this backend owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (b *Backend) Close(context.Context) error {
	if b.closeClient {
		if err := b.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

// Ping verifies connectivity to the redis server.
func (b *Backend) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
