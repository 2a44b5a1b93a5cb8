// Package config loads locsync configuration from the environment and
// constructs the selected cache backend. Exactly one backend variant is
// active per deployment; OpenBackend is the single selection point.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/unkn0wn-root/locsync/cache"
	"github.com/unkn0wn-root/locsync/cache/bigcache"
	"github.com/unkn0wn-root/locsync/cache/memory"
	"github.com/unkn0wn-root/locsync/cache/redis"
	"github.com/unkn0wn-root/locsync/cache/ristretto"
)

// Backend variant names accepted by Config.CacheBackend.
const (
	BackendMemory    = "memory"
	BackendBigCache  = "bigcache"
	BackendRistretto = "ristretto"
	BackendRedis     = "redis"
)

type Config struct {
	// CacheBackend selects the variant: memory, bigcache, ristretto, redis.
	CacheBackend string `env:"LOCSYNC_CACHE_BACKEND" envDefault:"memory"`

	// Redis (distributed variant).
	RedisURL       string `env:"LOCSYNC_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisKeyPrefix string `env:"LOCSYNC_REDIS_KEY_PREFIX" envDefault:"locsync:"`

	// BigCache sizing.
	BigCacheLifeWindow time.Duration `env:"LOCSYNC_BIGCACHE_LIFE_WINDOW" envDefault:"10m"`
	BigCacheHardMaxMB  int           `env:"LOCSYNC_BIGCACHE_HARD_MAX_MB" envDefault:"0"`

	// Ristretto sizing.
	RistrettoNumCounters int64 `env:"LOCSYNC_RISTRETTO_NUM_COUNTERS" envDefault:"100000"`
	RistrettoMaxCost     int64 `env:"LOCSYNC_RISTRETTO_MAX_COST" envDefault:"10000000"`
	RistrettoBufferItems int64 `env:"LOCSYNC_RISTRETTO_BUFFER_ITEMS" envDefault:"64"`

	// Key derivation templates; empty means the built-in defaults.
	KeyTemplate  string `env:"LOCSYNC_KEY_TEMPLATE"`
	PathTemplate string `env:"LOCSYNC_PATH_TEMPLATE"`

	// Snapshot files for the file store and warm-up sources.
	SnapshotDir string `env:"LOCSYNC_SNAPSHOT_DIR" envDefault:"."`

	// WarmupConcurrency bounds the warm-up fan-out. 0 => core default.
	WarmupConcurrency int `env:"LOCSYNC_WARMUP_CONCURRENCY" envDefault:"8"`
}

// FromEnv parses configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// OpenBackend constructs the one configured cache backend.
func OpenBackend(cfg Config) (cache.Backend, error) {
	switch cfg.CacheBackend {
	case BackendMemory:
		return memory.New(), nil
	case BackendBigCache:
		return bigcache.New(bigcache.Config{
			LifeWindow:         cfg.BigCacheLifeWindow,
			HardMaxCacheSizeMB: cfg.BigCacheHardMaxMB,
		})
	case BackendRistretto:
		return ristretto.New(ristretto.Config{
			NumCounters: cfg.RistrettoNumCounters,
			MaxCost:     cfg.RistrettoMaxCost,
			BufferItems: cfg.RistrettoBufferItems,
		})
	case BackendRedis:
		return redis.New(redis.Config{
			URL:       cfg.RedisURL,
			KeyPrefix: cfg.RedisKeyPrefix,
		})
	default:
		return nil, fmt.Errorf("config: unknown cache backend %q", cfg.CacheBackend)
	}
}
