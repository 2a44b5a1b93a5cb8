package config

import (
	"context"
	"testing"

	"github.com/unkn0wn-root/locsync/cache/memory"
	"github.com/unkn0wn-root/locsync/cache/ristretto"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.CacheBackend != BackendMemory {
		t.Fatalf("default backend = %q, want %q", cfg.CacheBackend, BackendMemory)
	}
	if cfg.WarmupConcurrency != 8 {
		t.Fatalf("default warmup concurrency = %d", cfg.WarmupConcurrency)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOCSYNC_CACHE_BACKEND", "redis")
	t.Setenv("LOCSYNC_REDIS_URL", "redis://cache.internal:6380/1")
	t.Setenv("LOCSYNC_KEY_TEMPLATE", "%s|%s|%s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.CacheBackend != BackendRedis {
		t.Fatalf("backend = %q", cfg.CacheBackend)
	}
	if cfg.RedisURL != "redis://cache.internal:6380/1" {
		t.Fatalf("redis url = %q", cfg.RedisURL)
	}
	if cfg.KeyTemplate != "%s|%s|%s" {
		t.Fatalf("key template = %q", cfg.KeyTemplate)
	}
}

func TestOpenBackendSelectsExactlyOneVariant(t *testing.T) {
	ctx := context.Background()

	b, err := OpenBackend(Config{CacheBackend: BackendMemory})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := b.(*memory.Backend); !ok {
		t.Fatalf("expected memory backend, got %T", b)
	}
	defer b.Close(ctx)

	r, err := OpenBackend(Config{
		CacheBackend:         BackendRistretto,
		RistrettoNumCounters: 1000,
		RistrettoMaxCost:     1 << 20,
		RistrettoBufferItems: 64,
	})
	if err != nil {
		t.Fatalf("ristretto: %v", err)
	}
	if _, ok := r.(*ristretto.Backend); !ok {
		t.Fatalf("expected ristretto backend, got %T", r)
	}
	defer r.Close(ctx)
}

func TestOpenBackendRejectsUnknownVariant(t *testing.T) {
	if _, err := OpenBackend(Config{CacheBackend: "memcached"}); err == nil {
		t.Fatal("unknown backend must be rejected")
	}
}
