package ristretto

import (
	"context"
	"testing"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New(Config{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := newTestBackend(t)
	defer b.Close(ctx)

	if err := b.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b.Wait() // admission is async

	if v, ok, err := b.Get(ctx, "k"); !ok || v != "v" || err != nil {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := b.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	b.Wait()
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Fatal("entry survived Remove")
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("zero config must be rejected")
	}
}
