package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func newMockBackend(t *testing.T) (*Backend, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	b, err := New(Config{Client: db, KeyPrefix: "locsync:"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, mock
}

func TestGetHit(t *testing.T) {
	b, mock := newMockBackend(t)
	mock.ExpectGet("locsync:en-US.SharedResource.Welcome").SetVal("Hello")

	v, ok, err := b.Get(context.Background(), "en-US.SharedResource.Welcome")
	if err != nil || !ok || v != "Hello" {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetMissIsNotAnError(t *testing.T) {
	b, mock := newMockBackend(t)
	mock.ExpectGet("locsync:missing").RedisNil()

	v, ok, err := b.Get(context.Background(), "missing")
	if err != nil || ok || v != "" {
		t.Fatalf("expected clean miss: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetTransportErrorSurfaces(t *testing.T) {
	b, mock := newMockBackend(t)
	mock.ExpectGet("locsync:k").SetErr(errors.New("connection refused"))

	if _, ok, err := b.Get(context.Background(), "k"); ok || err == nil {
		t.Fatalf("expected transport error: ok=%v err=%v", ok, err)
	}
}

func TestSetWritesWithoutExpiry(t *testing.T) {
	b, mock := newMockBackend(t)
	mock.ExpectSet("locsync:k", "v", 0).SetVal("OK")

	if err := b.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRemove(t *testing.T) {
	b, mock := newMockBackend(t)
	mock.ExpectDel("locsync:k").SetVal(0) // absent key: still no error

	if err := b.Remove(context.Background(), "k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestNewRequiresClientOrURL(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
	if _, err := New(Config{URL: "://bad"}); err == nil {
		t.Fatal("expected URL parse error")
	}
}
