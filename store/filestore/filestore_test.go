package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/unkn0wn-root/locsync/snapshot"
	"github.com/unkn0wn-root/locsync/store"
)

func rec(name, value, culture, key string) *store.Record {
	return &store.Record{Name: name, Value: value, CultureName: culture, ResourceKey: key}
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "en-US.SharedResource.xml"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, have %d", s.Len())
	}
}

func TestInsertPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recs.xml")

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Insert(ctx, rec("Welcome", "Hello", "en-US", "en-US.SharedResource.Welcome")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.FindOne(ctx, "Welcome", "en-US", "en-US.SharedResource.Welcome")
	if err != nil || got == nil || got.Value != "Hello" {
		t.Fatalf("record lost on reopen: rec=%+v err=%v", got, err)
	}
}

func TestInsertRejectsDuplicateTriple(t *testing.T) {
	ctx := context.Background()
	s, _ := Open(filepath.Join(t.TempDir(), "recs.xml"), nil)

	if err := s.Insert(ctx, rec("n", "v1", "en-US", "k")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(ctx, rec("n", "v2", "en-US", "k")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := Open(filepath.Join(t.TempDir(), "recs.xml"), nil)

	r := rec("n", "v1", "en-US", "k")
	if err := s.Insert(ctx, r); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	r.Value = "v2"
	if err := s.Update(ctx, r); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := s.FindOne(ctx, "n", "en-US", "k")
	if got == nil || got.Value != "v2" {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := s.Delete(ctx, got); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if again, _ := s.FindOne(ctx, "n", "en-US", "k"); again != nil {
		t.Fatalf("record survived delete: %+v", again)
	}
	// deleting an unknown record is a no-op
	if err := s.Delete(ctx, got); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestTxAbortLeavesStoreAndFileUntouched(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recs.xml")
	s, _ := Open(path, nil)

	if err := s.Insert(ctx, rec("keep", "v", "en-US", "k1")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	boom := errors.New("boom")
	err = s.Tx(ctx, func(tx store.Store) error {
		if err := tx.Insert(ctx, rec("gone", "v", "en-US", "k2")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected closure error, got %v", err)
	}

	if s.Len() != 1 {
		t.Fatalf("aborted batch leaked into memory, have %d", s.Len())
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Fatal("aborted batch rewrote the file")
	}
}

func TestTxCommitFlushesOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recs.xml")
	s, _ := Open(path, nil)

	err := s.Tx(ctx, func(tx store.Store) error {
		if err := tx.Insert(ctx, rec("a", "1", "en-US", "ka")); err != nil {
			return err
		}
		return tx.Insert(ctx, rec("b", "2", "en-US", "kb"))
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Len() != 2 {
		t.Fatalf("expected 2 committed records, have %d", reopened.Len())
	}
}

func TestFindByKeyPrefixAndFindMany(t *testing.T) {
	ctx := context.Background()
	s, _ := Open(filepath.Join(t.TempDir(), "recs.xml"), nil)

	seed := []*store.Record{
		rec("Welcome", "Hello", "en-US", "en-US.SharedResource.Welcome"),
		rec("Goodbye", "Bye", "en-US", "en-US.SharedResource.Goodbye"),
		rec("Welcome", "Hallo", "de-DE", "de-DE.SharedResource.Welcome"),
	}
	for _, r := range seed {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	en, err := s.FindByKeyPrefix(ctx, "en-US.SharedResource.")
	if err != nil || len(en) != 2 {
		t.Fatalf("FindByKeyPrefix: n=%d err=%v", len(en), err)
	}

	many, err := s.FindMany(ctx, "en-US", []string{"en-US.SharedResource.Welcome", "de-DE.SharedResource.Welcome"})
	if err != nil || len(many) != 1 || many[0].Value != "Hello" {
		t.Fatalf("FindMany must filter by culture: %+v err=%v", many, err)
	}
}

func TestJSONCodecStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recs.json")

	s, err := Open(path, snapshot.JSON{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Insert(ctx, rec("n", "v", "en-US", "k")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	reopened, err := Open(path, snapshot.JSON{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Len() != 1 {
		t.Fatalf("json-backed store lost record, have %d", reopened.Len())
	}
}
