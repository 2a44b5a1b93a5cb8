// Package filestore backs the record store with a single snapshot file.
// Records are held in memory and queried by linear scan; every committed
// mutation rewrites the file atomically (temp file + rename). Suitable for
// small record sets and for deployments without a database.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/unkn0wn-root/locsync/snapshot"
	"github.com/unkn0wn-root/locsync/store"
)

var ErrDuplicate = errors.New("filestore: duplicate record triple")

type Store struct {
	mu     sync.Mutex
	path   string
	codec  snapshot.Codec
	recs   []store.Record
	nextID uint

	// staged stores belong to an open Tx; they mutate a copy and never
	// touch the file themselves.
	staged bool
}

var _ store.Store = (*Store)(nil)

// Open loads the snapshot at path, or starts empty when the file does not
// exist yet. A nil codec defaults to XML.
func Open(path string, codec snapshot.Codec) (*Store, error) {
	if codec == nil {
		codec = snapshot.XML{}
	}
	s := &Store{path: path, codec: codec, nextID: 1}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: open: %w", err)
	}
	recs, err := codec.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", path, err)
	}
	// snapshot files carry no IDs; assign in file order
	for i := range recs {
		recs[i].ID = s.nextID
		s.nextID++
	}
	s.recs = recs
	return s, nil
}

func (s *Store) FindOne(_ context.Context, name, culture, key string) (*store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// first match in insertion order; deterministic even if duplicates ever
	// slipped in
	for _, r := range s.recs {
		if r.Name == name && r.CultureName == culture && r.ResourceKey == key {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *Store) FindMany(_ context.Context, culture string, keys []string) ([]store.Record, error) {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.Record
	for _, r := range s.recs {
		if r.CultureName != culture {
			continue
		}
		if _, ok := want[r.ResourceKey]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) FindByKeyPrefix(_ context.Context, fragment string) ([]store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.Record
	for _, r := range s.recs {
		if strings.Contains(r.ResourceKey, fragment) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) Insert(_ context.Context, rec *store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recs {
		if r.Name == rec.Name && r.CultureName == rec.CultureName && r.ResourceKey == rec.ResourceKey {
			return ErrDuplicate
		}
	}
	rec.ID = s.nextID
	s.nextID++
	s.recs = append(s.recs, *rec)
	return s.flushLocked()
}

func (s *Store) Update(_ context.Context, rec *store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs {
		if s.recs[i].ID == rec.ID {
			s.recs[i] = *rec
			return s.flushLocked()
		}
	}
	return nil // unknown record: no-op, same as a concurrent delete
}

func (s *Store) Delete(_ context.Context, rec *store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs {
		if s.recs[i].ID == rec.ID {
			s.recs = append(s.recs[:i], s.recs[i+1:]...)
			return s.flushLocked()
		}
	}
	return nil
}

func (s *Store) DeleteMany(ctx context.Context, recs []store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[uint]struct{}, len(recs))
	for _, r := range recs {
		drop[r.ID] = struct{}{}
	}
	kept := s.recs[:0]
	for _, r := range s.recs {
		if _, ok := drop[r.ID]; !ok {
			kept = append(kept, r)
		}
	}
	s.recs = kept
	return s.flushLocked()
}

// Tx stages fn's mutations on a copy of the record set and writes the file
// once on success. An error from fn discards the copy, leaving both memory
// and file untouched.
func (s *Store) Tx(ctx context.Context, fn func(store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := &Store{
		path:   s.path,
		codec:  s.codec,
		recs:   append([]store.Record(nil), s.recs...),
		nextID: s.nextID,
		staged: true,
	}
	if err := fn(staged); err != nil {
		return err
	}

	staged.mu.Lock()
	s.recs = staged.recs
	s.nextID = staged.nextID
	staged.mu.Unlock()
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	if s.staged {
		return nil
	}
	b, err := s.codec.Encode(s.recs)
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".locsync-*")
	if err != nil {
		return fmt.Errorf("filestore: temp: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("filestore: rename: %w", err)
	}
	return nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}
