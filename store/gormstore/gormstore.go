// Package gormstore backs the record store with a relational table through
// gorm. The (name, culture_name, resource_key) triple carries a composite
// unique index, so duplicate inserts fail at the database even if a caller
// bypasses the sync layer's existence check.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/unkn0wn-root/locsync/store"
)

var ErrNilDB = errors.New("gormstore: nil db")

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an opened gorm DB. The caller owns the connection; any gorm
// driver works.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	return &Store{db: db}, nil
}

// AutoMigrate creates or updates the localization_records table.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&store.Record{})
}

func (s *Store) FindOne(ctx context.Context, name, culture, key string) (*store.Record, error) {
	var rec store.Record
	// First orders by primary key, which keeps the pick deterministic if the
	// unique index was ever violated upstream.
	err := s.db.WithContext(ctx).
		Where("name = ? AND culture_name = ? AND resource_key = ?", name, culture, key).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) FindMany(ctx context.Context, culture string, keys []string) ([]store.Record, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var recs []store.Record
	err := s.db.WithContext(ctx).
		Where("culture_name = ? AND resource_key IN ?", culture, keys).
		Find(&recs).Error
	return recs, err
}

func (s *Store) FindByKeyPrefix(ctx context.Context, fragment string) ([]store.Record, error) {
	var recs []store.Record
	err := s.db.WithContext(ctx).
		Where("resource_key LIKE ?", "%"+fragment+"%").
		Find(&recs).Error
	return recs, err
}

func (s *Store) Insert(ctx context.Context, rec *store.Record) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *Store) Update(ctx context.Context, rec *store.Record) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

func (s *Store) Delete(ctx context.Context, rec *store.Record) error {
	return s.db.WithContext(ctx).Delete(&store.Record{}, rec.ID).Error
}

func (s *Store) DeleteMany(ctx context.Context, recs []store.Record) error {
	if len(recs) == 0 {
		return nil
	}
	ids := make([]uint, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return s.db.WithContext(ctx).Delete(&store.Record{}, ids).Error
}

// Tx maps the logical-batch boundary onto a database transaction: fn's
// mutations commit together, and any error rolls the whole batch back.
func (s *Store) Tx(ctx context.Context, fn func(store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
