// Package store defines the durable record backend used by locsync.
//
// A Store holds LocalizationRecord rows addressed by the triple
// (Name, CultureName, ResourceKey). The triple is a de-facto unique
// constraint: the sync layer always checks existence before inserting, and
// implementations should reject duplicate triples.
//
// Tx is the durability boundary for logical batches: every mutation performed
// through the Store passed to the closure is flushed together when the closure
// returns nil, and discarded when it returns an error. Mutations performed
// outside Tx are durable when the call returns.
package store

import "context"

// SharedResource is the resource-group sentinel used when a caller passes an
// empty resource name.
const SharedResource = "SharedResource"

// Record is a single localized string.
//
// ResourceKey is not a free grouping label: it is the fully computed canonical
// cache key (culture + resource group + name), stored redundantly so lookups
// by key need no recomputation on the store side.
type Record struct {
	ID          uint   `gorm:"primaryKey" json:"-" xml:"-" msgpack:"-" cbor:"-"`
	Name        string `gorm:"size:256;uniqueIndex:idx_localization_triple" json:"name" xml:"Name" msgpack:"name" cbor:"name"`
	Value       string `json:"value" xml:"Value" msgpack:"value" cbor:"value"`
	CultureName string `gorm:"size:64;uniqueIndex:idx_localization_triple" json:"cultureName" xml:"CultureName" msgpack:"cultureName" cbor:"cultureName"`
	ResourceKey string `gorm:"size:512;uniqueIndex:idx_localization_triple" json:"resourceKey" xml:"ResourceKey" msgpack:"resourceKey" cbor:"resourceKey"`
}

// TableName names the relational table for gorm-backed stores.
func (Record) TableName() string { return "localization_records" }

// Store is the durable record backend.
// Implementations must be safe for concurrent use.
type Store interface {
	// FindOne returns the record matching the triple, or (nil, nil) on miss.
	// If the backend holds more than one match (an upstream integrity
	// violation) implementations pick one deterministically and never fail.
	FindOne(ctx context.Context, name, culture, key string) (*Record, error)

	// FindMany returns all records for the culture whose ResourceKey is in
	// keys, in one round trip. Missing keys are simply absent from the result.
	FindMany(ctx context.Context, culture string, keys []string) ([]Record, error)

	// FindByKeyPrefix returns all records whose ResourceKey contains the
	// given computed path fragment.
	FindByKeyPrefix(ctx context.Context, fragment string) ([]Record, error)

	// Insert persists a new record. Duplicate triples are an error.
	Insert(ctx context.Context, rec *Record) error

	// Update persists changes to an existing record.
	Update(ctx context.Context, rec *Record) error

	// Delete removes a record. Unknown records are not an error.
	Delete(ctx context.Context, rec *Record) error

	// DeleteMany removes the given records.
	DeleteMany(ctx context.Context, recs []Record) error

	// Tx runs fn with a Store whose mutations commit together when fn
	// returns nil, and are discarded when fn returns an error.
	Tx(ctx context.Context, fn func(Store) error) error
}
