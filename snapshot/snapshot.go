// Package snapshot (de)serializes record sets for snapshot files and exports.
//
// A Codec is format-complete: Decode(Encode(recs)) yields an equivalent record
// set. XML is the reference format for file-backed stores; JSON is the export
// default; Msgpack and CBOR are compact alternatives for machine-to-machine
// snapshots.
package snapshot

import "github.com/unkn0wn-root/locsync/store"

// Codec encodes/decodes a full record set to []byte.
type Codec interface {
	Encode([]store.Record) ([]byte, error)
	Decode([]byte) ([]store.Record, error)

	// Ext returns the conventional file extension, dot included.
	Ext() string
}
