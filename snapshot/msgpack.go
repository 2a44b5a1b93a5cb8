package snapshot

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/locsync/store"
)

// Msgpack serializes record sets with vmihailenco/msgpack/v5. Compact and
// fast; field names follow the `msgpack` struct tags.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(recs []store.Record) ([]byte, error) {
	return msgpack.Marshal(recs)
}

func (Msgpack) Decode(b []byte) ([]store.Record, error) {
	var recs []store.Record
	err := msgpack.Unmarshal(b, &recs)
	return recs, err
}

func (Msgpack) Ext() string { return ".msgpack" }
