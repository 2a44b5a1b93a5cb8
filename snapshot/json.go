package snapshot

import (
	"encoding/json"

	"github.com/unkn0wn-root/locsync/store"
)

// JSON serializes the record set as a flat JSON array.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(recs []store.Record) ([]byte, error) {
	if recs == nil {
		recs = []store.Record{}
	}
	return json.Marshal(recs)
}

func (JSON) Decode(b []byte) ([]store.Record, error) {
	var recs []store.Record
	err := json.Unmarshal(b, &recs)
	return recs, err
}

func (JSON) Ext() string { return ".json" }
