package snapshot

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/locsync/store"
)

// CBOR serializes record sets with fxamacker/cbor/v2 using core deterministic
// encoding, so identical record sets encode to identical bytes.
type CBOR struct{}

var _ Codec = CBOR{}

func (CBOR) Encode(recs []store.Record) ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(recs)
}

func (CBOR) Decode(b []byte) ([]store.Record, error) {
	var recs []store.Record
	err := cbor.Unmarshal(b, &recs)
	return recs, err
}

func (CBOR) Ext() string { return ".cbor" }
