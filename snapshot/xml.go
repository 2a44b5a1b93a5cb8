package snapshot

import (
	"encoding/xml"

	"github.com/unkn0wn-root/locsync/store"
)

// XML is the reference snapshot format: an indented document with one
// LocalizationRecord element per record. The zero value is ready to use.
type XML struct{}

var _ Codec = XML{}

type xmlDocument struct {
	XMLName xml.Name       `xml:"LocalizationRecords"`
	Records []store.Record `xml:"LocalizationRecord"`
}

func (XML) Encode(recs []store.Record) ([]byte, error) {
	b, err := xml.MarshalIndent(xmlDocument{Records: recs}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}

func (XML) Decode(b []byte) ([]store.Record, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc.Records, nil
}

func (XML) Ext() string { return ".xml" }
