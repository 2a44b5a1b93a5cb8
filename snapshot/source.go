package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/locsync/store"
)

// DefaultNameTemplate names snapshot files per (culture, resource group);
// the codec's extension is appended.
const DefaultNameTemplate = "%s.%s"

// FileSource loads a per-(culture, resource) record snapshot from disk.
// It satisfies the warm-up Source contract of the root package.
type FileSource struct {
	Dir   string // "" => current directory
	Codec Codec  // nil => XML{}

	// NameTemplate formats the file name from (culture, resource); the
	// codec extension is appended. "" => DefaultNameTemplate.
	NameTemplate string
}

// Load reads and decodes the snapshot for the given culture and resource
// group. An empty resource falls back to the shared-resource bucket.
func (s FileSource) Load(_ context.Context, culture, resource string) ([]store.Record, error) {
	b, err := os.ReadFile(s.Path(culture, resource))
	if err != nil {
		return nil, fmt.Errorf("snapshot: read: %w", err)
	}
	recs, err := s.codec().Decode(b)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return recs, nil
}

// Path returns the snapshot file path for (culture, resource).
func (s FileSource) Path(culture, resource string) string {
	if resource == "" {
		resource = store.SharedResource
	}
	tmpl := s.NameTemplate
	if tmpl == "" {
		tmpl = DefaultNameTemplate
	}
	name := fmt.Sprintf(tmpl, culture, resource) + s.codec().Ext()
	return filepath.Join(s.Dir, name)
}

func (s FileSource) codec() Codec {
	if s.Codec == nil {
		return XML{}
	}
	return s.Codec
}
