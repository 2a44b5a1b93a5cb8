package locsync

import (
	"fmt"

	"github.com/unkn0wn-root/locsync/store"
)

// Key and path templates are fixed process-wide configuration. The key
// template takes (culture, resource group, name); the path template takes
// (culture, resource group) and yields the fragment shared by every key in
// that bucket, so prefix queries and exports can address a whole group.
const (
	DefaultKeyTemplate  = "%s.%s.%s"
	DefaultPathTemplate = "%s.%s."
)

// KeyBuilder derives canonical cache keys. Both the store rows and the cache
// entries are addressed by its output, so the same builder must be used on
// every path that touches a record. The zero value uses the default templates.
type KeyBuilder struct {
	keyTemplate  string
	pathTemplate string
}

// NewKeyBuilder returns a builder over the given fmt templates. Empty
// templates fall back to the defaults.
func NewKeyBuilder(keyTemplate, pathTemplate string) *KeyBuilder {
	return &KeyBuilder{keyTemplate: keyTemplate, pathTemplate: pathTemplate}
}

// Key computes the canonical key for one record. Deterministic: identical
// inputs always yield identical output. An empty resource falls back to the
// shared-resource bucket.
func (b *KeyBuilder) Key(culture, resource, name string) string {
	return fmt.Sprintf(coalesce(b.keyTemplate, DefaultKeyTemplate),
		culture, resourceOrShared(resource), name)
}

// PathFragment computes the fragment common to all keys of a
// (culture, resource group) bucket.
func (b *KeyBuilder) PathFragment(culture, resource string) string {
	return fmt.Sprintf(coalesce(b.pathTemplate, DefaultPathTemplate),
		culture, resourceOrShared(resource))
}

func resourceOrShared(resource string) string {
	if resource == "" {
		return store.SharedResource
	}
	return resource
}
