package jsonschema

import (
	"sync"

	"github.com/goccy/go-yaml"
	"golang.org/x/sync/singleflight"
)

// SchemaResolver maps a schema identifier (an absolute URI, typically a
// `$schema` or `$ref` destination) to its document. Resolve must be
// thread-safe; returning false means the identifier is simply not known to
// this resolver, never an error — transport failures are the caller's
// concern and should be handled by a resolver implementation that itself
// decides whether to panic, log, or fall back.
type SchemaResolver interface {
	Resolve(identifier string) (Value, bool)
}

// MapResolver is an in-memory SchemaResolver backed by a map, guarded by a
// RWMutex the same way the teacher's Compiler guards its schema cache.
type MapResolver struct {
	mu   sync.RWMutex
	docs map[string]Value
}

// NewMapResolver creates a MapResolver seeded with the compact Draft 4
// through 2020-12 metaschemas in builtinMetaschemas, keyed by dialect URI,
// so that dialect detection works without network access. Vocabulary
// documents and the full published metaschemas are not included.
func NewMapResolver() *MapResolver {
	r := &MapResolver{docs: make(map[string]Value)}
	for id, doc := range builtinMetaschemas {
		r.docs[id] = doc
	}
	return r
}

// Resolve implements SchemaResolver.
func (r *MapResolver) Resolve(identifier string) (Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.docs[identifier]
	return v, ok
}

// Put registers a pre-decoded schema document under an identifier.
func (r *MapResolver) Put(identifier string, doc Value) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[identifier] = doc
}

// PutJSON decodes JSON bytes and registers the result under an identifier.
func (r *MapResolver) PutJSON(identifier string, data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	r.Put(identifier, v)
	return nil
}

// PutYAML decodes YAML-authored schema bytes (translated to JSON first, the
// way the teacher's compiler.go registers an "application/yaml" media type
// handler) and registers the result under an identifier.
func (r *MapResolver) PutYAML(identifier string, data []byte) error {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return err
	}
	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return err
	}
	return r.PutJSON(identifier, jsonBytes)
}

// CachingResolver decorates a SchemaResolver with a RWMutex-guarded cache
// and singleflight deduplication of concurrent identical lookups, matching
// §5's requirement that "the resolver's cache is the only cross-call shared
// mutable resource and must use a reader-writer or concurrent-map
// discipline."
type CachingResolver struct {
	inner SchemaResolver
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]cachedEntry
}

type cachedEntry struct {
	value Value
	ok    bool
}

// NewCachingResolver wraps inner with a deduplicated, cached lookup layer.
func NewCachingResolver(inner SchemaResolver) *CachingResolver {
	return &CachingResolver{inner: inner, cache: make(map[string]cachedEntry)}
}

// Resolve implements SchemaResolver.
func (c *CachingResolver) Resolve(identifier string) (Value, bool) {
	c.mu.RLock()
	entry, hit := c.cache[identifier]
	c.mu.RUnlock()
	if hit {
		return entry.value, entry.ok
	}

	result, _, _ := c.group.Do(identifier, func() (any, error) {
		// A call that finished between the read above and this Do has
		// already cached the entry; reuse it instead of resolving again.
		c.mu.RLock()
		cached, hit := c.cache[identifier]
		c.mu.RUnlock()
		if hit {
			return cached, nil
		}
		v, ok := c.inner.Resolve(identifier)
		entry := cachedEntry{value: v, ok: ok}
		c.mu.Lock()
		c.cache[identifier] = entry
		c.mu.Unlock()
		return entry, nil
	})

	e := result.(cachedEntry)
	return e.value, e.ok
}
