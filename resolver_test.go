package jsonschema

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapResolverSeededWithBuiltinMetaschemas(t *testing.T) {
	resolver := NewMapResolver()
	_, ok := resolver.Resolve(Draft202012)
	assert.True(t, ok)
	_, ok = resolver.Resolve(Draft4)
	assert.True(t, ok)
}

func TestMapResolverPutAndResolve(t *testing.T) {
	resolver := NewMapResolver()
	_, ok := resolver.Resolve("https://example.com/custom")
	assert.False(t, ok)

	err := resolver.PutJSON("https://example.com/custom", []byte(`{"type": "string"}`))
	require.NoError(t, err)

	doc, ok := resolver.Resolve("https://example.com/custom")
	require.True(t, ok)
	typ, _ := doc.At("type")
	assert.Equal(t, "string", typ.String())
}

func TestMapResolverPutYAML(t *testing.T) {
	resolver := NewMapResolver()
	err := resolver.PutYAML("https://example.com/yaml-schema", []byte("type: object\nproperties:\n  name:\n    type: string\n"))
	require.NoError(t, err)

	doc, ok := resolver.Resolve("https://example.com/yaml-schema")
	require.True(t, ok)
	typ, _ := doc.At("type")
	assert.Equal(t, "object", typ.String())
}

func TestCachingResolverCachesMisses(t *testing.T) {
	inner := &countingResolver{}
	cache := NewCachingResolver(inner)

	_, ok := cache.Resolve("missing")
	assert.False(t, ok)
	_, ok = cache.Resolve("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, inner.calls, "a cache miss must still only call the inner resolver once")
}

func TestCachingResolverDeduplicatesConcurrentCalls(t *testing.T) {
	inner := &blockingResolver{release: make(chan struct{})}
	cache := NewCachingResolver(inner)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Resolve("shared")
		}()
	}
	close(inner.release)
	wg.Wait()

	assert.Equal(t, int32(1), inner.calls.Load())
}

type countingResolver struct {
	calls int
}

func (c *countingResolver) Resolve(identifier string) (Value, bool) {
	c.calls++
	return Value{}, false
}

// blockingResolver holds every caller until release is closed, so the
// Resolve calls that arrive before then overlap and exercise singleflight
// deduplication; calls that arrive after the first lookup finished are
// answered from the cache.
type blockingResolver struct {
	release chan struct{}
	calls   atomic.Int32
}

func (b *blockingResolver) Resolve(identifier string) (Value, bool) {
	<-b.release
	b.calls.Add(1)
	return Value{}, false
}
