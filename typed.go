package cache

import "github.com/krisalay/ttl-cache/api"

// Cache is a ShardedCache holding values of a single type V.
type Cache[V any] struct {
	c *ShardedCache
}

var _ api.Cache[any] = (*Cache[any])(nil)

// NewTyped builds a Cache[V]. See New for how opts and options are applied.
func NewTyped[V any](opts Options, options ...Option) *Cache[V] {
	return &Cache[V]{c: New(opts, options...)}
}

// NewFromConfig builds a Cache[V] from a JSON configuration document.
// Empty input or {} gives DefaultOptions.
func NewFromConfig[V any](data []byte, options ...Option) (*Cache[V], error) {
	opts, err := ParseOptions(data)
	if err != nil {
		return nil, err
	}
	return NewTyped[V](opts, options...), nil
}

func (t *Cache[V]) Get(key string) (out V, ok bool) {
	v, ok := t.c.Get(key)
	if !ok {
		return out, false
	}
	out, ok = v.(V)
	return out, ok
}

func (t *Cache[V]) Put(key string, value V) error {
	return t.c.Put(key, value)
}

func (t *Cache[V]) Len() int { return t.c.Len() }

func (t *Cache[V]) Options() Options { return t.c.Options() }

func (t *Cache[V]) Close() error { return t.c.Close() }
