package cache

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/krisalay/ttl-cache/engine"
	"github.com/krisalay/ttl-cache/eviction"
	"github.com/krisalay/ttl-cache/shard"
	"github.com/krisalay/ttl-cache/types"
)

/*
ShardedCache is the main cache implementation. Values are untyped; Cache[V]
wraps it for a single value type.

This struct is the orchestrator that connects:
- shards (storage + eviction bookkeeping, one lock each)
- the engine (expiration, metrics, logging, clock)
- the selector (which shard owns a key)
*/
type ShardedCache struct {
	shards   []*shard.Shard
	engine   *engine.CacheEngine
	selector shard.Selector
	opts     Options

	closed    atomic.Bool
	closeOnce sync.Once
	stop      chan struct{}
	wg        sync.WaitGroup
}

/*
New builds a cache from an Options snapshot.

Construction does not validate opts. It panics only when WithEvictionPolicy
names a policy that does not exist, which is a programming error.
*/
func New(opts Options, options ...Option) *ShardedCache {
	s := defaultSettings()
	for _, o := range options {
		o(&s)
	}

	capacities := shard.Plan(s.shards, opts.MaximumSizeEnabled, opts.MaximumSize)
	shards := make([]*shard.Shard, len(capacities))
	for i, capacity := range capacities {
		// Each shard gets its own eviction policy instance
		ev, err := eviction.NewEvictionPolicy(s.policy)
		if err != nil {
			panic(fmt.Sprintf("cache: %v", err))
		}
		shards[i] = shard.NewShard(s.newStore(), ev, capacity)
	}

	c := &ShardedCache{
		shards:   shards,
		engine:   engine.NewCacheEngine(opts.expiration(), s.metrics, s.logger, s.now),
		selector: shard.HashSelector{},
		opts:     opts,
		stop:     make(chan struct{}),
	}

	c.engine.Logger.Debug("cache created",
		"options", opts.String(),
		"shards", len(shards),
		"eviction", string(s.policy),
		"cleanupInterval", s.cleanupInterval,
	)

	if s.cleanupInterval > 0 {
		c.wg.Add(1)
		go c.sweepLoop(s.cleanupInterval)
	}

	return c
}

/*
Get retrieves a value from the cache.

It never fails. A key that is unknown, expired or evicted reports ok=false,
and so does any internal fault, which is recovered and logged. Expired
entries are removed on the read that finds them.
*/
func (c *ShardedCache) Get(key string) (value any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.engine.Logger.Warn("cache get recovered from panic", "key", key, "panic", r)
			value, ok = nil, false
		}
	}()

	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	ent, found := sh.Store.Get(key)
	if !found {
		c.engine.Metrics.Miss()
		return nil, false
	}

	now := c.engine.Now()
	if c.engine.IsExpired(ent, now) {
		c.removeLocked(sh, key)
		c.engine.Metrics.Expire()
		c.engine.Metrics.Miss()
		return nil, false
	}

	c.engine.OnRead(ent, now)
	sh.Eviction.OnGet(key)
	c.engine.Metrics.Hit()
	return ent.Value, true
}

/*
Put stores value under key, replacing any previous value and restarting both
TTL windows.

Errors:
  - ErrInvalidArgument when value is nil (including typed nil pointers, maps,
    slices, channels and funcs). Nothing changes.
  - ErrStorageFailure when the shard store rejects the entry, size eviction
    fails, or the cache is closed. The new value is not cached.

When the entry bound is enabled and the shard is full, victims chosen by the
eviction policy are removed before Put returns.
*/
func (c *ShardedCache) Put(key string, value any) error {
	if isNil(value) {
		return fmt.Errorf("put %q: %w: nil value", key, ErrInvalidArgument)
	}
	if c.closed.Load() {
		return fmt.Errorf("put %q: %w: %w", key, ErrStorageFailure, ErrClosed)
	}

	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	now := c.engine.Now()
	ent := types.NewEntry(key, value, now)
	c.engine.OnWrite(ent, now)

	if err := guard(func() error { return sh.Store.Put(key, ent) }); err != nil {
		c.engine.Logger.Warn("cache put failed", "key", key, "error", err)
		return fmt.Errorf("put %q: %w: %w", key, ErrStorageFailure, err)
	}
	sh.Eviction.OnPut(key)

	if err := c.evictLocked(sh); err != nil {
		// The bound could not be restored, so the new value is dropped again.
		if rerr := guard(func() error { c.removeLocked(sh, key); return nil }); rerr != nil {
			c.engine.Logger.Warn("cache put rollback failed", "key", key, "error", rerr)
		}
		c.engine.Logger.Warn("cache eviction failed", "key", key, "error", err)
		return fmt.Errorf("put %q: %w: evict: %w", key, ErrStorageFailure, err)
	}
	return nil
}

// Len returns the number of stored entries, including expired ones that
// nobody has read or swept yet.
func (c *ShardedCache) Len() int {
	n := 0
	for _, sh := range c.shards {
		sh.Mu.Lock()
		n += sh.Store.Len()
		sh.Mu.Unlock()
	}
	return n
}

// Options returns the snapshot the cache was built from.
func (c *ShardedCache) Options() Options {
	return c.opts
}

/*
Close stops the background sweeper, if any, and makes later Puts fail with
ErrClosed. Gets keep answering from what is stored.

Close is safe to call multiple times.
*/
func (c *ShardedCache) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.stop)
	})
	c.wg.Wait()
	return nil
}

/*
evictLocked trims sh back to its capacity. Callers must hold sh.Mu.

A victim leaves the eviction order before it leaves the store. If the store
fails to drop it, the victim is tracked again so store and policy stay in
sync, and the error is returned.
*/
func (c *ShardedCache) evictLocked(sh *shard.Shard) error {
	return guard(func() error {
		now := c.engine.Now()
		for sh.Overflowing() {
			victim, ok := sh.Eviction.Evict()
			if !ok {
				c.engine.Logger.Warn("cache shard over capacity with nothing to evict",
					"size", sh.Store.Len(), "capacity", sh.Capacity)
				return nil
			}

			var expired bool
			err := guard(func() error {
				ent, found := sh.Store.Get(victim)
				expired = found && c.engine.IsExpired(ent, now)
				sh.Store.Delete(victim)
				return nil
			})
			if err != nil {
				sh.Eviction.OnPut(victim)
				return err
			}

			if expired {
				c.engine.Metrics.Expire()
			} else {
				c.engine.Metrics.Eviction()
			}
			c.engine.Logger.Debug("cache evicted", "key", victim)
		}
		return nil
	})
}

// removeLocked drops key from both the store and the eviction order.
func (c *ShardedCache) removeLocked(sh *shard.Shard, key string) {
	sh.Store.Delete(key)
	sh.Eviction.Remove(key)
}

// guard runs fn and turns a panic inside it into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
