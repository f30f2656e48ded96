package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/krisalay/ttl-cache/shard"
	"github.com/krisalay/ttl-cache/types"
)

//
// ================= MANUAL CLOCK =================
//

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

//
// ================= FAULTY STORES =================
//

var errDiskFull = errors.New("no space left")

// rejectingStore refuses every write.
type rejectingStore struct{ shard.Store }

func newRejectingStore() shard.Store { return rejectingStore{shard.NewMapStore()} }

func (rejectingStore) Put(string, *types.Entry) error { return errDiskFull }

// panickingStore blows up on the operations named by its flags.
type panickingStore struct {
	shard.Store
	onGet, onPut, onDelete, onRange bool

	// ranges counts Range calls when set.
	ranges *atomic.Int64
}

func (s panickingStore) Get(key string) (*types.Entry, bool) {
	if s.onGet {
		panic("corrupted bucket")
	}
	return s.Store.Get(key)
}

func (s panickingStore) Put(key string, ent *types.Entry) error {
	if s.onPut {
		panic("allocation failed")
	}
	return s.Store.Put(key, ent)
}

func (s panickingStore) Delete(key string) {
	if s.onDelete {
		panic("bucket locked")
	}
	s.Store.Delete(key)
}

func (s panickingStore) Range(fn func(*types.Entry) bool) {
	if s.ranges != nil {
		s.ranges.Add(1)
	}
	if s.onRange {
		panic("iterator invalidated")
	}
	s.Store.Range(fn)
}

//
// ================= COUNTING METRICS =================
//

type countingMetrics struct {
	hits, misses, evictions, expired atomic.Int64
}

func (m *countingMetrics) Hit()      { m.hits.Add(1) }
func (m *countingMetrics) Miss()     { m.misses.Add(1) }
func (m *countingMetrics) Eviction() { m.evictions.Add(1) }
func (m *countingMetrics) Expire()   { m.expired.Add(1) }

// brokenEvictionMetrics panics whenever an eviction is reported.
type brokenEvictionMetrics struct{ countingMetrics }

func (*brokenEvictionMetrics) Eviction() { panic("metrics backend gone") }
