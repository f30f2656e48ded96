package cache_test

import (
	"fmt"
	"testing"
	"time"

	cache "github.com/krisalay/ttl-cache"
)

func newBenchmarkCache() *cache.Cache[int] {
	return cache.NewTyped[int](cache.Options{
		MaximumSizeEnabled:    true,
		MaximumSize:           100000,
		TTLAfterAccessEnabled: true,
		TTLAfterAccess:        10 * time.Second,
	}, cache.WithShards(8))
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c := newBenchmarkCache()
	_ = c.Put("key", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newBenchmarkCache()
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("miss-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkCacheParallelGet(b *testing.B) {
	c := newBenchmarkCache()
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		_ = c.Put(keys[i], i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Get(keys[i%len(keys)])
			i++
		}
	})
}

//
// ================= WRITE BENCH =================
//

func BenchmarkCachePut(b *testing.B) {
	c := newBenchmarkCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(fmt.Sprintf("key-%d", i), i)
	}
}

// BenchmarkCachePutAtCapacity keeps every put evicting.
func BenchmarkCachePutAtCapacity(b *testing.B) {
	c := cache.NewTyped[int](cache.Options{MaximumSizeEnabled: true, MaximumSize: 1024})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(fmt.Sprintf("key-%d", i), i)
	}
}

func BenchmarkCacheParallelMixed(b *testing.B) {
	c := newBenchmarkCache()
	keys := make([]string, 10000)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		_ = c.Put(keys[i], i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			k := keys[i%len(keys)]
			if i%10 == 0 {
				_ = c.Put(k, i)
			} else {
				c.Get(k)
			}
			i++
		}
	})
}
