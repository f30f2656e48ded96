package cache

import (
	"time"

	"github.com/krisalay/ttl-cache/shard"
	"github.com/krisalay/ttl-cache/types"
)

// sweepLoop periodically removes expired entries so that keys written once
// and never read again do not stay in memory until evicted for size.
func (c *ShardedCache) sweepLoop(every time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if n := c.sweep(); n > 0 {
				c.engine.Logger.Debug("cache sweep", "expired", n)
			}
		}
	}
}

// sweep removes every expired entry, one shard at a time, and returns how
// many it removed.
func (c *ShardedCache) sweep() int {
	if c.engine.Expiration == nil {
		return 0
	}
	removed := 0
	for _, sh := range c.shards {
		removed += c.sweepShard(sh)
	}
	return removed
}

// sweepShard never panics: the sweeper goroutine must outlive a faulty store
// or metrics hook, so failures are logged and the shard is skipped.
func (c *ShardedCache) sweepShard(sh *shard.Shard) (removed int) {
	defer func() {
		if r := recover(); r != nil {
			c.engine.Logger.Warn("cache sweep recovered from panic", "panic", r)
		}
	}()

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	now := c.engine.Now()
	var expired []string
	sh.Store.Range(func(ent *types.Entry) bool {
		if c.engine.IsExpired(ent, now) {
			expired = append(expired, ent.Key)
		}
		return true
	})

	for _, key := range expired {
		c.removeLocked(sh, key)
		removed++
		c.engine.Metrics.Expire()
	}
	return removed
}
