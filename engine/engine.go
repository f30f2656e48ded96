package engine

import (
	"log/slog"
	"time"

	"github.com/krisalay/ttl-cache/expiration"
	"github.com/krisalay/ttl-cache/types"
)

/*
CacheEngine is the "brain" of the cache system.
It is responsible for the "behavior" of the cache, NOT storage.
This acts as the policy layer.

It decides:
- When an entry is expired
- How timestamps move on reads/writes
- How events are reported

It does NOT:
- Store data
- Handle sharding
- Handle locking
- Decide eviction order
*/
type CacheEngine struct {

	// Expiration controls when a cache entry should be considered "too old".
	// If this is nil, entries never expire based on time.
	Expiration expiration.Strategy

	// Metrics receives hit, miss, eviction and expiry events. Never nil.
	Metrics types.Metrics

	// Logger is never nil.
	Logger *slog.Logger

	// Now is the time source. Never nil.
	Now func() time.Time
}

/*
NewCacheEngine creates a CacheEngine. Nil collaborators are replaced by
harmless defaults so the rest of the code never checks for them.
*/
func NewCacheEngine(
	exp expiration.Strategy,
	metrics types.Metrics,
	logger *slog.Logger,
	now func() time.Time,
) *CacheEngine {
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	if now == nil {
		now = time.Now
	}

	return &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Logger:     logger,
		Now:        now,
	}
}

// IsExpired reports whether ent is expired at now. Without an expiration
// strategy nothing ever expires.
func (e *CacheEngine) IsExpired(ent *types.Entry, now time.Time) bool {
	return e.Expiration != nil && e.Expiration.IsExpired(ent, now)
}

// OnRead is called every time the cache successfully returns a value.
// Sliding TTL strategies push their deadline forward here.
func (e *CacheEngine) OnRead(ent *types.Entry, now time.Time) {
	if e.Expiration != nil {
		e.Expiration.OnAccess(ent, now)
	}
}

// OnWrite is called for every entry about to be stored.
func (e *CacheEngine) OnWrite(ent *types.Entry, now time.Time) {
	if e.Expiration != nil {
		e.Expiration.OnWrite(ent, now)
	}
}
