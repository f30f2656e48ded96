package cache

import (
	"log/slog"
	"time"

	"github.com/krisalay/ttl-cache/eviction"
	"github.com/krisalay/ttl-cache/shard"
	"github.com/krisalay/ttl-cache/types"
)

// DefaultShards is the shard count used unless WithShards says otherwise.
const DefaultShards = 16

/*
Option tunes how a cache is wired together. Options (the policy value) says
WHAT the cache does; an Option says HOW it runs, and is not part of Options
equality or its configuration format.
*/
type Option func(*settings)

type settings struct {
	shards          int
	policy          eviction.PolicyType
	logger          *slog.Logger
	metrics         types.Metrics
	cleanupInterval time.Duration
	now             func() time.Time
	newStore        func() shard.Store
}

func defaultSettings() settings {
	return settings{
		shards:   DefaultShards,
		policy:   eviction.LRU,
		newStore: shard.NewMapStore,
	}
}

// WithShards sets the number of shards. Values below one mean one. A size
// bounded cache never uses more shards than its MaximumSize.
func WithShards(n int) Option {
	return func(s *settings) { s.shards = n }
}

// WithEvictionPolicy picks the size eviction order. Defaults to eviction.LRU.
func WithEvictionPolicy(p eviction.PolicyType) Option {
	return func(s *settings) { s.policy = p }
}

// WithLogger routes cache diagnostics to l. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithMetrics installs an event hook for hits, misses, evictions and expiries.
func WithMetrics(m types.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithCleanupInterval starts a background sweeper that drops expired
// entries every d. Zero or negative disables it; expiry is still enforced
// on every read.
func WithCleanupInterval(d time.Duration) Option {
	return func(s *settings) { s.cleanupInterval = d }
}

// WithClock replaces time.Now as the cache's time source.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithStoreFactory sets the constructor of each shard's Store.
func WithStoreFactory(f func() shard.Store) Option {
	return func(s *settings) {
		if f != nil {
			s.newStore = f
		}
	}
}
