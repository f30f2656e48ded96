package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to observe.
Each method represents an event in the cache lifecycle. The cache calls
these methods while holding a shard lock, so implementations must be fast
and must not call back into the cache.
*/
type Metrics interface {

	// Hit is called when Get returns a live value.
	Hit()

	// Miss is called when Get finds nothing usable: unknown, expired or evicted.
	Miss()

	// Eviction is called when a key is removed because its shard is full.
	Eviction()

	// Expire is called when a key is removed because a TTL deadline passed.
	Expire()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

The cache always holds a non-nil Metrics so the hot paths never need an
"if metrics != nil" check.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}
