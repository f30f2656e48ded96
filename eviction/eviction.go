package eviction

/*
This file defines how the cache decides what to remove when a shard runs out of space.
*/

import "fmt"

/*
Policy is the interface that all eviction strategies must follow.

The cache does NOT care how eviction works internally.
It only calls these methods, always while holding the owning shard's lock,
so implementations need no synchronization of their own.
*/
type Policy interface {

	// OnGet is called whenever a key is read from the cache.
	//
	// - LRU moves the key to the most recently used position
	// - LFU bumps its access count
	// - FIFO ignores reads
	OnGet(string)

	// OnPut is called whenever a key is written, both for new keys
	// and for overwrites of existing ones.
	OnPut(string)

	// Remove is called when a key leaves the cache for any reason other
	// than Evict (expiry, sweeper), so the bookkeeping stays in sync.
	Remove(string)

	// Evict picks a victim, forgets it, and returns it.
	// ok is false when nothing is tracked.
	Evict() (key string, ok bool)

	// Len returns how many keys are tracked.
	Len() int
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used): evicts the key that has not been read or written for the longest time.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): evicts the key with the fewest accesses,
	// breaking ties by age.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out): evicts the least recently inserted key, regardless of access.
	FIFO PolicyType = "FIFO"
)

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy(t PolicyType) (Policy, error) {
	switch t {
	case LRU:
		return newLRU(), nil
	case LFU:
		return newLFU(), nil
	case FIFO:
		return newFIFO(), nil
	default:
		return nil, fmt.Errorf("unknown eviction policy %q", t)
	}
}
