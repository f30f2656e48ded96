package shard

import (
	"math"
	"sync"

	"github.com/krisalay/ttl-cache/eviction"
)

/*
This file defines what a "Shard" is. A shard is a small, independent piece of the cache.
Instead of having one big map and one big lock, we split the cache into many shards. Each shard:
- Holds some portion of the data
- Has its own eviction bookkeeping
- Has its own lock

Operations on keys that land in different shards never contend.
*/

// Unbounded is the Capacity of a shard that never evicts for size.
const Unbounded = -1

type Shard struct {

	// Mu guards Store and Eviction. Reads take it too because a read moves
	// the key inside the eviction order.
	Mu sync.Mutex

	// Store holds the actual key → entry data for this shard.
	Store Store

	// Eviction decides which key goes when the shard is over Capacity.
	// Each shard has its OWN policy instance.
	Eviction eviction.Policy

	// Capacity is the maximum number of entries, or Unbounded.
	Capacity int
}

func NewShard(store Store, ev eviction.Policy, capacity int) *Shard {
	return &Shard{
		Store:    store,
		Eviction: ev,
		Capacity: capacity,
	}
}

// Overflowing reports whether the shard holds more entries than it may.
// Callers must hold Mu.
func (s *Shard) Overflowing() bool {
	return s.Capacity != Unbounded && s.Store.Len() > s.Capacity
}

/*
Plan decides how many shards to create and how much of the total capacity
each one gets.

  - When the cache is unbounded every shard is Unbounded.
  - When bounded, the shard count is lowered so that no shard gets a zero
    share (unless the whole bound is zero), and the remainder of
    maxSize/count is spread over the first shards. The capacities always
    sum to exactly maxSize, so the total entry count can never exceed it.
*/
func Plan(requested int, bounded bool, maxSize uint64) []int {
	if requested < 1 {
		requested = 1
	}
	if !bounded {
		caps := make([]int, requested)
		for i := range caps {
			caps[i] = Unbounded
		}
		return caps
	}

	total := uint64(math.MaxInt)
	if maxSize < total {
		total = maxSize
	}

	n := uint64(requested)
	if total < n {
		n = max(total, 1)
	}

	caps := make([]int, n)
	base, rem := total/n, total%n
	for i := range caps {
		c := base
		if uint64(i) < rem {
			c++
		}
		caps[i] = int(c)
	}
	return caps
}
