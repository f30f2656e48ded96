package shard

import "hash/fnv"

/*
This file decides HOW a cache key is assigned to a shard.
If every request went to the same shard, that shard would become a bottleneck.
*/

/*
Selector is the interface that decides which shard should handle a given key.
The same key must always map to the same shard for a fixed shard slice.
*/
type Selector interface {
	Select(string, []*Shard) *Shard
}

// HashSelector spreads keys over shards by their FNV-1a hash.
type HashSelector struct{}

// hash converts a string key into a number. FNV is a fast, non-cryptographic hash.
func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum32()
}

// Select chooses the shard for a given key.
func (HashSelector) Select(key string, shards []*Shard) *Shard {
	return shards[hash(key)%uint32(len(shards))]
}
