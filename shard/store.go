package shard

import "github.com/krisalay/ttl-cache/types"

/*
This file defines how data is actually stored inside a shard.

A Store is never shared: each shard owns one and only touches it while holding
the shard lock, so implementations do not need to be safe for concurrent use.
*/

// Store is the interface used by a shard to store and retrieve cache entries.
type Store interface {

	// Get retrieves an entry by key.
	Get(string) (*types.Entry, bool)

	// Put inserts or replaces an entry. An error means the entry was not stored.
	Put(string, *types.Entry) error

	// Delete removes an entry. Deleting a missing key is a no-op.
	Delete(string)

	// Len returns how many entries are stored.
	Len() int

	// Range calls fn for every entry until fn returns false.
	// fn must not modify the store.
	Range(fn func(*types.Entry) bool)
}

// mapStore is the default Store: a plain Go map.
type mapStore struct {
	data map[string]*types.Entry
}

// NewMapStore returns an empty map backed Store.
func NewMapStore() Store {
	return &mapStore{data: make(map[string]*types.Entry)}
}

func (s *mapStore) Get(key string) (*types.Entry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore) Put(key string, ent *types.Entry) error {
	s.data[key] = ent
	return nil
}

func (s *mapStore) Delete(key string) {
	delete(s.data, key)
}

func (s *mapStore) Len() int {
	return len(s.data)
}

func (s *mapStore) Range(fn func(*types.Entry) bool) {
	for _, ent := range s.data {
		if !fn(ent) {
			return
		}
	}
}
