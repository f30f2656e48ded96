package api

/*
Cache defines the PUBLIC API of our in-memory cache system.
This is a contract that guarantees certain behaviors, without exposing internals.
All of the details like sharding, eviction, expiration and concurrency are
hidden behind this interface.

It is deliberately tiny. Callers use the lookup-or-compute pattern themselves:
Get, and on a miss compute the value from the source of truth and Put it.
The cache never loads values on its own.
*/
type Cache[V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists and is NOT expired:
		   - Return the value and true (cache hit)

		2. If the key does NOT exist, is expired or was evicted:
		   - Return the zero value and false (cache miss)

		Get never fails. Internal faults are reported as misses, so callers
		treat a broken cache exactly like an empty one.
	*/
	Get(key string) (V, bool)

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Stores the value in memory, replacing any previous one
		- Restarts the TTL windows for the key
		- Applies size eviction if the cache is full

		ERRORS:
		-------
		- nil values are rejected (invalid argument), nothing changes
		- a store that cannot take the write reports a storage failure

		A failed Put must never be fatal to the caller: caching is an
		optimization, the value is simply not cached.
	*/
	Put(key string, value V) error
}
