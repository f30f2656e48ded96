// Package cache implements a single-process, in-memory key/value cache with
// an optional entry bound and two independent TTL policies: expire after
// write and expire after access.
//
// Lookups never fail: an unknown, expired or evicted key is simply a miss.
// Writes can fail, with ErrInvalidArgument for nil values or
// ErrStorageFailure when the store rejects them.
package cache
