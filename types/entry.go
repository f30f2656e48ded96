package types

import "time"

/*
Entry is one stored key and its bookkeeping timestamps.

An Entry is owned by exactly one shard and every field is guarded by that
shard's lock. Overwriting a key replaces the Entry instead of mutating it,
so a reader never sees a half-written value.
*/
type Entry struct {
	Key   string
	Value any

	// WrittenAt is set once, when the entry is created by a put.
	WrittenAt time.Time

	// LastAccessedAt starts equal to WrittenAt and slides forward on reads
	// when an access based expiration strategy is active.
	LastAccessedAt time.Time
}

// NewEntry creates an entry written and accessed at now.
func NewEntry(key string, value any, now time.Time) *Entry {
	return &Entry{
		Key:            key,
		Value:          value,
		WrittenAt:      now,
		LastAccessedAt: now,
	}
}
