// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/krisalay/ttl-cache/types"
)

/*
Strategy is the interface that all expiration rules must follow. Instead of hard-coding
expiration logic into the cache, we define a strategy so rules can be combined freely.

Deadlines are inclusive: an entry whose deadline equals now is already expired.
*/
type Strategy interface {

	// IsExpired checks if the entry is expired at now.
	IsExpired(*types.Entry, time.Time) bool

	// OnAccess is called whenever a cache entry is read successfully.
	OnAccess(*types.Entry, time.Time)

	// OnWrite is called whenever a cache entry is written or replaced.
	OnWrite(*types.Entry, time.Time)
}

// reached reports whether now is at or past from+ttl.
func reached(from time.Time, ttl time.Duration, now time.Time) bool {
	return !now.Before(from.Add(ttl))
}

/*
Composite applies several strategies to the same entry. The entry expires as
soon as ANY of them says so, which is how the write and access TTLs compose:
whichever deadline comes first wins.
*/
type Composite []Strategy

func (c Composite) IsExpired(ent *types.Entry, now time.Time) bool {
	for _, s := range c {
		if s.IsExpired(ent, now) {
			return true
		}
	}
	return false
}

func (c Composite) OnAccess(ent *types.Entry, now time.Time) {
	for _, s := range c {
		s.OnAccess(ent, now)
	}
}

func (c Composite) OnWrite(ent *types.Entry, now time.Time) {
	for _, s := range c {
		s.OnWrite(ent, now)
	}
}

// Combine returns nil for no strategies, the strategy itself for one, and a
// Composite otherwise. A nil Strategy means entries never expire.
func Combine(strategies ...Strategy) Strategy {
	switch len(strategies) {
	case 0:
		return nil
	case 1:
		return strategies[0]
	default:
		return Composite(strategies)
	}
}
