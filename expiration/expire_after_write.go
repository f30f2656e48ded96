package expiration

import (
	"time"

	"github.com/krisalay/ttl-cache/types"
)

/*
ExpireAfterWrite gives every entry a fixed lifetime measured from its most
recent put. Reads do not extend it.
*/
type ExpireAfterWrite struct {

	// TTL defines how long the entry stays valid after it was written.
	// Zero or negative values expire entries immediately.
	TTL time.Duration
}

func (e *ExpireAfterWrite) IsExpired(ent *types.Entry, now time.Time) bool {
	return reached(ent.WrittenAt, e.TTL, now)
}

// OnAccess is a no-op: reading never moves a write deadline.
func (e *ExpireAfterWrite) OnAccess(*types.Entry, time.Time) {}

func (e *ExpireAfterWrite) OnWrite(ent *types.Entry, now time.Time) {
	ent.WrittenAt = now
}
