package expiration

import (
	"time"

	"github.com/krisalay/ttl-cache/types"
)

/*
ExpireAfterAccess implements a very common cache behavior called "expire after access" or "sliding TTL".
Every time someone reads the data, the expiration timer is pushed forward. As long as the data keeps
getting used, it stays alive. If nobody touches it for a while, it expires.

Writes count as access too.
*/
type ExpireAfterAccess struct {

	// TTL defines how long the entry stays valid after its last read or write.
	// Zero or negative values expire entries immediately.
	TTL time.Duration
}

// IsExpired checks whether the entry is expired at this moment.
func (e *ExpireAfterAccess) IsExpired(ent *types.Entry, now time.Time) bool {
	return reached(ent.LastAccessedAt, e.TTL, now)
}

// OnAccess slides the deadline forward by recording the read time.
func (e *ExpireAfterAccess) OnAccess(ent *types.Entry, now time.Time) {
	ent.LastAccessedAt = now
}

// OnWrite restarts the sliding window.
func (e *ExpireAfterAccess) OnWrite(ent *types.Entry, now time.Time) {
	ent.LastAccessedAt = now
}
