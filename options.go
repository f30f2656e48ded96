package cache

import (
	"fmt"
	"time"

	"github.com/krisalay/ttl-cache/expiration"
)

const (
	// DefaultMaximumSize is the entry bound of DefaultOptions.
	DefaultMaximumSize = 1000

	// DefaultTTL is the after-write and after-access TTL of DefaultOptions.
	DefaultTTL = 5000 * time.Millisecond
)

/*
Options describes which eviction policies a cache applies and their parameters.

Options is a plain value: copy it, change fields, pass it to New. The cache
keeps its own copy, so changing an Options after construction has no effect.
Two Options are equal (==) when every field matches.

The three policies are independent and any subset may be enabled. With none
enabled the cache is unbounded and entries never expire. Nothing is
validated: a zero or negative TTL expires entries immediately, and a zero
MaximumSize with the bound enabled stores nothing.
*/
type Options struct {
	// MaximumSizeEnabled caps the number of entries at MaximumSize.
	MaximumSizeEnabled bool
	MaximumSize        uint64

	// TTLAfterWriteEnabled expires entries TTLAfterWrite after their last put.
	TTLAfterWriteEnabled bool
	TTLAfterWrite        time.Duration

	// TTLAfterAccessEnabled expires entries TTLAfterAccess after their last
	// successful get or put.
	TTLAfterAccessEnabled bool
	TTLAfterAccess        time.Duration
}

// DefaultOptions returns a size bound of 1000 entries with a 5s after-write
// TTL. After-access TTL is off but preset to 5s.
func DefaultOptions() Options {
	return Options{
		MaximumSizeEnabled:    true,
		MaximumSize:           DefaultMaximumSize,
		TTLAfterWriteEnabled:  true,
		TTLAfterWrite:         DefaultTTL,
		TTLAfterAccessEnabled: false,
		TTLAfterAccess:        DefaultTTL,
	}
}

func (o Options) String() string {
	return fmt.Sprintf(
		"Options{maximumSizeEnabled=%t maximumSize=%d ttlAfterWriteEnabled=%t ttlAfterWrite=%s ttlAfterAccessEnabled=%t ttlAfterAccess=%s}",
		o.MaximumSizeEnabled, o.MaximumSize,
		o.TTLAfterWriteEnabled, o.TTLAfterWrite,
		o.TTLAfterAccessEnabled, o.TTLAfterAccess,
	)
}

// expiration builds the TTL strategy the options ask for, nil when no TTL is enabled.
func (o Options) expiration() expiration.Strategy {
	var strategies []expiration.Strategy
	if o.TTLAfterWriteEnabled {
		strategies = append(strategies, &expiration.ExpireAfterWrite{TTL: o.TTLAfterWrite})
	}
	if o.TTLAfterAccessEnabled {
		strategies = append(strategies, &expiration.ExpireAfterAccess{TTL: o.TTLAfterAccess})
	}
	return expiration.Combine(strategies...)
}
