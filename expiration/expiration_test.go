package expiration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/krisalay/ttl-cache/types"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestExpireAfterWrite(t *testing.T) {
	s := &ExpireAfterWrite{TTL: 100 * time.Millisecond}
	ent := types.NewEntry("k", "v", t0)

	require.False(t, s.IsExpired(ent, t0.Add(99*time.Millisecond)))
	require.True(t, s.IsExpired(ent, t0.Add(100*time.Millisecond)))

	s.OnAccess(ent, t0.Add(90*time.Millisecond))
	require.True(t, s.IsExpired(ent, t0.Add(100*time.Millisecond)), "reads do not extend the deadline")

	s.OnWrite(ent, t0.Add(90*time.Millisecond))
	require.False(t, s.IsExpired(ent, t0.Add(150*time.Millisecond)))
}

func TestExpireAfterAccess(t *testing.T) {
	s := &ExpireAfterAccess{TTL: 100 * time.Millisecond}
	ent := types.NewEntry("k", "v", t0)

	require.True(t, s.IsExpired(ent, t0.Add(100*time.Millisecond)))

	s.OnAccess(ent, t0.Add(80*time.Millisecond))
	require.Equal(t, t0.Add(80*time.Millisecond), ent.LastAccessedAt)
	require.Equal(t, t0, ent.WrittenAt)
	require.False(t, s.IsExpired(ent, t0.Add(179*time.Millisecond)))
	require.True(t, s.IsExpired(ent, t0.Add(180*time.Millisecond)))
}

func TestNonPositiveTTLExpiresImmediately(t *testing.T) {
	ent := types.NewEntry("k", "v", t0)
	for _, s := range []Strategy{
		&ExpireAfterWrite{},
		&ExpireAfterAccess{},
		&ExpireAfterWrite{TTL: -time.Second},
	} {
		require.True(t, s.IsExpired(ent, t0))
	}
}

func TestComposite(t *testing.T) {
	s := Combine(
		&ExpireAfterWrite{TTL: 300 * time.Millisecond},
		&ExpireAfterAccess{TTL: 100 * time.Millisecond},
	)
	ent := types.NewEntry("k", "v", t0)

	require.True(t, s.IsExpired(ent, t0.Add(100*time.Millisecond)), "idle deadline fires first")

	s.OnAccess(ent, t0.Add(250*time.Millisecond))
	require.False(t, s.IsExpired(ent, t0.Add(299*time.Millisecond)))
	require.True(t, s.IsExpired(ent, t0.Add(300*time.Millisecond)), "write deadline fires first")

	s.OnWrite(ent, t0.Add(300*time.Millisecond))
	require.False(t, s.IsExpired(ent, t0.Add(350*time.Millisecond)))
}

func TestCombine(t *testing.T) {
	require.Nil(t, Combine())

	w := &ExpireAfterWrite{TTL: time.Second}
	require.Same(t, w, Combine(w))

	require.IsType(t, Composite{}, Combine(w, &ExpireAfterAccess{}))
}
