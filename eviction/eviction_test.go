package eviction

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustPolicy(t *testing.T, pt PolicyType) Policy {
	t.Helper()
	p, err := NewEvictionPolicy(pt)
	require.NoError(t, err)
	return p
}

func drain(p Policy) []string {
	var out []string
	for {
		k, ok := p.Evict()
		if !ok {
			return out
		}
		out = append(out, k)
	}
}

func TestNewEvictionPolicyUnknown(t *testing.T) {
	_, err := NewEvictionPolicy("MRU")
	require.ErrorContains(t, err, "MRU")
}

func TestEvictEmpty(t *testing.T) {
	for _, pt := range []PolicyType{LRU, LFU, FIFO} {
		p := mustPolicy(t, pt)
		_, ok := p.Evict()
		require.False(t, ok, pt)
		require.Zero(t, p.Len(), pt)
	}
}

func TestLRUOrder(t *testing.T) {
	p := mustPolicy(t, LRU)
	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")

	p.OnGet("a")     // a becomes most recent
	p.OnPut("b")     // overwrite counts as use
	p.OnGet("ghost") // unknown keys are ignored

	require.Equal(t, 3, p.Len())
	require.Equal(t, []string{"c", "a", "b"}, drain(p))
}

func TestFIFOOrder(t *testing.T) {
	p := mustPolicy(t, FIFO)
	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")

	p.OnGet("a")
	p.OnPut("a") // overwrite keeps the original slot

	require.Equal(t, []string{"a", "b", "c"}, drain(p))
}

func TestLFUOrder(t *testing.T) {
	p := mustPolicy(t, LFU)
	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")

	p.OnGet("a")
	p.OnGet("a")
	p.OnGet("b")

	require.Equal(t, []string{"c", "b", "a"}, drain(p))
}

func TestLFUTieBreaksByAge(t *testing.T) {
	p := mustPolicy(t, LFU)
	p.OnPut("old")
	p.OnPut("new")

	k, ok := p.Evict()
	require.True(t, ok)
	require.Equal(t, "old", k)
}

func TestLFURemoveRepairsMinimum(t *testing.T) {
	p := mustPolicy(t, LFU)
	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("b")

	p.Remove("a") // the only frequency-1 key goes away

	k, ok := p.Evict()
	require.True(t, ok)
	require.Equal(t, "b", k)
}

func TestRemove(t *testing.T) {
	for _, pt := range []PolicyType{LRU, LFU, FIFO} {
		p := mustPolicy(t, pt)
		p.OnPut("a")
		p.OnPut("b")
		p.OnPut("c")

		p.Remove("b")
		p.Remove("missing")

		require.Equal(t, 2, p.Len(), pt)
		require.ElementsMatch(t, []string{"a", "c"}, drain(p), pt)
	}
}
