// This file implements LFU eviction.

package eviction

import "container/list"

// lfuNode represents one key tracked by LFU.
type lfuNode struct {
	key  string
	freq int
	el   *list.Element // position inside buckets[freq]
}

type lfu struct {
	nodes map[string]*lfuNode

	// buckets groups keys by access count. Inside a bucket the front is the
	// newest arrival, so the back is the eviction candidate on a tie.
	buckets map[int]*list.List

	// minFreq is the smallest frequency currently present. It may be stale
	// after Remove; Evict repairs it.
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		nodes:   make(map[string]*lfuNode),
		buckets: make(map[int]*list.List),
	}
}

func (l *lfu) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.bump(n)
	}
}

// OnPut starts new keys at frequency 1. Overwrites count as an access.
func (l *lfu) OnPut(k string) {
	if n, ok := l.nodes[k]; ok {
		l.bump(n)
		return
	}
	n := &lfuNode{key: k, freq: 1}
	n.el = l.bucket(1).PushFront(n)
	l.nodes[k] = n
	l.minFreq = 1
}

func (l *lfu) Evict() (string, bool) {
	if len(l.nodes) == 0 {
		return "", false
	}
	b, ok := l.buckets[l.minFreq]
	if !ok {
		l.repairMin()
		b = l.buckets[l.minFreq]
	}
	n := b.Remove(b.Back()).(*lfuNode)
	l.dropIfEmpty(n.freq)
	delete(l.nodes, n.key)
	return n.key, true
}

func (l *lfu) Remove(k string) {
	n, ok := l.nodes[k]
	if !ok {
		return
	}
	l.buckets[n.freq].Remove(n.el)
	l.dropIfEmpty(n.freq)
	delete(l.nodes, k)
}

func (l *lfu) Len() int { return len(l.nodes) }

func (l *lfu) bump(n *lfuNode) {
	old := n.freq
	l.buckets[old].Remove(n.el)
	l.dropIfEmpty(old)
	if l.minFreq == old && l.buckets[old] == nil {
		l.minFreq = old + 1
	}
	n.freq++
	n.el = l.bucket(n.freq).PushFront(n)
}

func (l *lfu) bucket(freq int) *list.List {
	b, ok := l.buckets[freq]
	if !ok {
		b = list.New()
		l.buckets[freq] = b
	}
	return b
}

func (l *lfu) dropIfEmpty(freq int) {
	if b, ok := l.buckets[freq]; ok && b.Len() == 0 {
		delete(l.buckets, freq)
	}
}

func (l *lfu) repairMin() {
	first := true
	for f := range l.buckets {
		if first || f < l.minFreq {
			l.minFreq = f
			first = false
		}
	}
}
