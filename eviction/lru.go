// This file implements LRU eviction.

package eviction

import "container/list"

// lru keeps keys in a doubly-linked list ordered by use.
// Front = most recently used, Back = least recently used.
type lru struct {
	order *list.List

	// nodes maps keys to their list element so moves are O(1).
	nodes map[string]*list.Element
}

func newLRU() *lru {
	return &lru{
		order: list.New(),
		nodes: make(map[string]*list.Element),
	}
}

// OnGet marks the key as the most recently used one.
func (l *lru) OnGet(k string) {
	if el, ok := l.nodes[k]; ok {
		l.order.MoveToFront(el)
	}
}

// OnPut tracks a new key at the front. Overwriting counts as use.
func (l *lru) OnPut(k string) {
	if el, ok := l.nodes[k]; ok {
		l.order.MoveToFront(el)
		return
	}
	l.nodes[k] = l.order.PushFront(k)
}

// Evict removes the least recently used key. That key is always at the back of the list.
func (l *lru) Evict() (string, bool) {
	el := l.order.Back()
	if el == nil {
		return "", false
	}
	k := l.order.Remove(el).(string)
	delete(l.nodes, k)
	return k, true
}

func (l *lru) Remove(k string) {
	if el, ok := l.nodes[k]; ok {
		l.order.Remove(el)
		delete(l.nodes, k)
	}
}

func (l *lru) Len() int { return l.order.Len() }
