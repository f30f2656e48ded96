// This file implements FIFO eviction.

package eviction

import "container/list"

type fifo struct {
	// queue keeps keys in the order they were first inserted.
	// The front of the queue is the oldest key.
	queue *list.List

	// nodes lets Remove unlink a key without scanning the queue.
	nodes map[string]*list.Element
}

func newFIFO() *fifo {
	return &fifo{
		queue: list.New(),
		nodes: make(map[string]*list.Element),
	}
}

// OnGet is a no-op. FIFO ignores reads completely.
func (f *fifo) OnGet(string) {}

// OnPut enqueues new keys. An overwrite keeps the key's original position:
// FIFO only cares about the first insertion.
func (f *fifo) OnPut(k string) {
	if _, ok := f.nodes[k]; ok {
		return
	}
	f.nodes[k] = f.queue.PushBack(k)
}

// Evict returns the oldest inserted key.
func (f *fifo) Evict() (string, bool) {
	el := f.queue.Front()
	if el == nil {
		return "", false
	}
	k := f.queue.Remove(el).(string)
	delete(f.nodes, k)
	return k, true
}

func (f *fifo) Remove(k string) {
	if el, ok := f.nodes[k]; ok {
		f.queue.Remove(el)
		delete(f.nodes, k)
	}
}

func (f *fifo) Len() int { return f.queue.Len() }
