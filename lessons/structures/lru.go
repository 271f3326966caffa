package structures

import "container/list"

type lruEntry[K comparable, V any] struct {
	key K
	val V
}

// LRU is a fixed-capacity cache that evicts the least recently used
// entry. A map gives O(1) lookup; a container/list doubly linked list
// keeps recency order with O(1) moves, so Get and Put are both O(1).
type LRU[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently used
	items    map[K]*list.Element
}

// NewLRU builds a cache holding at most capacity entries. Capacities
// below one are raised to one.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the cached value and marks the entry most recently used.
func (c *LRU[K, V]) Get(k K) (V, bool) {
	if el, ok := c.items[k]; ok {
		c.order.MoveToFront(el)
		return el.Value.(lruEntry[K, V]).val, true
	}
	var zero V
	return zero, false
}

// Put stores v under k, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Put(k K, v V) {
	if el, ok := c.items[k]; ok {
		el.Value = lruEntry[K, V]{key: k, val: v}
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(lruEntry[K, V]).key)
	}
	c.items[k] = c.order.PushFront(lruEntry[K, V]{key: k, val: v})
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int { return c.order.Len() }

// Keys returns the cached keys, most recently used first.
func (c *LRU[K, V]) Keys() []K {
	out := make([]K, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(lruEntry[K, V]).key)
	}
	return out
}
