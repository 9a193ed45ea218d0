package cache

import (
	"container/list"
	"context"
	"sync"
)

// LRU is a thread-safe in-process SeenCache with bounded capacity.
type LRU struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List
}

var _ SeenCache = (*LRU)(nil)

// NewLRU creates an LRU holding at most capacity brew IDs.
func NewLRU(capacity int) *LRU {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// MarkSeen adds brewID, evicting the least recently used entry if full.
func (c *LRU) MarkSeen(_ context.Context, brewID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.entries[brewID]; exists {
		c.order.MoveToFront(elem)
		return true, nil
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.entries, oldest.Value.(string))
			c.order.Remove(oldest)
		}
	}

	c.entries[brewID] = c.order.PushFront(brewID)
	return false, nil
}

// Forget removes brewID so the next MarkSeen reports a miss.
func (c *LRU) Forget(_ context.Context, brewID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.entries[brewID]; exists {
		delete(c.entries, brewID)
		c.order.Remove(elem)
	}
	return nil
}

// Len returns the number of cached IDs.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
