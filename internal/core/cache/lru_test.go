package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_MarkSeen(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(10)

	seen, err := c.MarkSeen(ctx, "a")
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = c.MarkSeen(ctx, "a")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(2)

	_, _ = c.MarkSeen(ctx, "a")
	_, _ = c.MarkSeen(ctx, "b")
	_, _ = c.MarkSeen(ctx, "a") // a is now most recent
	_, _ = c.MarkSeen(ctx, "c") // evicts b

	assert.Equal(t, 2, c.Len())

	seen, _ := c.MarkSeen(ctx, "a")
	assert.True(t, seen)

	seen, _ = c.MarkSeen(ctx, "b")
	assert.False(t, seen, "b should have been evicted")
}

func TestLRU_Forget(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(4)

	_, _ = c.MarkSeen(ctx, "a")
	require.NoError(t, c.Forget(ctx, "a"))
	require.NoError(t, c.Forget(ctx, "missing"))

	seen, _ := c.MarkSeen(ctx, "a")
	assert.False(t, seen)
}

func TestLRU_ConcurrentFirstSighting(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(100)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		misses = map[string]int{}
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("brew-%d", i%5)
			seen, err := c.MarkSeen(ctx, id)
			assert.NoError(t, err)
			if !seen {
				mu.Lock()
				misses[id]++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, misses, 5)
	for id, n := range misses {
		assert.Equal(t, 1, n, id)
	}
}
