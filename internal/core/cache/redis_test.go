//go:build integration

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a Redis at BREWLOG_TEST_REDIS_ADDR (default 127.0.0.1:6379).
func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("BREWLOG_TEST_REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping: Redis not reachable on %s: %v", addr, err)
	}
	return NewRedis(client, time.Minute)
}

func TestRedis_MarkSeen(t *testing.T) {
	r := newTestRedis(t)
	ctx := context.Background()
	id := "redis-test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() { _ = r.Forget(ctx, id) })

	seen, err := r.MarkSeen(ctx, id)
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = r.MarkSeen(ctx, id)
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, r.Forget(ctx, id))
	seen, err = r.MarkSeen(ctx, id)
	require.NoError(t, err)
	assert.False(t, seen)
}
