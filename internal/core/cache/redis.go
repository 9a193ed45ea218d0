package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "brewlog:seen:"

// Redis is a SeenCache shared by every process pointing at the same server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ SeenCache = (*Redis)(nil)

// NewRedis wraps client. Entries expire after ttl; zero keeps them forever.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// MarkSeen uses SET NX so exactly one caller observes the first sighting.
func (r *Redis) MarkSeen(ctx context.Context, brewID string) (bool, error) {
	created, err := r.client.SetNX(ctx, redisKeyPrefix+brewID, 1, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark brew %s as seen: %w", brewID, err)
	}
	return !created, nil
}

// Forget deletes the brew's marker.
func (r *Redis) Forget(ctx context.Context, brewID string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+brewID).Err(); err != nil {
		return fmt.Errorf("failed to forget brew %s: %w", brewID, err)
	}
	return nil
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
