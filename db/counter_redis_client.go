package db

import (
	"context"

	"time"

	"github.com/go-redis/redis/v8"
)

// CounterRedisClient struct holds the Redis client and context
type CounterRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCounterRedisClient wraps an initialized Redis client
func NewCounterRedisClient(ctx context.Context, client *redis.Client) *CounterRedisClient {
	return &CounterRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *CounterRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *CounterRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Incr atomically increments the integer value stored at key.
func (r *CounterRedisClient) Incr(key string) (int64, error) {
	return r.client.Incr(r.ctx, key).Result()
}

// PExpire sets a millisecond-resolution TTL on a key.
func (r *CounterRedisClient) PExpire(key string, ttl time.Duration) error {
	return r.client.PExpire(r.ctx, key, ttl).Err()
}

// PTTL returns the remaining TTL of a key.
func (r *CounterRedisClient) PTTL(key string) (time.Duration, error) {
	return r.client.PTTL(r.ctx, key).Result()
}

// Del removes a key.
func (r *CounterRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Ping checks connectivity.
func (r *CounterRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
