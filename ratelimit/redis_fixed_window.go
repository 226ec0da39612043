package ratelimit

import (
	"fmt"
	"log"
	"time"

	"loft442-server/db"
)

const RATE_LIMIT_KEY_FORMAT = "rate_limit_v1:%s"

// RedisFixedWindowStore keeps the window counters in Redis so the limit
// holds across server replicas. It counts with INCR and stamps the window
// with PEXPIRE on the first hit. Redis failures fail open: a throttling
// outage must not block inquiry submissions.
type RedisFixedWindowStore struct {
	client db.RedisClient
	window time.Duration
	max    int
}

// NewRedisFixedWindowStore creates a store backed by the given client.
func NewRedisFixedWindowStore(client db.RedisClient, window time.Duration, max int) *RedisFixedWindowStore {
	return &RedisFixedWindowStore{
		client: client,
		window: window,
		max:    max,
	}
}

// Allow reports whether the key is under its window budget. Unlike the
// in-memory store, denied requests still advance the counter; the window
// boundary itself is fixed by the key's TTL, so the invariant of at most
// max allowed requests per window is preserved.
func (s *RedisFixedWindowStore) Allow(key string, now time.Time) bool {
	redisKey := fmt.Sprintf(RATE_LIMIT_KEY_FORMAT, key)

	count, err := s.client.Incr(redisKey)
	if err != nil {
		log.Printf("[RedisFixedWindowStore] incr failed for %s, allowing: %v", key, err)
		return true
	}
	if count == 1 {
		if err := s.client.PExpire(redisKey, s.window); err != nil {
			log.Printf("[RedisFixedWindowStore] pexpire failed for %s: %v", key, err)
		}
	}
	return count <= int64(s.max)
}
