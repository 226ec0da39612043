package db

import "time"

// RedisClient defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Incr(key string) (int64, error)
	PExpire(key string, ttl time.Duration) error
	PTTL(key string) (time.Duration, error)
	Del(key string) error
	Ping() error
}
