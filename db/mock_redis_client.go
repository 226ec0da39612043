package db

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data    map[string]string    // Key-value store
	expires map[string]time.Time // Per-key expiration
	mu      sync.RWMutex         // Mutex for thread-safe operations
	now     func() time.Time
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

// SetNow overrides the clock so tests can move time forward.
func (m *MockRedisClient) SetNow(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// expired reports whether key has a TTL in the past. Callers hold the lock.
func (m *MockRedisClient) expired(key string) bool {
	deadline, ok := m.expires[key]
	return ok && !deadline.After(m.now())
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	delete(m.expires, key)
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists || m.expired(key) {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// Incr increments the counter stored at key, honoring expirations the same
// way Redis does: an expired key restarts from zero.
func (m *MockRedisClient) Incr(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		delete(m.data, key)
		delete(m.expires, key)
	}

	current := int64(0)
	if raw, exists := m.data[key]; exists {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %s is not an integer", key)
		}
		current = parsed
	}
	current++
	m.data[key] = strconv.FormatInt(current, 10)
	return current, nil
}

// PExpire sets a TTL on an existing key.
func (m *MockRedisClient) PExpire(key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; !exists {
		return nil
	}
	m.expires[key] = m.now().Add(ttl)
	return nil
}

// PTTL returns the remaining TTL for a key, mirroring Redis sentinel values
// (-2 for a missing key, -1 for a key without expiry).
func (m *MockRedisClient) PTTL(key string) (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, exists := m.data[key]; !exists || m.expired(key) {
		return -2 * time.Millisecond, nil
	}
	deadline, ok := m.expires[key]
	if !ok {
		return -1 * time.Millisecond, nil
	}
	return deadline.Sub(m.now()), nil
}

// Del removes a key.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expires, key)
	return nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	// Always return nil (indicating Redis is "reachable").
	return nil
}
