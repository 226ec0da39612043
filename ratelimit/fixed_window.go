package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// FixedWindowStore keeps the per-key counters in process memory. Expired
// entries are dropped by a sweep that runs at most once per window, so the
// map stays bounded under sustained unique-IP traffic.
type FixedWindowStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	window  time.Duration
	max     int
	sweepAt time.Time
}

// NewFixedWindowStore creates a store allowing max requests per window.
func NewFixedWindowStore(window time.Duration, max int) *FixedWindowStore {
	return &FixedWindowStore{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
	}
}

// Allow reports whether the key is under its window budget, counting the
// request when it is. A denied request does not extend the window.
func (s *FixedWindowStore) Allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	e, ok := s.entries[key]
	if !ok || !e.resetAt.After(now) {
		s.entries[key] = &entry{count: 1, resetAt: now.Add(s.window)}
		return true
	}
	if e.count >= s.max {
		return false
	}
	e.count++
	return true
}

// Len returns the number of tracked keys.
func (s *FixedWindowStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweep drops expired entries, at most once per window.
func (s *FixedWindowStore) sweep(now time.Time) {
	if now.Before(s.sweepAt) {
		return
	}
	for key, e := range s.entries {
		if !e.resetAt.After(now) {
			delete(s.entries, key)
		}
	}
	s.sweepAt = now.Add(s.window)
}
