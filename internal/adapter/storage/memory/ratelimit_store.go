package memory

import (
	"context"
	"sync"
	"time"

	"private-tips/internal/core/domain"
)

type window struct {
	id      int64
	count   int64
	resetAt int64 // unix seconds
}

// RateLimitStore implements ports.RateLimiter with fixed windows per key.
// Only the current window of each key is kept, and keys whose window has
// closed are pruned during Allow.
type RateLimitStore struct {
	mu        sync.Mutex
	windows   map[string]window
	now       func() time.Time
	nextSweep time.Time
}

// NewRateLimitStore creates an empty rate limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{windows: make(map[string]window), now: time.Now}
}

func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, win time.Duration) (*domain.RateLimitResult, error) {
	seconds := int64(win / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	now := s.now()
	id := now.Unix() / seconds

	s.mu.Lock()
	s.sweep(now)
	w := s.windows[key]
	if w.id != id {
		w = window{id: id, resetAt: (id + 1) * seconds}
	}
	w.count++
	s.windows[key] = w
	s.mu.Unlock()

	remaining := limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return &domain.RateLimitResult{
		Allowed:   w.count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   w.resetAt,
	}, nil
}

// sweep drops closed windows. Callers hold s.mu.
func (s *RateLimitStore) sweep(now time.Time) {
	if now.Before(s.nextSweep) {
		return
	}
	s.nextSweep = now.Add(sweepInterval)
	unix := now.Unix()
	for key, w := range s.windows {
		if w.resetAt <= unix {
			delete(s.windows, key)
		}
	}
}

// Len reports the number of tracked keys.
func (s *RateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
