package agro

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-recipient limiters for outbound sends:
// user id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(recipient string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[recipient]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[recipient] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(recipient string, recipientRate rate.Limit, recipientBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[recipient] = rate.NewLimiter(recipientRate, recipientBurst)
}
