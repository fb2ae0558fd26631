package ratelimiter

import (
	"sync"

	"golang.org/x/time/rate"
)

// SubmissionLimiter throttles entry submissions per patient with a token
// bucket per key. Limiters are created lazily and kept for the process
// lifetime; the keyspace is bounded by the patients a session touches.
type SubmissionLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewSubmissionLimiter allows perMinute submissions per key with the given
// burst.
func NewSubmissionLimiter(perMinute, burst int) *SubmissionLimiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	if burst <= 0 {
		burst = 1
	}
	return &SubmissionLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (l *SubmissionLimiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
