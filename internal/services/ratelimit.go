package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memberorg/internal/domain"
)

type rateLimiter struct {
	repo        domain.RateLimitRepository
	window      time.Duration
	maxAttempts int
	now         func() time.Time
}

// NewRateLimiter returns a RateLimiter over a counter row per key with a
// rolling window. The check is read-then-write without locking: two
// concurrent requests from the same identity can both pass before either
// commits. That race is accepted; the limiter is an abuse deterrent, not a
// hard guarantee.
func NewRateLimiter(repo domain.RateLimitRepository, window time.Duration, maxAttempts int) domain.RateLimiter {
	return &rateLimiter{
		repo:        repo,
		window:      window,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func (l *rateLimiter) CheckAndRecord(ctx context.Context, key string) error {
	now := l.now()

	counter, err := l.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get rate limit counter: %w", err)
		}
		counter = nil
	}

	if counter != nil && now.Sub(counter.LastAttempt) < l.window {
		if counter.Count >= l.maxAttempts {
			return domain.ErrRateLimited
		}
		counter.Count++
		counter.LastAttempt = now
	} else {
		// Window elapsed or first attempt: reset.
		counter = &domain.RateLimitCounter{Key: key, Count: 1, LastAttempt: now}
	}

	if err := l.repo.Upsert(ctx, counter); err != nil {
		return fmt.Errorf("record rate limit attempt: %w", err)
	}
	return nil
}
