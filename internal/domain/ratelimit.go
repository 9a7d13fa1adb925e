package domain

import (
	"context"
	"time"
)

// RateLimitCounter tracks submission attempts for one key within a rolling
// window. Key format: "{form}:{identity}".
type RateLimitCounter struct {
	Key         string    `json:"key"`
	Count       int       `json:"count"`
	LastAttempt time.Time `json:"last_attempt"`
}

// RateLimitRepository defines storage operations for rate-limit counters.
type RateLimitRepository interface {
	Get(ctx context.Context, key string) (*RateLimitCounter, error)
	Upsert(ctx context.Context, c *RateLimitCounter) error
}

// RateLimiter throttles submissions per identity. The check is advisory:
// it reads then writes the counter without locking, so two concurrent
// requests can both pass before either commits. Acceptable for abuse
// deterrence, not a hard guarantee.
type RateLimiter interface {
	CheckAndRecord(ctx context.Context, key string) error
}
