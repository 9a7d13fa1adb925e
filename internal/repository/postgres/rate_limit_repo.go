package postgres

import (
	"context"
	"database/sql"
	"errors"

	"memberorg/internal/domain"
)

type rateLimitRepository struct {
	DB *sql.DB
}

// NewRateLimitRepository returns a domain.RateLimitRepository implemented with Postgres.
func NewRateLimitRepository(db *sql.DB) domain.RateLimitRepository {
	return &rateLimitRepository{DB: db}
}

func (r *rateLimitRepository) Get(ctx context.Context, key string) (*domain.RateLimitCounter, error) {
	query := `
		SELECT key, count, last_attempt
		FROM rate_limits
		WHERE key = $1
	`
	c := &domain.RateLimitCounter{}
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&c.Key, &c.Count, &c.LastAttempt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *rateLimitRepository) Upsert(ctx context.Context, c *domain.RateLimitCounter) error {
	query := `
		INSERT INTO rate_limits (key, count, last_attempt)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET count = EXCLUDED.count, last_attempt = EXCLUDED.last_attempt
	`
	_, err := r.DB.ExecContext(ctx, query, c.Key, c.Count, c.LastAttempt)
	return err
}
