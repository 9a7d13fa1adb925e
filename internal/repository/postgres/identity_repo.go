package postgres

import (
	"context"
	"database/sql"
	"time"

	"memberorg/internal/domain"
)

type identityRepository struct {
	DB *sql.DB
}

// NewIdentityRepository returns a domain.IdentityService backed by the
// auth_identities table. Kept separate from users so user-row deletion and
// identity deletion remain distinct steps with distinct failure modes.
func NewIdentityRepository(db *sql.DB) domain.IdentityService {
	return &identityRepository{DB: db}
}

func (r *identityRepository) CreateIdentity(ctx context.Context, userID, email string) error {
	query := `
		INSERT INTO auth_identities (user_id, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET email = EXCLUDED.email
	`
	_, err := r.DB.ExecContext(ctx, query, userID, email, time.Now())
	return err
}

func (r *identityRepository) DeleteIdentity(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM auth_identities WHERE user_id = $1`, userID)
	return err
}
