package postgres

import (
	"context"
	"database/sql"

	"memberorg/internal/domain"
)

type auditRepository struct {
	DB *sql.DB
}

// NewAuditRepository returns a domain.AuditRepository implemented with Postgres.
func NewAuditRepository(db *sql.DB) domain.AuditRepository {
	return &auditRepository{DB: db}
}

func (r *auditRepository) Create(ctx context.Context, e *domain.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (action, actor_id, outcome, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Action, e.ActorID, e.Outcome, e.Details, e.CreatedAt,
	).Scan(&e.ID)
}
