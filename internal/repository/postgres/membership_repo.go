package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"memberorg/internal/domain"
)

type membershipRepository struct {
	DB *sql.DB
}

// NewMembershipRepository returns a domain.MembershipRepository implemented with Postgres.
func NewMembershipRepository(db *sql.DB) domain.MembershipRepository {
	return &membershipRepository{DB: db}
}

func (r *membershipRepository) Create(ctx context.Context, m *domain.MembershipApplication) error {
	query := `
		INSERT INTO membership_applications (name, email, phone, organization, position, membership_type, interests, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Organization, m.Position,
		m.MembershipType, pq.Array(m.Interests), m.Status, m.CreatedAt,
	).Scan(&m.ID)
}

func (r *membershipRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.MembershipApplication, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM membership_applications`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, phone, organization, position, membership_type, interests, status, created_at
		FROM membership_applications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps := []*domain.MembershipApplication{}
	for rows.Next() {
		m := &domain.MembershipApplication{}
		var interests pq.StringArray
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Organization,
			&m.Position, &m.MembershipType, &interests, &m.Status, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		m.Interests = interests
		apps = append(apps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// CountPendingByEmail backs the duplicate guard for membership applications.
func (r *membershipRepository) CountPendingByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM membership_applications WHERE LOWER(email) = LOWER($1) AND status = $2`,
		email, domain.StatusPending,
	).Scan(&count)
	return count, err
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE membership_applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
