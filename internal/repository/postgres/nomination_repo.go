package postgres

import (
	"context"
	"database/sql"

	"memberorg/internal/domain"
)

type nominationRepository struct {
	DB *sql.DB
}

// NewNominationRepository returns a domain.NominationRepository implemented with Postgres.
func NewNominationRepository(db *sql.DB) domain.NominationRepository {
	return &nominationRepository{DB: db}
}

const nominationColumns = `id, nominee_name, district, years_of_service, reason, nominator_name, nominator_email, nominator_phone, status, created_at`

func (r *nominationRepository) Create(ctx context.Context, n *domain.Nomination) error {
	query := `
		INSERT INTO nominations (nominee_name, district, years_of_service, reason, nominator_name, nominator_email, nominator_phone, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		n.NomineeName, n.District, n.YearsOfService, n.Reason,
		n.NominatorName, n.NominatorEmail, n.NominatorPhone, n.Status, n.CreatedAt,
	).Scan(&n.ID)
}

func (r *nominationRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Nomination, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM nominations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + nominationColumns + `
		FROM nominations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	noms, err := scanNominations(rows)
	if err != nil {
		return nil, 0, err
	}
	return noms, total, nil
}

func (r *nominationRepository) ListAll(ctx context.Context) ([]*domain.Nomination, error) {
	query := `
		SELECT ` + nominationColumns + `
		FROM nominations
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNominations(rows)
}

func scanNominations(rows *sql.Rows) ([]*domain.Nomination, error) {
	noms := []*domain.Nomination{}
	for rows.Next() {
		n := &domain.Nomination{}
		if err := rows.Scan(&n.ID, &n.NomineeName, &n.District, &n.YearsOfService, &n.Reason,
			&n.NominatorName, &n.NominatorEmail, &n.NominatorPhone, &n.Status, &n.CreatedAt); err != nil {
			return nil, err
		}
		noms = append(noms, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return noms, nil
}

// CountByNomineeAndDistrict backs the duplicate guard. Comparison is
// case-insensitive; every live nomination counts regardless of status.
func (r *nominationRepository) CountByNomineeAndDistrict(ctx context.Context, nomineeName, district string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM nominations WHERE LOWER(nominee_name) = LOWER($1) AND LOWER(district) = LOWER($2)`,
		nomineeName, district,
	).Scan(&count)
	return count, err
}

func (r *nominationRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE nominations SET status = $1 WHERE id = $2`, status, id)
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

func (r *nominationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM nominations`)
	return err
}
