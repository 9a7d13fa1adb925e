package postgres

import (
	"context"
	"database/sql"
	"errors"

	"memberorg/internal/domain"
)

type settingsRepository struct {
	DB *sql.DB
}

// NewSettingsRepository returns a domain.SettingsRepository implemented with Postgres.
func NewSettingsRepository(db *sql.DB) domain.SettingsRepository {
	return &settingsRepository{DB: db}
}

const settingsColumns = `id, event_type, name, start_date, end_date, registration_deadline, fee, is_active, created_at`

func (r *settingsRepository) Create(ctx context.Context, s *domain.SettingsPeriod) error {
	query := `
		INSERT INTO settings (event_type, name, start_date, end_date, registration_deadline, fee, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.EventType, s.Name, s.StartDate, s.EndDate, s.RegistrationDeadline,
		s.Fee, s.IsActive, s.CreatedAt,
	).Scan(&s.ID)
}

func (r *settingsRepository) GetActive(ctx context.Context, eventType domain.EventType) (*domain.SettingsPeriod, error) {
	query := `
		SELECT ` + settingsColumns + `
		FROM settings
		WHERE event_type = $1 AND is_active = TRUE
	`
	s := &domain.SettingsPeriod{}
	err := r.DB.QueryRowContext(ctx, query, eventType).Scan(
		&s.ID, &s.EventType, &s.Name, &s.StartDate, &s.EndDate,
		&s.RegistrationDeadline, &s.Fee, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.SettingsPeriod, error) {
	query := `
		SELECT ` + settingsColumns + `
		FROM settings
		WHERE event_type = $1
		ORDER BY start_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods := []*domain.SettingsPeriod{}
	for rows.Next() {
		s := &domain.SettingsPeriod{}
		if err := rows.Scan(&s.ID, &s.EventType, &s.Name, &s.StartDate, &s.EndDate,
			&s.RegistrationDeadline, &s.Fee, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		periods = append(periods, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *settingsRepository) DeactivateAll(ctx context.Context, eventType domain.EventType) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE settings SET is_active = FALSE WHERE event_type = $1 AND is_active = TRUE`,
		eventType,
	)
	return err
}

func (r *settingsRepository) Update(ctx context.Context, s *domain.SettingsPeriod) error {
	query := `
		UPDATE settings
		SET name = $1, start_date = $2, end_date = $3, registration_deadline = $4, fee = $5, is_active = $6
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query,
		s.Name, s.StartDate, s.EndDate, s.RegistrationDeadline, s.Fee, s.IsActive, s.ID,
	)
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

func (r *settingsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM settings WHERE id = $1`, id)
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
