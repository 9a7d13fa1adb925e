package postgres

import (
	"context"
	"database/sql"

	"memberorg/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a domain.RegistrationRepository implemented with Postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

const registrationColumns = `id, event_type, agency, contact_name, email, phone, address, city, state, zip, total_attendees, total_amount, settings_id, created_at`

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (event_type, agency, contact_name, email, phone, address, city, state, zip, total_attendees, total_amount, settings_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.EventType, reg.Agency, reg.ContactName, reg.Email, reg.Phone,
		reg.Address, reg.City, reg.State, reg.Zip,
		reg.TotalAttendees, reg.TotalAmount, reg.SettingsID, reg.CreatedAt,
	).Scan(&reg.ID)
}

func scanRegistration(s interface{ Scan(...any) error }) (*domain.Registration, error) {
	reg := &domain.Registration{}
	err := s.Scan(&reg.ID, &reg.EventType, &reg.Agency, &reg.ContactName, &reg.Email,
		&reg.Phone, &reg.Address, &reg.City, &reg.State, &reg.Zip,
		&reg.TotalAttendees, &reg.TotalAmount, &reg.SettingsID, &reg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_type = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) ListPage(ctx context.Context, eventType domain.EventType, p domain.PaginationParams) ([]*domain.Registration, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_type = $1`, eventType,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_type = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventType, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regs := []*domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *registrationRepository) CountByEmailAndSettings(ctx context.Context, eventType domain.EventType, email, settingsID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_type = $1 AND email = $2 AND settings_id = $3`,
		eventType, email, settingsID,
	).Scan(&count)
	return count, err
}

func (r *registrationRepository) DeleteByEventType(ctx context.Context, eventType domain.EventType) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM registrations WHERE event_type = $1`, eventType)
	return err
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
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

type attendeeRepository struct {
	DB *sql.DB
}

// NewAttendeeRepository returns a domain.AttendeeRepository implemented with Postgres.
func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

func (r *attendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	query := `
		INSERT INTO attendees (registration_id, first_name, last_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.RegistrationID, a.FirstName, a.LastName, a.Email, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *attendeeRepository) ListByRegistrationID(ctx context.Context, registrationID string) ([]*domain.Attendee, error) {
	query := `
		SELECT id, registration_id, first_name, last_name, email, created_at
		FROM attendees
		WHERE registration_id = $1
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, registrationID)
}

func (r *attendeeRepository) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.Attendee, error) {
	query := `
		SELECT a.id, a.registration_id, a.first_name, a.last_name, a.email, a.created_at
		FROM attendees a
		JOIN registrations r ON r.id = a.registration_id
		WHERE r.event_type = $1
		ORDER BY a.created_at ASC
	`
	return r.list(ctx, query, eventType)
}

func (r *attendeeRepository) list(ctx context.Context, query string, arg any) ([]*domain.Attendee, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []*domain.Attendee{}
	for rows.Next() {
		a := &domain.Attendee{}
		if err := rows.Scan(&a.ID, &a.RegistrationID, &a.FirstName, &a.LastName, &a.Email, &a.CreatedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendees, nil
}

// DeleteByEventType removes every attendee whose registration belongs to the
// event type. Attendees are cleared before registrations to respect the
// foreign-key direction.
func (r *attendeeRepository) DeleteByEventType(ctx context.Context, eventType domain.EventType) error {
	query := `
		DELETE FROM attendees
		WHERE registration_id IN (SELECT id FROM registrations WHERE event_type = $1)
	`
	_, err := r.DB.ExecContext(ctx, query, eventType)
	return err
}
