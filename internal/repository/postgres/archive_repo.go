package postgres

import (
	"context"
	"database/sql"
	"time"

	"memberorg/internal/domain"
)

type archiveRepository struct {
	DB *sql.DB
}

// NewArchiveRepository returns a domain.ArchiveRepository implemented with Postgres.
func NewArchiveRepository(db *sql.DB) domain.ArchiveRepository {
	return &archiveRepository{DB: db}
}

// CountInYear counts archive rows whose archived_at falls inside the calendar
// year. The hall-of-fame type counts archived nominations; the conference
// types count archived registrations.
func (r *archiveRepository) CountInYear(ctx context.Context, eventType domain.EventType, year int) (int, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var count int
	var err error
	if eventType == domain.EventTypeHallOfFame {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM archived_nominations WHERE archived_at >= $1 AND archived_at < $2`,
			from, to,
		).Scan(&count)
	} else {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM archived_registrations WHERE event_type = $1 AND archived_at >= $2 AND archived_at < $3`,
			eventType, from, to,
		).Scan(&count)
	}
	return count, err
}

func (r *archiveRepository) CountInYearExcluding(ctx context.Context, eventType domain.EventType, year int, excludeArchiveID string) (int, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var count int
	var err error
	if eventType == domain.EventTypeHallOfFame {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM archived_nominations WHERE archived_at >= $1 AND archived_at < $2 AND archive_id <> $3`,
			from, to, excludeArchiveID,
		).Scan(&count)
	} else {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM archived_registrations WHERE event_type = $1 AND archived_at >= $2 AND archived_at < $3 AND archive_id <> $4`,
			eventType, from, to, excludeArchiveID,
		).Scan(&count)
	}
	return count, err
}

func (r *archiveRepository) CreateRegistration(ctx context.Context, a *domain.ArchivedRegistration) error {
	query := `
		INSERT INTO archived_registrations (original_id, archive_id, archived_at, event_type, agency, contact_name, email, phone, address, city, state, zip, total_attendees, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.OriginalID, a.ArchiveID, a.ArchivedAt, a.EventType, a.Agency,
		a.ContactName, a.Email, a.Phone, a.Address, a.City, a.State, a.Zip,
		a.TotalAttendees, a.TotalAmount, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *archiveRepository) CreateAttendee(ctx context.Context, a *domain.ArchivedAttendee) error {
	query := `
		INSERT INTO archived_attendees (original_id, archive_id, archived_at, original_registration_id, first_name, last_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.OriginalID, a.ArchiveID, a.ArchivedAt, a.OriginalRegistrationID,
		a.FirstName, a.LastName, a.Email, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *archiveRepository) CreateNomination(ctx context.Context, a *domain.ArchivedNomination) error {
	query := `
		INSERT INTO archived_nominations (original_id, archive_id, archived_at, nominee_name, district, years_of_service, reason, nominator_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		a.OriginalID, a.ArchiveID, a.ArchivedAt, a.NomineeName, a.District,
		a.YearsOfService, a.Reason, a.NominatorName, a.Status, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *archiveRepository) ListRegistrationsByArchiveID(ctx context.Context, archiveID string) ([]*domain.ArchivedRegistration, error) {
	query := `
		SELECT id, original_id, archive_id, archived_at, event_type, agency, contact_name, email, phone, address, city, state, zip, total_attendees, total_amount, created_at
		FROM archived_registrations
		WHERE archive_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, archiveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := []*domain.ArchivedRegistration{}
	for rows.Next() {
		a := &domain.ArchivedRegistration{}
		if err := rows.Scan(&a.ID, &a.OriginalID, &a.ArchiveID, &a.ArchivedAt, &a.EventType,
			&a.Agency, &a.ContactName, &a.Email, &a.Phone, &a.Address, &a.City, &a.State, &a.Zip,
			&a.TotalAttendees, &a.TotalAmount, &a.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *archiveRepository) ListAttendeesByArchiveID(ctx context.Context, archiveID string) ([]*domain.ArchivedAttendee, error) {
	query := `
		SELECT id, original_id, archive_id, archived_at, original_registration_id, first_name, last_name, email, created_at
		FROM archived_attendees
		WHERE archive_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, archiveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []*domain.ArchivedAttendee{}
	for rows.Next() {
		a := &domain.ArchivedAttendee{}
		if err := rows.Scan(&a.ID, &a.OriginalID, &a.ArchiveID, &a.ArchivedAt,
			&a.OriginalRegistrationID, &a.FirstName, &a.LastName, &a.Email, &a.CreatedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *archiveRepository) ListNominationsByArchiveID(ctx context.Context, archiveID string) ([]*domain.ArchivedNomination, error) {
	query := `
		SELECT id, original_id, archive_id, archived_at, nominee_name, district, years_of_service, reason, nominator_name, status, created_at
		FROM archived_nominations
		WHERE archive_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, archiveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	noms := []*domain.ArchivedNomination{}
	for rows.Next() {
		a := &domain.ArchivedNomination{}
		if err := rows.Scan(&a.ID, &a.OriginalID, &a.ArchiveID, &a.ArchivedAt,
			&a.NomineeName, &a.District, &a.YearsOfService, &a.Reason,
			&a.NominatorName, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		noms = append(noms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return noms, nil
}

// ListBatches groups archive rows by archive_id. Hall-of-fame batches live in
// archived_nominations; the conference types live in archived_registrations.
func (r *archiveRepository) ListBatches(ctx context.Context, eventType domain.EventType) ([]*domain.ArchiveBatch, error) {
	var rows *sql.Rows
	var err error
	if eventType == domain.EventTypeHallOfFame {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT archive_id, MIN(archived_at), COUNT(*)
			FROM archived_nominations
			GROUP BY archive_id
			ORDER BY MIN(archived_at) DESC
		`)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT archive_id, MIN(archived_at), COUNT(*)
			FROM archived_registrations
			WHERE event_type = $1
			GROUP BY archive_id
			ORDER BY MIN(archived_at) DESC
		`, eventType)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []*domain.ArchiveBatch{}
	for rows.Next() {
		b := &domain.ArchiveBatch{EventType: eventType}
		if err := rows.Scan(&b.ArchiveID, &b.ArchivedAt, &b.ItemCount); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return batches, nil
}
