package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"memberorg/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestArchiveRepository_CountInYear(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("conference counts archived registrations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM archived_registrations`).
			WithArgs(domain.EventTypeConference, from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		repo := NewArchiveRepository(db)
		count, err := repo.CountInYear(ctx, domain.EventTypeConference, 2026)
		require.NoError(t, err)
		require.Equal(t, 12, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hall of fame counts archived nominations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM archived_nominations`).
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		repo := NewArchiveRepository(db)
		count, err := repo.CountInYear(ctx, domain.EventTypeHallOfFame, 2026)
		require.NoError(t, err)
		require.Equal(t, 0, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArchiveRepository_CountInYearExcluding(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM archived_registrations`).
		WithArgs(domain.EventTypeConference, from, to, "archive-own").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewArchiveRepository(db)
	count, err := repo.CountInYearExcluding(ctx, domain.EventTypeConference, 2026, "archive-own")
	require.NoError(t, err)
	require.Equal(t, 0, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveRepository_CreateRegistration(t *testing.T) {
	ctx := context.Background()
	archivedAt := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO archived_registrations`).
		WithArgs(
			"reg-1", "archive-1", archivedAt, domain.EventTypeConference, "Springfield PD",
			"Jane Doe", "jane@springfield.gov", "555-123-4567", "100 Main St", "Springfield", "IL", "62701",
			2, 300.0, sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("arch-reg-1"))

	repo := NewArchiveRepository(db)
	a := &domain.ArchivedRegistration{
		OriginalID:     "reg-1",
		ArchiveID:      "archive-1",
		ArchivedAt:     archivedAt,
		EventType:      domain.EventTypeConference,
		Agency:         "Springfield PD",
		ContactName:    "Jane Doe",
		Email:          "jane@springfield.gov",
		Phone:          "555-123-4567",
		Address:        "100 Main St",
		City:           "Springfield",
		State:          "IL",
		Zip:            "62701",
		TotalAttendees: 2,
		TotalAmount:    300,
	}
	require.NoError(t, repo.CreateRegistration(ctx, a))
	require.Equal(t, "arch-reg-1", a.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveRepository_ListBatches(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)

	t.Run("conference groups archived registrations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT archive_id, MIN\(archived_at\), COUNT\(\*\)\s+FROM archived_registrations`).
			WithArgs(domain.EventTypeConference).
			WillReturnRows(sqlmock.NewRows([]string{"archive_id", "min", "count"}).
				AddRow("archive-2026", second, 30).
				AddRow("archive-2025", first, 25))

		repo := NewArchiveRepository(db)
		batches, err := repo.ListBatches(ctx, domain.EventTypeConference)
		require.NoError(t, err)
		require.Len(t, batches, 2)
		require.Equal(t, "archive-2026", batches[0].ArchiveID)
		require.Equal(t, 30, batches[0].ItemCount)
		require.Equal(t, domain.EventTypeConference, batches[0].EventType)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hall of fame groups archived nominations", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT archive_id, MIN\(archived_at\), COUNT\(\*\)\s+FROM archived_nominations`).
			WillReturnRows(sqlmock.NewRows([]string{"archive_id", "min", "count"}).
				AddRow("archive-hof-2026", second, 8))

		repo := NewArchiveRepository(db)
		batches, err := repo.ListBatches(ctx, domain.EventTypeHallOfFame)
		require.NoError(t, err)
		require.Len(t, batches, 1)
		require.Equal(t, "archive-hof-2026", batches[0].ArchiveID)
		require.Equal(t, 8, batches[0].ItemCount)
		require.Equal(t, domain.EventTypeHallOfFame, batches[0].EventType)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArchiveRepository_ListNominationsByArchiveID(t *testing.T) {
	ctx := context.Background()
	archivedAt := time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC)
	created := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM archived_nominations\s+WHERE archive_id = \$1`).
		WithArgs("archive-hof-2026").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "original_id", "archive_id", "archived_at", "nominee_name", "district",
			"years_of_service", "reason", "nominator_name", "status", "created_at",
		}).AddRow("arch-nom-1", "nom-1", "archive-hof-2026", archivedAt, "Pat Morgan", "District 4",
			25, "Decades of service.", "Chris Lee", domain.StatusApproved, created))

	repo := NewArchiveRepository(db)
	noms, err := repo.ListNominationsByArchiveID(ctx, "archive-hof-2026")
	require.NoError(t, err)
	require.Len(t, noms, 1)
	require.Equal(t, "Pat Morgan", noms[0].NomineeName)
	require.Equal(t, domain.StatusApproved, noms[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
