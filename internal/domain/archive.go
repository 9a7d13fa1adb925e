package domain

import (
	"context"
	"time"
)

// ArchivedRegistration is a snapshot of a Registration written during a
// rollover. All rows sharing an ArchiveID were written by one rollover
// invocation and represent one coherent snapshot of a period.
// swagger:model ArchivedRegistration
type ArchivedRegistration struct {
	ID         string    `json:"id"`
	OriginalID string    `json:"original_id"`
	ArchiveID  string    `json:"archive_id"`
	ArchivedAt time.Time `json:"archived_at"`

	EventType      EventType `json:"event_type"`
	Agency         string    `json:"agency"`
	ContactName    string    `json:"contact_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Zip            string    `json:"zip"`
	TotalAttendees int       `json:"total_attendees"`
	TotalAmount    float64   `json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// ArchivedAttendee is a snapshot of an Attendee row. OriginalRegistrationID
// points at the live registration id the attendee belonged to, so a period's
// registrations and attendees are recoverable as one unit via ArchiveID.
// swagger:model ArchivedAttendee
type ArchivedAttendee struct {
	ID         string    `json:"id"`
	OriginalID string    `json:"original_id"`
	ArchiveID  string    `json:"archive_id"`
	ArchivedAt time.Time `json:"archived_at"`

	OriginalRegistrationID string    `json:"original_registration_id"`
	FirstName              string    `json:"first_name"`
	LastName               string    `json:"last_name"`
	Email                  string    `json:"email"`
	CreatedAt              time.Time `json:"created_at"`
}

// ArchivedNomination is a snapshot of a Nomination written during a
// hall-of-fame rollover.
// swagger:model ArchivedNomination
type ArchivedNomination struct {
	ID         string    `json:"id"`
	OriginalID string    `json:"original_id"`
	ArchiveID  string    `json:"archive_id"`
	ArchivedAt time.Time `json:"archived_at"`

	NomineeName    string           `json:"nominee_name"`
	District       string           `json:"district"`
	YearsOfService int              `json:"years_of_service"`
	Reason         string           `json:"reason"`
	NominatorName  string           `json:"nominator_name"`
	Status         SubmissionStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ArchiveBatch summarizes one rollover invocation for archive browsing.
// ItemCount is archived registrations for the conference types and archived
// nominations for hall of fame.
type ArchiveBatch struct {
	ArchiveID  string    `json:"archive_id"`
	EventType  EventType `json:"event_type"`
	ArchivedAt time.Time `json:"archived_at"`
	ItemCount  int       `json:"item_count"`
}

// ArchiveSnapshot groups one archive batch's rows. Conference batches carry
// registrations and attendees; hall-of-fame batches carry nominations.
type ArchiveSnapshot struct {
	Registrations []*ArchivedRegistration `json:"registrations"`
	Attendees     []*ArchivedAttendee     `json:"attendees"`
	Nominations   []*ArchivedNomination   `json:"nominations"`
}

// ArchiveRepository defines storage operations for archive tables.
type ArchiveRepository interface {
	// CountInYear counts archive rows for the event type whose archived_at
	// falls inside the given calendar year. The rollover guard depends on it.
	CountInYear(ctx context.Context, eventType EventType, year int) (int, error)
	// CountInYearExcluding is CountInYear minus rows carrying the given
	// archive_id, so an in-flight rollover can re-check the guard without
	// counting its own writes.
	CountInYearExcluding(ctx context.Context, eventType EventType, year int, excludeArchiveID string) (int, error)
	CreateRegistration(ctx context.Context, a *ArchivedRegistration) error
	CreateAttendee(ctx context.Context, a *ArchivedAttendee) error
	CreateNomination(ctx context.Context, a *ArchivedNomination) error
	ListRegistrationsByArchiveID(ctx context.Context, archiveID string) ([]*ArchivedRegistration, error)
	ListAttendeesByArchiveID(ctx context.Context, archiveID string) ([]*ArchivedAttendee, error)
	ListNominationsByArchiveID(ctx context.Context, archiveID string) ([]*ArchivedNomination, error)
	ListBatches(ctx context.Context, eventType EventType) ([]*ArchiveBatch, error)
}
