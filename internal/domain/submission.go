package domain

import "context"

// SubmissionService runs the public submission pipeline for each form type:
// validate → submission window → rate limit → duplicate guard → insert.
// The identity argument is the submitter identity used for rate limiting
// (normalized email).
type SubmissionService interface {
	// SubmitRegistration inserts a conference or tech-conference registration
	// and its attendee rows. Attendee insert failures are reported to the
	// caller; the primary row is not rolled back.
	SubmitRegistration(ctx context.Context, reg *Registration, attendees []*Attendee) (string, error)
	SubmitNomination(ctx context.Context, n *Nomination) (string, error)
	SubmitMembership(ctx context.Context, m *MembershipApplication) (string, error)
}

// ReviewService exposes admin read and status-update operations over
// submitted data and archives.
type ReviewService interface {
	ListRegistrations(ctx context.Context, eventType EventType, p PaginationParams) ([]*RegistrationWithAttendees, int, error)
	ListNominations(ctx context.Context, p PaginationParams) ([]*Nomination, int, error)
	ListMemberships(ctx context.Context, p PaginationParams) ([]*MembershipApplication, int, error)
	UpdateNominationStatus(ctx context.Context, id string, status SubmissionStatus, actorID string) error
	UpdateMembershipStatus(ctx context.Context, id string, status SubmissionStatus, actorID string) error
	ListArchiveBatches(ctx context.Context, eventType EventType) ([]*ArchiveBatch, error)
	GetArchiveSnapshot(ctx context.Context, archiveID string) (*ArchiveSnapshot, error)
}

// RolloverResult reports a completed period rollover.
type RolloverResult struct {
	ArchiveID          string `json:"archive_id"`
	RegistrationsMoved int    `json:"registrations_moved"`
	AttendeesMoved     int    `json:"attendees_moved"`
	NominationsMoved   int    `json:"nominations_moved"`
}

// RolloverService archives a completed period's data and activates the new
// period's settings. At most one rollover per event type per calendar year.
type RolloverService interface {
	Rollover(ctx context.Context, eventType EventType, newSettings *SettingsPeriod, actorID string) (*RolloverResult, error)
}
