package services

import (
	"context"
	"errors"
	"fmt"

	"memberorg/internal/domain"
)

type reviewService struct {
	registrationRepo domain.RegistrationRepository
	attendeeRepo     domain.AttendeeRepository
	nominationRepo   domain.NominationRepository
	membershipRepo   domain.MembershipRepository
	archiveRepo      domain.ArchiveRepository
	audit            domain.AuditLogger
}

// NewReviewService exposes admin reads over submitted data and archives, and
// status updates for nominations and membership applications.
func NewReviewService(
	registrationRepo domain.RegistrationRepository,
	attendeeRepo domain.AttendeeRepository,
	nominationRepo domain.NominationRepository,
	membershipRepo domain.MembershipRepository,
	archiveRepo domain.ArchiveRepository,
	audit domain.AuditLogger,
) domain.ReviewService {
	return &reviewService{
		registrationRepo: registrationRepo,
		attendeeRepo:     attendeeRepo,
		nominationRepo:   nominationRepo,
		membershipRepo:   membershipRepo,
		archiveRepo:      archiveRepo,
		audit:            audit,
	}
}

func (s *reviewService) ListRegistrations(ctx context.Context, eventType domain.EventType, p domain.PaginationParams) ([]*domain.RegistrationWithAttendees, int, error) {
	if eventType != domain.EventTypeConference && eventType != domain.EventTypeTechConference {
		return nil, 0, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType)
	}
	regs, total, err := s.registrationRepo.ListPage(ctx, eventType, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}

	result := make([]*domain.RegistrationWithAttendees, 0, len(regs))
	for _, reg := range regs {
		attendees, err := s.attendeeRepo.ListByRegistrationID(ctx, reg.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("list attendees for registration %s: %w", reg.ID, err)
		}
		result = append(result, &domain.RegistrationWithAttendees{
			Registration: reg,
			Attendees:    attendees,
		})
	}
	return result, total, nil
}

func (s *reviewService) ListNominations(ctx context.Context, p domain.PaginationParams) ([]*domain.Nomination, int, error) {
	return s.nominationRepo.List(ctx, p)
}

func (s *reviewService) ListMemberships(ctx context.Context, p domain.PaginationParams) ([]*domain.MembershipApplication, int, error) {
	return s.membershipRepo.List(ctx, p)
}

func (s *reviewService) UpdateNominationStatus(ctx context.Context, id string, status domain.SubmissionStatus, actorID string) (err error) {
	defer func() {
		s.recordStatusChange(ctx, "nomination:status", actorID, id, status, err)
	}()
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, status)
	}
	if err := s.nominationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update nomination status: %w", err)
	}
	return nil
}

func (s *reviewService) UpdateMembershipStatus(ctx context.Context, id string, status domain.SubmissionStatus, actorID string) (err error) {
	defer func() {
		s.recordStatusChange(ctx, "membership:status", actorID, id, status, err)
	}()
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, status)
	}
	if err := s.membershipRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update membership status: %w", err)
	}
	return nil
}

func (s *reviewService) ListArchiveBatches(ctx context.Context, eventType domain.EventType) ([]*domain.ArchiveBatch, error) {
	if !eventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType)
	}
	return s.archiveRepo.ListBatches(ctx, eventType)
}

func (s *reviewService) GetArchiveSnapshot(ctx context.Context, archiveID string) (*domain.ArchiveSnapshot, error) {
	regs, err := s.archiveRepo.ListRegistrationsByArchiveID(ctx, archiveID)
	if err != nil {
		return nil, fmt.Errorf("list archived registrations: %w", err)
	}
	attendees, err := s.archiveRepo.ListAttendeesByArchiveID(ctx, archiveID)
	if err != nil {
		return nil, fmt.Errorf("list archived attendees: %w", err)
	}
	noms, err := s.archiveRepo.ListNominationsByArchiveID(ctx, archiveID)
	if err != nil {
		return nil, fmt.Errorf("list archived nominations: %w", err)
	}
	return &domain.ArchiveSnapshot{
		Registrations: regs,
		Attendees:     attendees,
		Nominations:   noms,
	}, nil
}

func (s *reviewService) recordStatusChange(ctx context.Context, action, actorID, id string, status domain.SubmissionStatus, err error) {
	outcome := domain.AuditSuccess
	details := fmt.Sprintf("id=%s status=%s", id, status)
	if err != nil {
		outcome = domain.AuditFailure
		details += " error=" + err.Error()
	}
	s.audit.Record(ctx, action, actorID, outcome, details)
}
