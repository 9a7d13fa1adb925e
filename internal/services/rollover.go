package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"memberorg/internal/domain"
)

type rolloverService struct {
	registrationRepo domain.RegistrationRepository
	attendeeRepo     domain.AttendeeRepository
	nominationRepo   domain.NominationRepository
	settingsRepo     domain.SettingsRepository
	archiveRepo      domain.ArchiveRepository
	audit            domain.AuditLogger
}

// NewRolloverService creates the period-transition workflow. The archive and
// clear steps are independent writes, not one transaction: a failure after
// archiving has begun leaves a partially archived, not-yet-cleared state for
// manual recovery. The same-year guard prevents re-running and is re-checked
// immediately before the clear step to narrow the concurrent-invocation race.
func NewRolloverService(
	registrationRepo domain.RegistrationRepository,
	attendeeRepo domain.AttendeeRepository,
	nominationRepo domain.NominationRepository,
	settingsRepo domain.SettingsRepository,
	archiveRepo domain.ArchiveRepository,
	audit domain.AuditLogger,
) domain.RolloverService {
	return &rolloverService{
		registrationRepo: registrationRepo,
		attendeeRepo:     attendeeRepo,
		nominationRepo:   nominationRepo,
		settingsRepo:     settingsRepo,
		archiveRepo:      archiveRepo,
		audit:            audit,
	}
}

func (s *rolloverService) Rollover(ctx context.Context, eventType domain.EventType, newSettings *domain.SettingsPeriod, actorID string) (result *domain.RolloverResult, err error) {
	if !eventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType)
	}
	if newSettings == nil || newSettings.Name == "" || newSettings.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: new settings require a name and start date", domain.ErrInvalidInput)
	}

	defer func() {
		outcome := domain.AuditSuccess
		details := ""
		if err != nil {
			outcome = domain.AuditFailure
			details = err.Error()
		} else if result != nil {
			details = fmt.Sprintf("archive_id=%s registrations=%d attendees=%d nominations=%d new_period=%q",
				result.ArchiveID, result.RegistrationsMoved, result.AttendeesMoved, result.NominationsMoved, newSettings.Name)
		}
		s.audit.Record(ctx, "rollover:"+string(eventType), actorID, outcome, details)
	}()

	year := newSettings.StartDate.Year()
	count, err := s.archiveRepo.CountInYear(ctx, eventType, year)
	if err != nil {
		return nil, fmt.Errorf("rollover guard: %w", err)
	}
	if count > 0 {
		return nil, &domain.AlreadyRolledOverError{Year: year}
	}

	archiveID := uuid.NewString()
	// UTC, so archived_at lands in the same calendar year the guard queries
	// regardless of the server's zone.
	now := time.Now().UTC()
	result = &domain.RolloverResult{ArchiveID: archiveID}

	if eventType == domain.EventTypeHallOfFame {
		if err := s.archiveNominations(ctx, archiveID, now, result); err != nil {
			return nil, err
		}
	} else {
		if err := s.archiveRegistrations(ctx, eventType, archiveID, now, result); err != nil {
			return nil, err
		}
	}

	// Re-check the guard before the destructive step. Our own archive rows
	// carry archiveID and are excluded; anything else means a concurrent
	// rollover won and the clear must not proceed.
	count, err = s.archiveRepo.CountInYearExcluding(ctx, eventType, year, archiveID)
	if err != nil {
		return nil, fmt.Errorf("rollover guard re-check: %w", err)
	}
	if count > 0 {
		return nil, &domain.AlreadyRolledOverError{Year: year}
	}

	if eventType == domain.EventTypeHallOfFame {
		if err := s.nominationRepo.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("clear nominations: %w", err)
		}
	} else {
		// Attendees first, to respect the foreign-key direction.
		if err := s.attendeeRepo.DeleteByEventType(ctx, eventType); err != nil {
			return nil, fmt.Errorf("clear attendees: %w", err)
		}
		if err := s.registrationRepo.DeleteByEventType(ctx, eventType); err != nil {
			return nil, fmt.Errorf("clear registrations: %w", err)
		}
	}

	if err := s.settingsRepo.DeactivateAll(ctx, eventType); err != nil {
		return nil, fmt.Errorf("deactivate settings: %w", err)
	}
	newSettings.EventType = eventType
	newSettings.IsActive = true
	newSettings.CreatedAt = now
	if err := s.settingsRepo.Create(ctx, newSettings); err != nil {
		return nil, fmt.Errorf("create new settings: %w", err)
	}

	return result, nil
}

func (s *rolloverService) archiveRegistrations(ctx context.Context, eventType domain.EventType, archiveID string, now time.Time, result *domain.RolloverResult) error {
	regs, err := s.registrationRepo.ListByEventType(ctx, eventType)
	if err != nil {
		return fmt.Errorf("snapshot registrations: %w", err)
	}

	for _, reg := range regs {
		archived := &domain.ArchivedRegistration{
			OriginalID:     reg.ID,
			ArchiveID:      archiveID,
			ArchivedAt:     now,
			EventType:      reg.EventType,
			Agency:         reg.Agency,
			ContactName:    reg.ContactName,
			Email:          reg.Email,
			Phone:          reg.Phone,
			Address:        reg.Address,
			City:           reg.City,
			State:          reg.State,
			Zip:            reg.Zip,
			TotalAttendees: reg.TotalAttendees,
			TotalAmount:    reg.TotalAmount,
			CreatedAt:      reg.CreatedAt,
		}
		if err := s.archiveRepo.CreateRegistration(ctx, archived); err != nil {
			return fmt.Errorf("archive registration %s: %w", reg.ID, err)
		}
		result.RegistrationsMoved++
	}

	attendees, err := s.attendeeRepo.ListByEventType(ctx, eventType)
	if err != nil {
		return fmt.Errorf("snapshot attendees: %w", err)
	}
	for _, a := range attendees {
		archived := &domain.ArchivedAttendee{
			OriginalID:             a.ID,
			ArchiveID:              archiveID,
			ArchivedAt:             now,
			OriginalRegistrationID: a.RegistrationID,
			FirstName:              a.FirstName,
			LastName:               a.LastName,
			Email:                  a.Email,
			CreatedAt:              a.CreatedAt,
		}
		if err := s.archiveRepo.CreateAttendee(ctx, archived); err != nil {
			return fmt.Errorf("archive attendee %s: %w", a.ID, err)
		}
		result.AttendeesMoved++
	}
	return nil
}

func (s *rolloverService) archiveNominations(ctx context.Context, archiveID string, now time.Time, result *domain.RolloverResult) error {
	noms, err := s.nominationRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("snapshot nominations: %w", err)
	}
	for _, n := range noms {
		archived := &domain.ArchivedNomination{
			OriginalID:     n.ID,
			ArchiveID:      archiveID,
			ArchivedAt:     now,
			NomineeName:    n.NomineeName,
			District:       n.District,
			YearsOfService: n.YearsOfService,
			Reason:         n.Reason,
			NominatorName:  n.NominatorName,
			Status:         n.Status,
			CreatedAt:      n.CreatedAt,
		}
		if err := s.archiveRepo.CreateNomination(ctx, archived); err != nil {
			return fmt.Errorf("archive nomination %s: %w", n.ID, err)
		}
		result.NominationsMoved++
	}
	return nil
}
