package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"memberorg/internal/domain"
)

type submissionService struct {
	registrationRepo domain.RegistrationRepository
	attendeeRepo     domain.AttendeeRepository
	nominationRepo   domain.NominationRepository
	membershipRepo   domain.MembershipRepository
	settingsRepo     domain.SettingsRepository
	limiter          domain.RateLimiter
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewSubmissionService creates the public submission pipeline:
// validate → submission window → rate limit → duplicate guard → insert.
// emailService may be nil; confirmation emails are best-effort.
func NewSubmissionService(
	registrationRepo domain.RegistrationRepository,
	attendeeRepo domain.AttendeeRepository,
	nominationRepo domain.NominationRepository,
	membershipRepo domain.MembershipRepository,
	settingsRepo domain.SettingsRepository,
	limiter domain.RateLimiter,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.SubmissionService {
	return &submissionService{
		registrationRepo: registrationRepo,
		attendeeRepo:     attendeeRepo,
		nominationRepo:   nominationRepo,
		membershipRepo:   membershipRepo,
		settingsRepo:     settingsRepo,
		limiter:          limiter,
		emailService:     emailService,
		logger:           logger,
	}
}

// activeOpenSettings loads the active settings period for the event type and
// checks the current time against its submission window.
func (s *submissionService) activeOpenSettings(ctx context.Context, eventType domain.EventType) (*domain.SettingsPeriod, error) {
	settings, err := s.settingsRepo.GetActive(ctx, eventType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPeriodClosed
		}
		return nil, fmt.Errorf("get active settings: %w", err)
	}
	if !settings.OpenForSubmission(time.Now()) {
		return nil, domain.ErrPeriodClosed
	}
	return settings, nil
}

func (s *submissionService) SubmitRegistration(ctx context.Context, reg *domain.Registration, attendees []*domain.Attendee) (string, error) {
	if err := ValidateRegistration(reg, attendees); err != nil {
		return "", err
	}

	settings, err := s.activeOpenSettings(ctx, reg.EventType)
	if err != nil {
		return "", err
	}

	if err := s.limiter.CheckAndRecord(ctx, string(reg.EventType)+":"+reg.Email); err != nil {
		return "", err
	}

	count, err := s.registrationRepo.CountByEmailAndSettings(ctx, reg.EventType, reg.Email, settings.ID)
	if err != nil {
		return "", fmt.Errorf("duplicate check: %w", err)
	}
	if count > 0 {
		return "", domain.ErrDuplicateSubmission
	}

	now := time.Now()
	reg.SettingsID = settings.ID
	reg.TotalAmount = float64(reg.TotalAttendees) * settings.Fee
	reg.CreatedAt = now
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return "", fmt.Errorf("create registration: %w", err)
	}

	// Attendee rows reference the new registration. A failure here leaves
	// the registration row in place and surfaces the partial state to the
	// caller; recovery is manual.
	for _, a := range attendees {
		a.RegistrationID = reg.ID
		a.CreatedAt = now
		if err := s.attendeeRepo.Create(ctx, a); err != nil {
			return reg.ID, fmt.Errorf("%w: %v", domain.ErrAttendeePartialInsert, err)
		}
	}

	s.sendConfirmation(ctx, &domain.SubmissionConfirmationData{
		Email:       reg.Email,
		Name:        reg.ContactName,
		FormName:    formName(reg.EventType),
		ReferenceID: reg.ID,
		TotalAmount: reg.TotalAmount,
	})
	return reg.ID, nil
}

func (s *submissionService) SubmitNomination(ctx context.Context, n *domain.Nomination) (string, error) {
	if err := ValidateNomination(n); err != nil {
		return "", err
	}

	if _, err := s.activeOpenSettings(ctx, domain.EventTypeHallOfFame); err != nil {
		return "", err
	}

	if err := s.limiter.CheckAndRecord(ctx, "nomination:"+n.NominatorEmail); err != nil {
		return "", err
	}

	count, err := s.nominationRepo.CountByNomineeAndDistrict(ctx, n.NomineeName, n.District)
	if err != nil {
		return "", fmt.Errorf("duplicate check: %w", err)
	}
	if count > 0 {
		return "", domain.ErrDuplicateSubmission
	}

	n.Status = domain.StatusPending
	n.CreatedAt = time.Now()
	if err := s.nominationRepo.Create(ctx, n); err != nil {
		return "", fmt.Errorf("create nomination: %w", err)
	}

	s.sendConfirmation(ctx, &domain.SubmissionConfirmationData{
		Email:       n.NominatorEmail,
		Name:        n.NominatorName,
		FormName:    "Hall of Fame Nomination",
		ReferenceID: n.ID,
	})
	return n.ID, nil
}

func (s *submissionService) SubmitMembership(ctx context.Context, m *domain.MembershipApplication) (string, error) {
	if err := ValidateMembership(m); err != nil {
		return "", err
	}

	// Membership applications are accepted year-round; no settings window.
	if err := s.limiter.CheckAndRecord(ctx, "membership:"+m.Email); err != nil {
		return "", err
	}

	count, err := s.membershipRepo.CountPendingByEmail(ctx, m.Email)
	if err != nil {
		return "", fmt.Errorf("duplicate check: %w", err)
	}
	if count > 0 {
		return "", domain.ErrDuplicateSubmission
	}

	m.Status = domain.StatusPending
	m.CreatedAt = time.Now()
	if err := s.membershipRepo.Create(ctx, m); err != nil {
		return "", fmt.Errorf("create membership application: %w", err)
	}

	s.sendConfirmation(ctx, &domain.SubmissionConfirmationData{
		Email:       m.Email,
		Name:        m.Name,
		FormName:    "Membership Application",
		ReferenceID: m.ID,
	})
	return m.ID, nil
}

// sendConfirmation is best-effort: a mail failure never fails the submission.
func (s *submissionService) sendConfirmation(ctx context.Context, data *domain.SubmissionConfirmationData) {
	if s.emailService == nil {
		return
	}
	if err := s.emailService.SendSubmissionConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "email", data.Email, "form", data.FormName, "err", err)
	}
}

func formName(eventType domain.EventType) string {
	switch eventType {
	case domain.EventTypeConference:
		return "Conference Registration"
	case domain.EventTypeTechConference:
		return "Tech Conference Registration"
	default:
		return string(eventType)
	}
}
