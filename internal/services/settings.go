package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memberorg/internal/domain"
)

type settingsService struct {
	settingsRepo domain.SettingsRepository
	audit        domain.AuditLogger
}

// NewSettingsService saves settings periods. Saving an active period first
// deactivates every other row for the event type, so exactly one row per type
// is active after any successful save.
func NewSettingsService(settingsRepo domain.SettingsRepository, audit domain.AuditLogger) domain.SettingsService {
	return &settingsService{settingsRepo: settingsRepo, audit: audit}
}

func (s *settingsService) Save(ctx context.Context, period *domain.SettingsPeriod, actorID string) (err error) {
	defer func() {
		outcome := domain.AuditSuccess
		details := fmt.Sprintf("event_type=%s name=%q active=%t", period.EventType, period.Name, period.IsActive)
		if err != nil {
			outcome = domain.AuditFailure
			details += " error=" + err.Error()
		}
		s.audit.Record(ctx, "settings:save", actorID, outcome, details)
	}()

	if !period.EventType.Valid() {
		return fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, period.EventType)
	}
	if period.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if period.StartDate.IsZero() || period.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrInvalidInput)
	}
	if period.EndDate.Before(period.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidInput)
	}
	if !period.RegistrationDeadline.IsZero() && period.RegistrationDeadline.After(period.EndDate) {
		return fmt.Errorf("%w: registration deadline is after the end date", domain.ErrInvalidInput)
	}
	if period.Fee < 0 {
		return fmt.Errorf("%w: fee cannot be negative", domain.ErrInvalidInput)
	}

	// A period cannot be deactivated directly; that would leave the event
	// type with no active row. Activating another period is the way out.
	if !period.IsActive && period.ID != "" {
		active, err := s.settingsRepo.GetActive(ctx, period.EventType)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get active settings: %w", err)
		}
		if active != nil && active.ID == period.ID {
			return fmt.Errorf("%w: cannot deactivate the active period; activate another period instead", domain.ErrInvalidInput)
		}
	}

	if period.IsActive {
		if err := s.settingsRepo.DeactivateAll(ctx, period.EventType); err != nil {
			return fmt.Errorf("deactivate settings: %w", err)
		}
	}

	if period.ID == "" {
		period.CreatedAt = time.Now()
		if err := s.settingsRepo.Create(ctx, period); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}
		return nil
	}
	if err := s.settingsRepo.Update(ctx, period); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (s *settingsService) ListByEventType(ctx context.Context, eventType domain.EventType) ([]*domain.SettingsPeriod, error) {
	if !eventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType)
	}
	return s.settingsRepo.ListByEventType(ctx, eventType)
}

func (s *settingsService) GetActive(ctx context.Context, eventType domain.EventType) (*domain.SettingsPeriod, error) {
	if !eventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidInput, eventType)
	}
	return s.settingsRepo.GetActive(ctx, eventType)
}

func (s *settingsService) Delete(ctx context.Context, id, actorID string) (err error) {
	defer func() {
		outcome := domain.AuditSuccess
		details := "settings_id=" + id
		if err != nil {
			outcome = domain.AuditFailure
			details += " error=" + err.Error()
		}
		s.audit.Record(ctx, "settings:delete", actorID, outcome, details)
	}()
	return s.settingsRepo.Delete(ctx, id)
}
