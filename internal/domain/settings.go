package domain

import (
	"context"
	"time"
)

// SettingsPeriod governs a program's public submission window and fee.
// Invariant: at most one active row per event type at any time.
// swagger:model SettingsPeriod
type SettingsPeriod struct {
	ID                   string    `json:"id"`
	EventType            EventType `json:"event_type"`
	Name                 string    `json:"name"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	Fee                  float64   `json:"fee"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

// OpenForSubmission reports whether now falls inside the period's submission window.
func (s *SettingsPeriod) OpenForSubmission(now time.Time) bool {
	if now.Before(s.StartDate) {
		return false
	}
	deadline := s.RegistrationDeadline
	if deadline.IsZero() {
		deadline = s.EndDate
	}
	return !now.After(deadline)
}

// SettingsService saves settings periods, preserving the single-active-row
// invariant per event type.
type SettingsService interface {
	Save(ctx context.Context, s *SettingsPeriod, actorID string) error
	ListByEventType(ctx context.Context, eventType EventType) ([]*SettingsPeriod, error)
	GetActive(ctx context.Context, eventType EventType) (*SettingsPeriod, error)
	Delete(ctx context.Context, id, actorID string) error
}

// SettingsRepository defines storage operations for settings periods.
type SettingsRepository interface {
	Create(ctx context.Context, s *SettingsPeriod) error
	GetActive(ctx context.Context, eventType EventType) (*SettingsPeriod, error)
	ListByEventType(ctx context.Context, eventType EventType) ([]*SettingsPeriod, error)
	// DeactivateAll clears is_active on every row for the event type.
	DeactivateAll(ctx context.Context, eventType EventType) error
	Update(ctx context.Context, s *SettingsPeriod) error
	Delete(ctx context.Context, id string) error
}
