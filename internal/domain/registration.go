package domain

import (
	"context"
	"time"
)

// EventType discriminates the registration and settings tables by program.
type EventType string

const (
	EventTypeConference     EventType = "conference"
	EventTypeTechConference EventType = "tech_conference"
	EventTypeHallOfFame     EventType = "hall_of_fame"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeConference, EventTypeTechConference, EventTypeHallOfFame:
		return true
	}
	return false
}

// Registration represents a conference or tech-conference registration
// submitted by an agency. Owned by the submitting party until archived;
// mutable only through admin handlers.
// swagger:model Registration
type Registration struct {
	ID             string    `json:"id"`
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
	SettingsID     string    `json:"settings_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Attendee belongs to exactly one Registration. Its lifecycle is bound to the
// parent row: deleted or archived together.
// swagger:model Attendee
type Attendee struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

// RegistrationWithAttendees bundles a registration with its attendee rows.
type RegistrationWithAttendees struct {
	Registration *Registration `json:"registration"`
	Attendees    []*Attendee   `json:"attendees"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ListByEventType(ctx context.Context, eventType EventType) ([]*Registration, error)
	ListPage(ctx context.Context, eventType EventType, p PaginationParams) ([]*Registration, int, error)
	CountByEmailAndSettings(ctx context.Context, eventType EventType, email, settingsID string) (int, error)
	DeleteByEventType(ctx context.Context, eventType EventType) error
	Delete(ctx context.Context, id string) error
}

// AttendeeRepository defines storage operations for attendee rows.
type AttendeeRepository interface {
	Create(ctx context.Context, a *Attendee) error
	ListByRegistrationID(ctx context.Context, registrationID string) ([]*Attendee, error)
	ListByEventType(ctx context.Context, eventType EventType) ([]*Attendee, error)
	DeleteByEventType(ctx context.Context, eventType EventType) error
}
