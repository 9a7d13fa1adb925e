package domain

import (
	"context"
	"time"
)

// MembershipType is the category of membership applied for.
type MembershipType string

const (
	MembershipActive    MembershipType = "active"
	MembershipAssociate MembershipType = "associate"
	MembershipRetired   MembershipType = "retired"
)

// Valid reports whether t is a known membership type.
func (t MembershipType) Valid() bool {
	switch t {
	case MembershipActive, MembershipAssociate, MembershipRetired:
		return true
	}
	return false
}

// MembershipApplication represents an application to join the organization.
// swagger:model MembershipApplication
type MembershipApplication struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Organization   string           `json:"organization"`
	Position       string           `json:"position"`
	MembershipType MembershipType   `json:"membership_type"`
	Interests      []string         `json:"interests"`
	Status         SubmissionStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MembershipRepository defines storage operations for membership applications.
type MembershipRepository interface {
	Create(ctx context.Context, m *MembershipApplication) error
	List(ctx context.Context, p PaginationParams) ([]*MembershipApplication, int, error)
	CountPendingByEmail(ctx context.Context, email string) (int, error)
	UpdateStatus(ctx context.Context, id string, status SubmissionStatus) error
}
