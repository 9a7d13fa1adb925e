package domain

import (
	"context"
	"time"
)

// SubmissionStatus is the review status of a nomination or membership application.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Valid reports whether s is a known submission status.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Nomination represents a Hall of Fame nomination. Status is admin-mutable only.
// swagger:model Nomination
type Nomination struct {
	ID             string           `json:"id"`
	NomineeName    string           `json:"nominee_name"`
	District       string           `json:"district"`
	YearsOfService int              `json:"years_of_service"`
	Reason         string           `json:"reason"`
	NominatorName  string           `json:"nominator_name"`
	NominatorEmail string           `json:"nominator_email"`
	NominatorPhone string           `json:"nominator_phone"`
	Status         SubmissionStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// NominationRepository defines storage operations for nominations.
type NominationRepository interface {
	Create(ctx context.Context, n *Nomination) error
	List(ctx context.Context, p PaginationParams) ([]*Nomination, int, error)
	ListAll(ctx context.Context) ([]*Nomination, error)
	CountByNomineeAndDistrict(ctx context.Context, nomineeName, district string) (int, error)
	UpdateStatus(ctx context.Context, id string, status SubmissionStatus) error
	DeleteAll(ctx context.Context) error
}
