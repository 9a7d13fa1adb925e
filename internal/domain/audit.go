package domain

import (
	"context"
	"time"
)

// Audit outcomes.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// AuditLogEntry records one privileged action. Append-only; never read by
// application logic.
type AuditLogEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Outcome   string    `json:"outcome"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditRepository defines storage operations for the audit log.
type AuditRepository interface {
	Create(ctx context.Context, e *AuditLogEntry) error
}

// AuditLogger records privileged actions. Implementations must be
// fire-and-forget: a failed write never blocks or fails the caller.
type AuditLogger interface {
	Record(ctx context.Context, action, actorID, outcome, details string)
}
