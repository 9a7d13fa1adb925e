package services

import (
	"context"
	"log/slog"
	"time"

	"memberorg/internal/domain"
)

type auditLogger struct {
	repo   domain.AuditRepository
	logger *slog.Logger
}

// NewAuditLogger returns an AuditLogger that writes entries to the audit
// repository. Writes are fire-and-forget: a failed insert is logged and
// swallowed so a logging outage never blocks or fails the primary action.
func NewAuditLogger(repo domain.AuditRepository, logger *slog.Logger) domain.AuditLogger {
	return &auditLogger{repo: repo, logger: logger}
}

func (a *auditLogger) Record(ctx context.Context, action, actorID, outcome, details string) {
	entry := &domain.AuditLogEntry{
		Action:    action,
		ActorID:   actorID,
		Outcome:   outcome,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		a.logger.WarnContext(ctx, "audit log write failed",
			"action", action,
			"actor_id", actorID,
			"outcome", outcome,
			"err", err,
		)
	}
}
