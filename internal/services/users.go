package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"memberorg/internal/domain"
)

const minPasswordLen = 8

type userAdminService struct {
	userRepo domain.UserRepository
	identity domain.IdentityService
	hasher   domain.PasswordHasher
	audit    domain.AuditLogger
	logger   *slog.Logger
}

// NewUserAdminService manages back-office users. Deletion removes the user
// row first and the auth identity second; if the identity deletion fails the
// user row is re-inserted best-effort. Not transactional.
func NewUserAdminService(
	userRepo domain.UserRepository,
	identity domain.IdentityService,
	hasher domain.PasswordHasher,
	audit domain.AuditLogger,
	logger *slog.Logger,
) domain.UserAdminService {
	return &userAdminService{
		userRepo: userRepo,
		identity: identity,
		hasher:   hasher,
		audit:    audit,
		logger:   logger,
	}
}

func (s *userAdminService) Create(ctx context.Context, user *domain.User, password, actorID string) (err error) {
	defer s.auditOutcome(ctx, "user:create", actorID, &err, func() string { return "email=" + user.Email })

	user.Email = normalizeEmail(user.Email)
	if !emailRegexp.MatchString(user.Email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleEditor {
		user.Role = domain.RoleEditor
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user.Salt = salt
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("create user: %w", err)
	}

	if err := s.identity.CreateIdentity(ctx, user.ID, user.Email); err != nil {
		// Compensate: remove the row so user and identity stay paired.
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			s.logger.ErrorContext(ctx, "orphaned user row after identity create failure",
				"user_id", user.ID, "err", delErr)
		}
		return fmt.Errorf("create identity: %w", err)
	}
	return nil
}

func (s *userAdminService) List(ctx context.Context, actorID string) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userAdminService) Delete(ctx context.Context, id, actorID string) (err error) {
	defer s.auditOutcome(ctx, "user:delete", actorID, &err, func() string { return "user_id=" + id })

	target, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("get user: %w", err)
	}

	if target.Role == domain.RoleAdmin {
		admins, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return fmt.Errorf("count admins: %w", err)
		}
		if admins <= 1 {
			return domain.ErrLastAdmin
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.identity.DeleteIdentity(ctx, id); err != nil {
		// Best-effort rollback of the row deletion; not transactional. Restore
		// keeps the original id so the row still matches the auth identity.
		restore := *target
		if restoreErr := s.userRepo.Restore(ctx, &restore); restoreErr != nil {
			s.logger.ErrorContext(ctx, "failed to restore user row after identity delete failure",
				"user_id", id, "err", restoreErr)
		}
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}

func (s *userAdminService) auditOutcome(ctx context.Context, action, actorID string, err *error, details func() string) {
	outcome := domain.AuditSuccess
	d := details()
	if *err != nil {
		outcome = domain.AuditFailure
		d = d + " error=" + (*err).Error()
	}
	s.audit.Record(ctx, action, actorID, outcome, d)
}
