package domain

import (
	"context"
	"time"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User represents a back-office user.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage. Create generates
// the row id; Restore re-inserts a previously deleted row keeping its id, so
// a compensated deletion stays paired with the surviving auth identity.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Restore(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	CountByRole(ctx context.Context, role string) (int, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// AuthService authenticates back-office users and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

// UserAdminService manages back-office users. Delete enforces last-admin
// protection and compensates a failed identity deletion by re-inserting the
// user row (best-effort, not transactional).
type UserAdminService interface {
	Create(ctx context.Context, user *User, password, actorID string) error
	List(ctx context.Context, actorID string) ([]*User, error)
	Delete(ctx context.Context, id, actorID string) error
}

// IdentityService is the external auth collaborator: it owns the credential
// records that back bearer-token resolution. The Postgres-backed default
// implementation and the user table move together; deletion is compensated
// best-effort when the identity side fails.
type IdentityService interface {
	CreateIdentity(ctx context.Context, userID, email string) error
	DeleteIdentity(ctx context.Context, userID string) error
}
