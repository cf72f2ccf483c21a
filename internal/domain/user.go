package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for user and authentication operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
)

// Role is the closed set of application roles. Stored as text in the users
// table and carried in the access-token claims.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleStudent Role = "student"
)

// ParseRole maps a stored or user-supplied string onto the closed Role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleTrainer, RoleStudent:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User represents a platform account (admin, trainer, or student).
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claim is the identity established at login: the authenticated user's id
// and role, consulted by Authorize on every subsequent request.
type Claim struct {
	UserID string
	Role   Role
}

// PasswordHasher hashes and verifies account passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (digest string, err error)
	Compare(digest, password string) error
}

// TokenIssuer issues access tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies an access token and returns the embedded claim.
type TokenVerifier interface {
	Verify(token string) (*Claim, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, p PaginationParams) ([]*User, int, error)
	Update(ctx context.Context, user *User) error
	SetActive(ctx context.Context, id string, active bool) error
	SetPasswordHash(ctx context.Context, id, hash string) error
	HasAdmin(ctx context.Context) (bool, error)
}

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

// UserService defines user management business logic. Authorization is
// enforced at the delivery layer via Authorize, except CreateAdmin which
// carries its own conditional rule (open bootstrap until an admin exists).
type UserService interface {
	List(ctx context.Context, p PaginationParams) ([]*User, int, error)
	Create(ctx context.Context, email, password, name, lastName, phone string, role Role) (*User, error)
	CreateAdmin(ctx context.Context, claim *Claim, email, password, name, lastName, phone string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, claim *Claim, user *User, setActive *bool) (*User, error)
	Deactivate(ctx context.Context, id string) error
}
