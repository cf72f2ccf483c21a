package domain

import (
	"context"
	"errors"
	"time"
)

// ResetTokenTTL is the validity window of a password-reset token,
// measured from CreatedAt.
const ResetTokenTTL = 30 * time.Minute

// Sentinel errors for the password-reset lifecycle.
var (
	ErrResetTokenInvalid = errors.New("invalid reset token")
	ErrResetTokenUsed    = errors.New("reset token already used")
	ErrResetTokenExpired = errors.New("reset token expired")
)

// PasswordResetToken is a short-lived, single-use credential that lets the
// owning user set a new password. Once used or expired it is terminally
// unusable; it is never reset to valid.
type PasswordResetToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token's validity window has elapsed at t.
func (p *PasswordResetToken) Expired(t time.Time) bool {
	return t.Sub(p.CreatedAt) > ResetTokenTTL
}

// PasswordResetRepository defines storage operations for reset tokens.
type PasswordResetRepository interface {
	Create(ctx context.Context, t *PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*PasswordResetToken, error)
	// Consume marks the token used and sets the owning user's password hash
	// in a single transaction. It returns ErrResetTokenUsed when the token
	// was already consumed by a concurrent request.
	Consume(ctx context.Context, tokenID, userID, passwordHash string) error
}

// PasswordResetService issues and redeems password-reset tokens. Multiple
// outstanding tokens per user are permitted; each is independently valid
// until used or expired.
type PasswordResetService interface {
	Request(ctx context.Context, email string) error
	Reset(ctx context.Context, token, newPassword string) error
}
