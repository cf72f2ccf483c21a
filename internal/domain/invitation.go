package domain

import (
	"context"
	"errors"
	"time"
)

// InvitationTTL is the validity window of a registration invitation,
// measured from CreatedAt.
const InvitationTTL = 48 * time.Hour

// Sentinel errors for the invitation lifecycle.
var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationInvalid    = errors.New("invalid invitation")
	ErrInvitationExpired    = errors.New("invitation expired")
	ErrInvitationStillValid = errors.New("invitation still valid")
)

// Invitation is a time-boxed, single-use credential permitting one specific
// email address to complete registration with a pre-assigned role.
// swagger:model Invitation
type Invitation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the invitation's validity window has elapsed at t.
func (i *Invitation) Expired(t time.Time) bool {
	return t.Sub(i.CreatedAt) > InvitationTTL
}

// InvitationStatus tags a per-email outcome of invitation dispatch.
type InvitationStatus string

const (
	// InvitationAlreadyValid: a pending, unexpired invitation already exists;
	// no record was created and no mail was sent.
	InvitationAlreadyValid InvitationStatus = "already_valid"
	// InvitationSent: a record was persisted and the email was delivered.
	InvitationSent InvitationStatus = "sent"
	// InvitationMailError: a record was persisted but delivery failed. The
	// record is deliberately kept; the link can still be resent later.
	InvitationMailError InvitationStatus = "mail_error"
	// InvitationError: the invitation could not be processed at all.
	InvitationError InvitationStatus = "error"
)

// InvitationResult is the per-email outcome reported by invitation dispatch.
// swagger:model InvitationResult
type InvitationResult struct {
	Email  string           `json:"email"`
	Status InvitationStatus `json:"status"`
	Link   string           `json:"link,omitempty"`
	Detail string           `json:"detail,omitempty"`
}

// SignupProfile carries the optional profile attributes collected when an
// invited user completes registration.
type SignupProfile struct {
	Name     string
	LastName string
	Phone    string
	Level    string
	Age      int
}

// InvitationRepository defines storage operations for invitations.
// The email column carries a unique constraint: at most one invitation row
// per address at any time.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByEmail(ctx context.Context, email string) (*Invitation, error)
	GetByEmailAndToken(ctx context.Context, email, token string) (*Invitation, error)
	List(ctx context.Context, p PaginationParams) ([]*Invitation, int, error)
	Delete(ctx context.Context, id string) error
}

// EmailListParser extracts recipient addresses from an uploaded bulk file.
// The file format is a collaborator concern; implementations return the
// plain list of addresses found.
type EmailListParser interface {
	Parse(data []byte) ([]string, error)
}

// InvitationService orchestrates the invitation lifecycle: creation,
// deduplication, expiry, resend, bulk dispatch, and signup completion.
type InvitationService interface {
	Create(ctx context.Context, email string, role Role) InvitationResult
	CreateBulk(ctx context.Context, emails []string, role Role) []InvitationResult
	List(ctx context.Context, p PaginationParams) ([]*Invitation, int, error)
	Resend(ctx context.Context, email string) (InvitationResult, error)
	CompleteSignup(ctx context.Context, email, token, password string, profile SignupProfile) (*User, error)
}
