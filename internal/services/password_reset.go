package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"padelcoach/internal/domain"
)

type passwordResetService struct {
	resetRepo    domain.PasswordResetRepository
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	signer       domain.LinkTokenSigner
	emailService domain.EmailService
	baseURL      string
	logger       *slog.Logger
	now          func() time.Time
}

// NewPasswordResetService wires the reset-token lifecycle: 30-minute
// expiry, single use enforced transactionally, and no dedup of outstanding
// tokens per user.
func NewPasswordResetService(
	resetRepo domain.PasswordResetRepository,
	userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	signer domain.LinkTokenSigner,
	emailService domain.EmailService,
	baseURL string,
	logger *slog.Logger,
) domain.PasswordResetService {
	return &passwordResetService{
		resetRepo:    resetRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		signer:       signer,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger,
		now:          time.Now,
	}
}

// Request issues a fresh reset token for the user owning the email.
// Earlier outstanding tokens stay valid until used or expired.
func (s *passwordResetService) Request(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, err := s.signer.Issue(user.ID)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	now := s.now()
	record := &domain.PasswordResetToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.ResetTokenTTL),
	}
	if err := s.resetRepo.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, url.QueryEscape(token))
	data := &domain.PasswordResetEmailData{
		Email:          email,
		Link:           link,
		ExpiresMinutes: int(domain.ResetTokenTTL / time.Minute),
	}
	if err := s.emailService.SendPasswordReset(ctx, data); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// Reset redeems a token. Checks run in order: existence, prior use, expiry.
// The password write and the used flag commit in one transaction so a crash
// between them can never leave the token redeemable again.
func (s *passwordResetService) Reset(ctx context.Context, token, newPassword string) error {
	record, err := s.resetRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to get reset token: %w", err)
	}
	if record.Used {
		return domain.ErrResetTokenUsed
	}
	if record.Expired(s.now()) {
		return domain.ErrResetTokenExpired
	}
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.resetRepo.Consume(ctx, record.ID, record.UserID, hash); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "password reset completed", "user_id", record.UserID)
	return nil
}
