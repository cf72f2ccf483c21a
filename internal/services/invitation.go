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

type invitationService struct {
	invRepo      domain.InvitationRepository
	userRepo     domain.UserRepository
	studentRepo  domain.StudentRepository
	trainerRepo  domain.TrainerRepository
	hasher       domain.PasswordHasher
	signer       domain.LinkTokenSigner
	emailService domain.EmailService
	baseURL      string
	logger       *slog.Logger
	now          func() time.Time
}

// NewInvitationService wires the invitation lifecycle: dedup per email,
// 48h expiry tracked on the record, resend-on-expiry, bulk dispatch with
// per-recipient outcomes, and signup completion.
func NewInvitationService(
	invRepo domain.InvitationRepository,
	userRepo domain.UserRepository,
	studentRepo domain.StudentRepository,
	trainerRepo domain.TrainerRepository,
	hasher domain.PasswordHasher,
	signer domain.LinkTokenSigner,
	emailService domain.EmailService,
	baseURL string,
	logger *slog.Logger,
) domain.InvitationService {
	return &invitationService{
		invRepo:      invRepo,
		userRepo:     userRepo,
		studentRepo:  studentRepo,
		trainerRepo:  trainerRepo,
		hasher:       hasher,
		signer:       signer,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger,
		now:          time.Now,
	}
}

// registrationLink composes the signup URL embedding token and email.
func (s *invitationService) registrationLink(email, token string) string {
	return fmt.Sprintf("%s/signup?token=%s&email=%s",
		s.baseURL, url.QueryEscape(token), url.QueryEscape(email))
}

// Create processes a single invitation. Outcomes are reported as a result
// value, never as an error: bulk dispatch treats each address independently
// and the single-address endpoint returns a one-element result list.
//
// A persisted record is deliberately NOT rolled back when mail delivery
// fails; the invitation exists even if the email bounced at send time.
func (s *invitationService) Create(ctx context.Context, email string, role domain.Role) domain.InvitationResult {
	email = normalizeEmail(email)
	if !emailRegexp.MatchString(email) {
		return domain.InvitationResult{Email: email, Status: domain.InvitationError, Detail: "invalid email format"}
	}

	existing, err := s.invRepo.GetByEmail(ctx, email)
	if err == nil {
		if !existing.Expired(s.now()) {
			return domain.InvitationResult{Email: email, Status: domain.InvitationAlreadyValid}
		}
		// Retire the expired record before creating a fresh one.
		if err := s.invRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, domain.ErrInvitationNotFound) {
			return domain.InvitationResult{Email: email, Status: domain.InvitationError, Detail: err.Error()}
		}
	} else if !errors.Is(err, domain.ErrInvitationNotFound) {
		return domain.InvitationResult{Email: email, Status: domain.InvitationError, Detail: err.Error()}
	}

	inv, err := s.persist(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationStillValid) {
			// Lost a race with a concurrent create for the same address.
			return domain.InvitationResult{Email: email, Status: domain.InvitationAlreadyValid}
		}
		return domain.InvitationResult{Email: email, Status: domain.InvitationError, Detail: err.Error()}
	}

	return s.deliver(ctx, inv)
}

// CreateBulk applies Create to each address independently; one failing
// entry never aborts the rest of the batch.
func (s *invitationService) CreateBulk(ctx context.Context, emails []string, role domain.Role) []domain.InvitationResult {
	results := make([]domain.InvitationResult, 0, len(emails))
	for _, email := range emails {
		results = append(results, s.Create(ctx, email, role))
	}
	return results
}

func (s *invitationService) persist(ctx context.Context, email string, role domain.Role) (*domain.Invitation, error) {
	token, err := s.signer.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	now := s.now()
	inv := &domain.Invitation{
		ID:        uuid.NewString(),
		Email:     email,
		Token:     token,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.InvitationTTL),
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invitationService) deliver(ctx context.Context, inv *domain.Invitation) domain.InvitationResult {
	link := s.registrationLink(inv.Email, inv.Token)
	data := &domain.InvitationEmailData{
		Email:        inv.Email,
		Link:         link,
		ExpiresHours: int(domain.InvitationTTL / time.Hour),
	}
	if err := s.emailService.SendInvitation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "invitation mail delivery failed", "email", inv.Email, "err", err)
		return domain.InvitationResult{Email: inv.Email, Status: domain.InvitationMailError, Detail: err.Error()}
	}
	return domain.InvitationResult{Email: inv.Email, Status: domain.InvitationSent, Link: link}
}

func (s *invitationService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Invitation, int, error) {
	return s.invRepo.List(ctx, p)
}

// Resend replaces an expired invitation with a fresh token and record.
// It is not a generic "send the same link again": a still-valid invitation
// is an error, surfaced to the caller as 400.
func (s *invitationService) Resend(ctx context.Context, email string) (domain.InvitationResult, error) {
	email = normalizeEmail(email)
	existing, err := s.invRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			return domain.InvitationResult{}, domain.ErrInvitationNotFound
		}
		return domain.InvitationResult{}, fmt.Errorf("failed to get invitation: %w", err)
	}
	if !existing.Expired(s.now()) {
		return domain.InvitationResult{}, domain.ErrInvitationStillValid
	}
	if err := s.invRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, domain.ErrInvitationNotFound) {
		return domain.InvitationResult{}, fmt.Errorf("failed to delete expired invitation: %w", err)
	}
	inv, err := s.persist(ctx, email, existing.Role)
	if err != nil {
		return domain.InvitationResult{}, fmt.Errorf("failed to recreate invitation: %w", err)
	}
	return s.deliver(ctx, inv), nil
}

// CompleteSignup redeems an invitation: the user is created first and the
// invitation deleted second, as separate steps. A failed deletion leaves a
// dangling record; that staleness is acceptable because the email now
// belongs to an existing user and a repeat signup is rejected by the
// email-uniqueness constraint.
func (s *invitationService) CompleteSignup(ctx context.Context, email, token, password string, profile domain.SignupProfile) (*domain.User, error) {
	email = normalizeEmail(email)
	inv, err := s.invRepo.GetByEmailAndToken(ctx, email, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			return nil, domain.ErrInvitationInvalid
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.Expired(s.now()) {
		return nil, domain.ErrInvitationExpired
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	now := s.now()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         profile.Name,
		LastName:     profile.LastName,
		Phone:        profile.Phone,
		Role:         inv.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	switch inv.Role {
	case domain.RoleStudent:
		student := &domain.Student{UserID: user.ID, Level: profile.Level, Age: profile.Age, IsActive: true}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			s.logger.WarnContext(ctx, "student profile creation failed after signup", "user_id", user.ID, "err", err)
		}
	case domain.RoleTrainer:
		trainer := &domain.Trainer{UserID: user.ID, IsActive: true}
		if err := s.trainerRepo.Create(ctx, trainer); err != nil {
			s.logger.WarnContext(ctx, "trainer profile creation failed after signup", "user_id", user.ID, "err", err)
		}
	}

	if err := s.invRepo.Delete(ctx, inv.ID); err != nil {
		s.logger.WarnContext(ctx, "invitation cleanup failed after signup", "email", email, "err", err)
	}
	return user, nil
}
