package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"padelcoach/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
}

// NewUserService creates a UserService for admin-driven user management.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher) domain.UserService {
	return &userService{userRepo: userRepo, hasher: hasher}
}

func (s *userService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.User, int, error) {
	return s.userRepo.List(ctx, p)
}

func (s *userService) Create(ctx context.Context, email, password, name, lastName, phone string, role domain.Role) (*domain.User, error) {
	email = normalizeEmail(email)
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	now := time.Now()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		LastName:     strings.TrimSpace(lastName),
		Phone:        strings.TrimSpace(phone),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAdmin bootstraps the first admin without authentication; once any
// admin exists, only an authenticated admin may create another.
func (s *userService) CreateAdmin(ctx context.Context, claim *domain.Claim, email, password, name, lastName, phone string) (*domain.User, error) {
	hasAdmin, err := s.userRepo.HasAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if hasAdmin {
		if claim == nil || claim.Role != domain.RoleAdmin {
			return nil, domain.ErrForbidden
		}
	}
	return s.Create(ctx, email, password, name, lastName, phone, domain.RoleAdmin)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update applies non-empty profile fields and, when setActive is non-nil,
// the active flag. The flag is ignored on the caller's own account so an
// admin cannot sideline themselves through an update.
func (s *userService) Update(ctx context.Context, claim *domain.Claim, user *domain.User, setActive *bool) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(user.Name); v != "" {
		existing.Name = v
	}
	if v := strings.TrimSpace(user.LastName); v != "" {
		existing.LastName = v
	}
	if v := strings.TrimSpace(user.Phone); v != "" {
		existing.Phone = v
	}
	if user.Role != "" && user.Role != existing.Role {
		existing.Role = user.Role
	}
	if setActive != nil && (claim == nil || existing.ID != claim.UserID) {
		existing.IsActive = *setActive
	}
	existing.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Deactivate soft-deletes: the row stays, is_active flips to false.
func (s *userService) Deactivate(ctx context.Context, id string) error {
	return s.userRepo.SetActive(ctx, id, false)
}
