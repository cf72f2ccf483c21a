package domain

import (
	"context"
	"errors"
)

var ErrTrainerNotFound = errors.New("trainer not found")

// Trainer is the profile record extending a User who coaches sessions.
// swagger:model Trainer
type Trainer struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	IsActive bool   `json:"is_active"`
}

// TrainerRepository defines storage operations for trainer profiles.
type TrainerRepository interface {
	Create(ctx context.Context, t *Trainer) error
	GetByID(ctx context.Context, id string) (*Trainer, error)
	List(ctx context.Context, p PaginationParams) ([]*Trainer, int, error)
	SetActive(ctx context.Context, id string, active bool) error
}

// TrainerService defines CRUD logic for trainer profiles.
type TrainerService interface {
	Create(ctx context.Context, userID string) (*Trainer, error)
	GetByID(ctx context.Context, id string) (*Trainer, error)
	List(ctx context.Context, p PaginationParams) ([]*Trainer, int, error)
	SetActive(ctx context.Context, id string, active bool) (*Trainer, error)
	Deactivate(ctx context.Context, id string) error
}
