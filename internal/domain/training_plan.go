package domain

import (
	"context"
	"errors"
	"time"
)

var ErrTrainingPlanNotFound = errors.New("training plan not found")

// TrainingPlan is document metadata owned by a trainer.
// swagger:model TrainingPlan
type TrainingPlan struct {
	ID          string    `json:"id"`
	TrainerID   string    `json:"trainer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"file_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// TrainingPlanRepository defines storage operations for training plans.
type TrainingPlanRepository interface {
	Create(ctx context.Context, tp *TrainingPlan) error
	GetByID(ctx context.Context, id string) (*TrainingPlan, error)
	List(ctx context.Context, p PaginationParams) ([]*TrainingPlan, int, error)
	Update(ctx context.Context, tp *TrainingPlan) error
	Delete(ctx context.Context, id string) error
}

// TrainingPlanService defines CRUD logic for training plans.
type TrainingPlanService interface {
	Create(ctx context.Context, trainerID, title, description, fileURL string) (*TrainingPlan, error)
	GetByID(ctx context.Context, id string) (*TrainingPlan, error)
	List(ctx context.Context, p PaginationParams) ([]*TrainingPlan, int, error)
	Update(ctx context.Context, tp *TrainingPlan) (*TrainingPlan, error)
	Delete(ctx context.Context, id string) error
}
