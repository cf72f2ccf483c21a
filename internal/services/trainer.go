package services

import (
	"context"
	"fmt"

	"padelcoach/internal/domain"
)

type trainerService struct {
	trainerRepo domain.TrainerRepository
}

func NewTrainerService(trainerRepo domain.TrainerRepository) domain.TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

func (s *trainerService) Create(ctx context.Context, userID string) (*domain.Trainer, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	trainer := &domain.Trainer{UserID: userID, IsActive: true}
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}
	return trainer, nil
}

func (s *trainerService) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	return s.trainerRepo.GetByID(ctx, id)
}

func (s *trainerService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Trainer, int, error) {
	return s.trainerRepo.List(ctx, p)
}

func (s *trainerService) SetActive(ctx context.Context, id string, active bool) (*domain.Trainer, error) {
	if err := s.trainerRepo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.trainerRepo.GetByID(ctx, id)
}

func (s *trainerService) Deactivate(ctx context.Context, id string) error {
	return s.trainerRepo.SetActive(ctx, id, false)
}
