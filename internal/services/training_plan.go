package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"padelcoach/internal/domain"
)

type trainingPlanService struct {
	planRepo domain.TrainingPlanRepository
}

func NewTrainingPlanService(planRepo domain.TrainingPlanRepository) domain.TrainingPlanService {
	return &trainingPlanService{planRepo: planRepo}
}

func (s *trainingPlanService) Create(ctx context.Context, trainerID, title, description, fileURL string) (*domain.TrainingPlan, error) {
	title = strings.TrimSpace(title)
	if trainerID == "" || title == "" {
		return nil, fmt.Errorf("trainer_id and title are required")
	}
	plan := &domain.TrainingPlan{
		TrainerID:   trainerID,
		Title:       title,
		Description: description,
		FileURL:     fileURL,
		CreatedAt:   time.Now(),
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create training plan: %w", err)
	}
	return plan, nil
}

func (s *trainingPlanService) GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	return s.planRepo.GetByID(ctx, id)
}

func (s *trainingPlanService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.TrainingPlan, int, error) {
	return s.planRepo.List(ctx, p)
}

func (s *trainingPlanService) Update(ctx context.Context, in *domain.TrainingPlan) (*domain.TrainingPlan, error) {
	existing, err := s.planRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.TrainerID != "" {
		existing.TrainerID = in.TrainerID
	}
	if in.Title != "" {
		existing.Title = in.Title
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if in.FileURL != "" {
		existing.FileURL = in.FileURL
	}
	if err := s.planRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *trainingPlanService) Delete(ctx context.Context, id string) error {
	return s.planRepo.Delete(ctx, id)
}
