package services

import (
	"context"
	"fmt"
	"strings"

	"padelcoach/internal/domain"
)

type courtService struct {
	courtRepo domain.CourtRepository
}

func NewCourtService(courtRepo domain.CourtRepository) domain.CourtService {
	return &courtService{courtRepo: courtRepo}
}

func (s *courtService) Create(ctx context.Context, name, courtType, location string) (*domain.Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	court := &domain.Court{Name: name, CourtType: courtType, Location: location}
	if err := s.courtRepo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("failed to create court: %w", err)
	}
	return court, nil
}

func (s *courtService) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	return s.courtRepo.GetByID(ctx, id)
}

func (s *courtService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Court, int, error) {
	return s.courtRepo.List(ctx, p)
}

func (s *courtService) Update(ctx context.Context, in *domain.Court) (*domain.Court, error) {
	existing, err := s.courtRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.CourtType != "" {
		existing.CourtType = in.CourtType
	}
	if in.Location != "" {
		existing.Location = in.Location
	}
	if err := s.courtRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the court row outright; courts are not soft-deleted.
func (s *courtService) Delete(ctx context.Context, id string) error {
	return s.courtRepo.Delete(ctx, id)
}
