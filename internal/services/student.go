package services

import (
	"context"
	"fmt"

	"padelcoach/internal/domain"
)

type studentService struct {
	studentRepo domain.StudentRepository
}

func NewStudentService(studentRepo domain.StudentRepository) domain.StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) Create(ctx context.Context, userID, level string, age int) (*domain.Student, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	student := &domain.Student{UserID: userID, Level: level, Age: age, IsActive: true}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Student, int, error) {
	return s.studentRepo.List(ctx, p)
}

func (s *studentService) Update(ctx context.Context, in *domain.Student, setActive *bool) (*domain.Student, error) {
	existing, err := s.studentRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Level != "" {
		existing.Level = in.Level
	}
	if in.Age != 0 {
		existing.Age = in.Age
	}
	if setActive != nil {
		existing.IsActive = *setActive
	}
	if err := s.studentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *studentService) Deactivate(ctx context.Context, id string) error {
	return s.studentRepo.SetActive(ctx, id, false)
}
