package services

import (
	"context"
	"fmt"

	"padelcoach/internal/domain"
)

type sessionService struct {
	sessionRepo domain.SessionRepository
	ssRepo      domain.SessionStudentRepository
}

func NewSessionService(sessionRepo domain.SessionRepository, ssRepo domain.SessionStudentRepository) domain.SessionService {
	return &sessionService{sessionRepo: sessionRepo, ssRepo: ssRepo}
}

func (s *sessionService) Create(ctx context.Context, in *domain.Session) (*domain.Session, error) {
	if in.TrainerID == "" || in.CourtID == "" {
		return nil, fmt.Errorf("trainer_id and court_id are required")
	}
	if err := s.sessionRepo.Create(ctx, in); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return in, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Session, int, error) {
	return s.sessionRepo.List(ctx, p)
}

func (s *sessionService) Update(ctx context.Context, in *domain.Session) (*domain.Session, error) {
	existing, err := s.sessionRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.TrainerID != "" {
		existing.TrainerID = in.TrainerID
	}
	if !in.Date.IsZero() {
		existing.Date = in.Date
	}
	if in.Time != "" {
		existing.Time = in.Time
	}
	if in.CourtID != "" {
		existing.CourtID = in.CourtID
	}
	if in.Notes != "" {
		existing.Notes = in.Notes
	}
	if err := s.sessionRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessionRepo.Delete(ctx, id)
}

func (s *sessionService) AddStudent(ctx context.Context, sessionID, studentID string) (*domain.SessionStudent, error) {
	if sessionID == "" || studentID == "" {
		return nil, fmt.Errorf("session_id and student_id are required")
	}
	ss := &domain.SessionStudent{SessionID: sessionID, StudentID: studentID}
	if err := s.ssRepo.Create(ctx, ss); err != nil {
		return nil, fmt.Errorf("failed to link student to session: %w", err)
	}
	return ss, nil
}

func (s *sessionService) GetStudentLink(ctx context.Context, id string) (*domain.SessionStudent, error) {
	return s.ssRepo.GetByID(ctx, id)
}

func (s *sessionService) ListStudentLinks(ctx context.Context, p domain.PaginationParams) ([]*domain.SessionStudent, int, error) {
	return s.ssRepo.List(ctx, p)
}

func (s *sessionService) UpdateStudentLink(ctx context.Context, in *domain.SessionStudent) (*domain.SessionStudent, error) {
	existing, err := s.ssRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.SessionID != "" {
		existing.SessionID = in.SessionID
	}
	if in.StudentID != "" {
		existing.StudentID = in.StudentID
	}
	if err := s.ssRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *sessionService) RemoveStudentLink(ctx context.Context, id string) error {
	return s.ssRepo.Delete(ctx, id)
}
