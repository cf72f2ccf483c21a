package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound        = errors.New("session not found")
	ErrSessionStudentNotFound = errors.New("session-student link not found")
)

// Session is a scheduled coaching event on a court, led by a trainer.
// Students are attached through SessionStudent join rows.
// swagger:model Session
type Session struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainer_id"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"` // start time, "HH:MM"
	CourtID   string    `json:"court_id"`
	Notes     string    `json:"notes"`
}

// SessionStudent links one student to one session. Pure many-to-many join
// with its own identity; cardinality is unconstrained on both sides.
// swagger:model SessionStudent
type SessionStudent struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	StudentID string `json:"student_id"`
}

// SessionRepository defines storage operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context, p PaginationParams) ([]*Session, int, error)
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// SessionStudentRepository defines storage operations for the join rows.
type SessionStudentRepository interface {
	Create(ctx context.Context, ss *SessionStudent) error
	GetByID(ctx context.Context, id string) (*SessionStudent, error)
	List(ctx context.Context, p PaginationParams) ([]*SessionStudent, int, error)
	Update(ctx context.Context, ss *SessionStudent) error
	Delete(ctx context.Context, id string) error
}

// SessionService defines CRUD logic for sessions and their student links.
type SessionService interface {
	Create(ctx context.Context, s *Session) (*Session, error)
	GetByID(ctx context.Context, id string) (*Session, error)
	List(ctx context.Context, p PaginationParams) ([]*Session, int, error)
	Update(ctx context.Context, s *Session) (*Session, error)
	Delete(ctx context.Context, id string) error

	AddStudent(ctx context.Context, sessionID, studentID string) (*SessionStudent, error)
	GetStudentLink(ctx context.Context, id string) (*SessionStudent, error)
	ListStudentLinks(ctx context.Context, p PaginationParams) ([]*SessionStudent, int, error)
	UpdateStudentLink(ctx context.Context, ss *SessionStudent) (*SessionStudent, error)
	RemoveStudentLink(ctx context.Context, id string) error
}
