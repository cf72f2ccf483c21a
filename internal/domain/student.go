package domain

import (
	"context"
	"errors"
)

var ErrStudentNotFound = errors.New("student not found")

// Student is the profile record extending a User with coaching attributes.
// IsActive is a soft-delete flag independent of the underlying User's.
// swagger:model Student
type Student struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Level    string `json:"level"`
	Age      int    `json:"age"`
	IsActive bool   `json:"is_active"`
}

// StudentRepository defines storage operations for student profiles.
type StudentRepository interface {
	Create(ctx context.Context, s *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context, p PaginationParams) ([]*Student, int, error)
	Update(ctx context.Context, s *Student) error
	SetActive(ctx context.Context, id string, active bool) error
}

// StudentService defines CRUD logic for student profiles.
type StudentService interface {
	Create(ctx context.Context, userID, level string, age int) (*Student, error)
	GetByID(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context, p PaginationParams) ([]*Student, int, error)
	Update(ctx context.Context, s *Student, setActive *bool) (*Student, error)
	Deactivate(ctx context.Context, id string) error
}
