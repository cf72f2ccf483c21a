package domain

import (
	"context"
	"errors"
)

var ErrCourtNotFound = errors.New("court not found")

// Court is a playable court at a club. Deletion is physical, unlike users
// and profiles which are soft-deactivated.
// swagger:model Court
type Court struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CourtType string `json:"court_type"` // e.g. "indoor" or "outdoor"
	Location  string `json:"location"`
}

// CourtRepository defines storage operations for courts.
type CourtRepository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, p PaginationParams) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id string) error
}

// CourtService defines CRUD logic for courts.
type CourtService interface {
	Create(ctx context.Context, name, courtType, location string) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, p PaginationParams) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) (*Court, error)
	Delete(ctx context.Context, id string) error
}
