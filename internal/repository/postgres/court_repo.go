package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type courtRepository struct {
	DB *sql.DB
}

func NewCourtRepository(db *sql.DB) domain.CourtRepository {
	return &courtRepository{DB: db}
}

func (r *courtRepository) Create(ctx context.Context, c *domain.Court) error {
	query := `
		INSERT INTO courts (name, court_type, location)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Name, c.CourtType, c.Location).Scan(&c.ID)
}

func (r *courtRepository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query := `
		SELECT id, name, court_type, location
		FROM courts
		WHERE id = $1
	`
	c := &domain.Court{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.CourtType, &c.Location)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *courtRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Court, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM courts`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, name, court_type, location
		FROM courts
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	courts := []*domain.Court{}
	for rows.Next() {
		c := &domain.Court{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CourtType, &c.Location); err != nil {
			return nil, 0, err
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return courts, total, nil
}

func (r *courtRepository) Update(ctx context.Context, c *domain.Court) error {
	query := `
		UPDATE courts
		SET name = $1, court_type = $2, location = $3
		WHERE id = $4
	`
	res, err := r.DB.ExecContext(ctx, query, c.Name, c.CourtType, c.Location, c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}

func (r *courtRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}
