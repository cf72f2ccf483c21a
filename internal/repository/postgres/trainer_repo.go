package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type trainerRepository struct {
	DB *sql.DB
}

func NewTrainerRepository(db *sql.DB) domain.TrainerRepository {
	return &trainerRepository{DB: db}
}

func (r *trainerRepository) Create(ctx context.Context, t *domain.Trainer) error {
	query := `
		INSERT INTO trainers (user_id, is_active)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, t.UserID, t.IsActive).Scan(&t.ID)
}

func (r *trainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	query := `
		SELECT id, user_id, is_active
		FROM trainers
		WHERE id = $1
	`
	t := &domain.Trainer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.UserID, &t.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *trainerRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Trainer, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM trainers`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, user_id, is_active
		FROM trainers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	trainers := []*domain.Trainer{}
	for rows.Next() {
		t := &domain.Trainer{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.IsActive); err != nil {
			return nil, 0, err
		}
		trainers = append(trainers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return trainers, total, nil
}

func (r *trainerRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE trainers SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTrainerNotFound
	}
	return nil
}
