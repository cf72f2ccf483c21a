package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type trainingPlanRepository struct {
	DB *sql.DB
}

func NewTrainingPlanRepository(db *sql.DB) domain.TrainingPlanRepository {
	return &trainingPlanRepository{DB: db}
}

func (r *trainingPlanRepository) Create(ctx context.Context, tp *domain.TrainingPlan) error {
	query := `
		INSERT INTO training_plans (trainer_id, title, description, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, tp.TrainerID, tp.Title, tp.Description, tp.FileURL, tp.CreatedAt).Scan(&tp.ID)
}

func (r *trainingPlanRepository) GetByID(ctx context.Context, id string) (*domain.TrainingPlan, error) {
	query := `
		SELECT id, trainer_id, title, description, file_url, created_at
		FROM training_plans
		WHERE id = $1
	`
	tp := &domain.TrainingPlan{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&tp.ID, &tp.TrainerID, &tp.Title, &tp.Description, &tp.FileURL, &tp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainingPlanNotFound
		}
		return nil, err
	}
	return tp, nil
}

func (r *trainingPlanRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.TrainingPlan, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM training_plans`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, trainer_id, title, description, file_url, created_at
		FROM training_plans
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	plans := []*domain.TrainingPlan{}
	for rows.Next() {
		tp := &domain.TrainingPlan{}
		if err := rows.Scan(&tp.ID, &tp.TrainerID, &tp.Title, &tp.Description, &tp.FileURL, &tp.CreatedAt); err != nil {
			return nil, 0, err
		}
		plans = append(plans, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return plans, total, nil
}

func (r *trainingPlanRepository) Update(ctx context.Context, tp *domain.TrainingPlan) error {
	query := `
		UPDATE training_plans
		SET trainer_id = $1, title = $2, description = $3, file_url = $4
		WHERE id = $5
	`
	res, err := r.DB.ExecContext(ctx, query, tp.TrainerID, tp.Title, tp.Description, tp.FileURL, tp.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTrainingPlanNotFound
	}
	return nil
}

func (r *trainingPlanRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM training_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTrainingPlanNotFound
	}
	return nil
}
