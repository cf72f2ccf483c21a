package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{DB: db}
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `
		INSERT INTO students (user_id, level, age, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.UserID, s.Level, s.Age, s.IsActive).Scan(&s.ID)
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `
		SELECT id, user_id, level, age, is_active
		FROM students
		WHERE id = $1
	`
	s := &domain.Student{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.Level, &s.Age, &s.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Student, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, user_id, level, age, is_active
		FROM students
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []*domain.Student{}
	for rows.Next() {
		s := &domain.Student{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Level, &s.Age, &s.IsActive); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepository) Update(ctx context.Context, s *domain.Student) error {
	query := `
		UPDATE students
		SET level = $1, age = $2, is_active = $3
		WHERE id = $4
	`
	res, err := r.DB.ExecContext(ctx, query, s.Level, s.Age, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE students SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
