package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type sessionStudentRepository struct {
	DB *sql.DB
}

func NewSessionStudentRepository(db *sql.DB) domain.SessionStudentRepository {
	return &sessionStudentRepository{DB: db}
}

func (r *sessionStudentRepository) Create(ctx context.Context, ss *domain.SessionStudent) error {
	query := `
		INSERT INTO session_students (session_id, student_id)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, ss.SessionID, ss.StudentID).Scan(&ss.ID)
}

func (r *sessionStudentRepository) GetByID(ctx context.Context, id string) (*domain.SessionStudent, error) {
	query := `
		SELECT id, session_id, student_id
		FROM session_students
		WHERE id = $1
	`
	ss := &domain.SessionStudent{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&ss.ID, &ss.SessionID, &ss.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionStudentNotFound
		}
		return nil, err
	}
	return ss, nil
}

func (r *sessionStudentRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.SessionStudent, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_students`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, session_id, student_id
		FROM session_students
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	links := []*domain.SessionStudent{}
	for rows.Next() {
		ss := &domain.SessionStudent{}
		if err := rows.Scan(&ss.ID, &ss.SessionID, &ss.StudentID); err != nil {
			return nil, 0, err
		}
		links = append(links, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

func (r *sessionStudentRepository) Update(ctx context.Context, ss *domain.SessionStudent) error {
	query := `
		UPDATE session_students
		SET session_id = $1, student_id = $2
		WHERE id = $3
	`
	res, err := r.DB.ExecContext(ctx, query, ss.SessionID, ss.StudentID, ss.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionStudentNotFound
	}
	return nil
}

func (r *sessionStudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM session_students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionStudentNotFound
	}
	return nil
}
