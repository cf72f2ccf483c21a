package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (trainer_id, session_date, start_time, court_id, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.TrainerID, s.Date, s.Time, s.CourtID, s.Notes).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, trainer_id, session_date, start_time, court_id, notes
		FROM sessions
		WHERE id = $1
	`
	s := &domain.Session{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.TrainerID, &s.Date, &s.Time, &s.CourtID, &s.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Session, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, trainer_id, session_date, start_time, court_id, notes
		FROM sessions
		ORDER BY session_date DESC, start_time DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessions := []*domain.Session{}
	for rows.Next() {
		s := &domain.Session{}
		if err := rows.Scan(&s.ID, &s.TrainerID, &s.Date, &s.Time, &s.CourtID, &s.Notes); err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `
		UPDATE sessions
		SET trainer_id = $1, session_date = $2, start_time = $3, court_id = $4, notes = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query, s.TrainerID, s.Date, s.Time, s.CourtID, s.Notes, s.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
