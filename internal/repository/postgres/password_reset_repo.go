package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"padelcoach/internal/domain"
)

type passwordResetRepository struct {
	DB *sql.DB
}

// NewPasswordResetRepository returns a domain.PasswordResetRepository
// implemented with Postgres.
func NewPasswordResetRepository(db *sql.DB) domain.PasswordResetRepository {
	return &passwordResetRepository{DB: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, token, used, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, t.ID, t.UserID, t.Token, t.Used, t.CreatedAt, t.ExpiresAt)
	return err
}

func (r *passwordResetRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	query := `
		SELECT id, user_id, token, used, created_at, expires_at
		FROM password_reset_tokens
		WHERE token = $1
	`
	t := &domain.PasswordResetToken{}
	err := r.DB.QueryRowContext(ctx, query, token).
		Scan(&t.ID, &t.UserID, &t.Token, &t.Used, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	return t, nil
}

// Consume marks the token used and sets the owning user's new password hash
// in one transaction. The used=false precondition on the update makes the
// token single-use even when two requests race on it.
func (r *passwordResetRepository) Consume(ctx context.Context, tokenID, userID, passwordHash string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE password_reset_tokens SET used = TRUE WHERE id = $1 AND used = FALSE`, tokenID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrResetTokenUsed
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return err
	}
	n, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit()
}
