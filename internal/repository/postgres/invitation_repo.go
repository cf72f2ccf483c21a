package postgres

import (
	"context"
	"database/sql"
	"errors"

	"padelcoach/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

// NewInvitationRepository returns a domain.InvitationRepository implemented
// with Postgres. The invitations table keeps a unique constraint on email;
// a racing create for the same address surfaces as ErrInvitationStillValid.
func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (id, email, token, role, used, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		inv.ID, inv.Email, inv.Token, string(inv.Role), inv.Used, inv.CreatedAt, inv.ExpiresAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrInvitationStillValid
	}
	return err
}

func (r *invitationRepository) GetByEmail(ctx context.Context, email string) (*domain.Invitation, error) {
	query := `
		SELECT id, email, token, role, used, created_at, expires_at
		FROM invitations
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *invitationRepository) GetByEmailAndToken(ctx context.Context, email, token string) (*domain.Invitation, error) {
	query := `
		SELECT id, email, token, role, used, created_at, expires_at
		FROM invitations
		WHERE email = $1 AND token = $2
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email, token))
}

func (r *invitationRepository) scanOne(row *sql.Row) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var role string
	err := row.Scan(&inv.ID, &inv.Email, &inv.Token, &role, &inv.Used, &inv.CreatedAt, &inv.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	inv.Role = domain.Role(role)
	return inv, nil
}

func (r *invitationRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Invitation, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM invitations`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, email, token, role, used, created_at, expires_at
		FROM invitations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invs := []*domain.Invitation{}
	for rows.Next() {
		inv := &domain.Invitation{}
		var role string
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Token, &role, &inv.Used, &inv.CreatedAt, &inv.ExpiresAt); err != nil {
			return nil, 0, err
		}
		inv.Role = domain.Role(role)
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return invs, total, nil
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}
