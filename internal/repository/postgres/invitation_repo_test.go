package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelcoach/internal/domain"
)

func TestInvitationRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	inv := &domain.Invitation{
		ID:        "inv-1",
		Email:     "alice@example.com",
		Token:     "tok-1",
		Role:      domain.RoleStudent,
		CreatedAt: now,
		ExpiresAt: now.Add(domain.InvitationTTL),
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO invitations`).
					WithArgs("inv-1", "alice@example.com", "tok-1", "student", false, now, now.Add(domain.InvitationTTL)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unique violation on email",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO invitations`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrInvitationStillValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewInvitationRepository(db)
			err = repo.Create(ctx, inv)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvitationRepository_GetByEmailAndToken(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "email", "token", "role", "used", "created_at", "expires_at"}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, token, role, used, created_at, expires_at\s+FROM invitations`).
			WithArgs("alice@example.com", "tok-1").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("inv-1", "alice@example.com", "tok-1", "trainer", false, now, now.Add(domain.InvitationTTL)))

		repo := NewInvitationRepository(db)
		inv, err := repo.GetByEmailAndToken(ctx, "alice@example.com", "tok-1")
		require.NoError(t, err)
		assert.Equal(t, "inv-1", inv.ID)
		assert.Equal(t, domain.RoleTrainer, inv.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, token, role, used, created_at, expires_at\s+FROM invitations`).
			WithArgs("alice@example.com", "wrong").
			WillReturnRows(sqlmock.NewRows(cols))

		repo := NewInvitationRepository(db)
		_, err = repo.GetByEmailAndToken(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvitationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM invitations`).
			WithArgs("inv-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewInvitationRepository(db)
		require.NoError(t, repo.Delete(ctx, "inv-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM invitations`).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewInvitationRepository(db)
		assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrInvitationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
