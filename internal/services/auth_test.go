package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelcoach/internal/domain"
)

func TestAuthServiceLogin(t *testing.T) {
	newSvc := func(users ...*domain.User) domain.AuthService {
		repo := newFakeUserRepo()
		for _, u := range users {
			repo.add(u)
		}
		return NewAuthService(repo, fakeHasher{}, &fakeTokenIssuer{}, time.Hour)
	}

	active := &domain.User{
		ID: "user-1", Email: "coach@example.com",
		PasswordHash: "hash-correcthorse", Role: domain.RoleTrainer, IsActive: true,
	}

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := newSvc(active).Login(context.Background(), "Coach@Example.com", "correcthorse")
		require.NoError(t, err)
		assert.Equal(t, "jwt-user-1", token)
		require.NotNil(t, user)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := newSvc().Login(context.Background(), "nobody@example.com", "correcthorse")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := newSvc(active).Login(context.Background(), "coach@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("inactive account with valid credentials", func(t *testing.T) {
		inactive := *active
		inactive.IsActive = false
		_, _, err := newSvc(&inactive).Login(context.Background(), "coach@example.com", "correcthorse")
		assert.ErrorIs(t, err, domain.ErrUserInactive)
	})

	t.Run("inactive account with wrong password reports bad credentials", func(t *testing.T) {
		inactive := *active
		inactive.IsActive = false
		_, _, err := newSvc(&inactive).Login(context.Background(), "coach@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
