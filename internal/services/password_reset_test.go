package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelcoach/internal/domain"
)

func newTestPasswordResetService(t *testing.T) (*passwordResetService, *fakeResetRepo, *fakeUserRepo, *fakeEmailService) {
	t.Helper()
	resetRepo := newFakeResetRepo()
	userRepo := newFakeUserRepo()
	mail := newFakeEmailService()
	svc := &passwordResetService{
		resetRepo:    resetRepo,
		userRepo:     userRepo,
		hasher:       fakeHasher{},
		signer:       &fakeSigner{},
		emailService: mail,
		baseURL:      "https://app.example.com",
		logger:       slog.New(slog.DiscardHandler),
		now:          time.Now,
	}
	return svc, resetRepo, userRepo, mail
}

func TestPasswordResetRequest(t *testing.T) {
	t.Run("stores token and mails the link", func(t *testing.T) {
		svc, resetRepo, userRepo, mail := newTestPasswordResetService(t)
		userRepo.add(&domain.User{ID: "user-1", Email: "pat@example.com", IsActive: true})

		err := svc.Request(context.Background(), "Pat@Example.com")

		require.NoError(t, err)
		require.Len(t, mail.resetsSent, 1)
		require.Len(t, resetRepo.byToken, 1)
		for _, record := range resetRepo.byToken {
			assert.Equal(t, "user-1", record.UserID)
			assert.False(t, record.Used)
			assert.WithinDuration(t, time.Now().Add(domain.ResetTokenTTL), record.ExpiresAt, time.Minute)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, resetRepo, _, mail := newTestPasswordResetService(t)

		err := svc.Request(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Empty(t, resetRepo.byToken)
		assert.Empty(t, mail.resetsSent)
	})

	t.Run("repeated requests stack independent tokens", func(t *testing.T) {
		svc, resetRepo, userRepo, _ := newTestPasswordResetService(t)
		userRepo.add(&domain.User{ID: "user-1", Email: "pat@example.com", IsActive: true})

		require.NoError(t, svc.Request(context.Background(), "pat@example.com"))
		require.NoError(t, svc.Request(context.Background(), "pat@example.com"))

		assert.Len(t, resetRepo.byToken, 2, "earlier tokens are not invalidated")
	})
}

func TestPasswordResetReset(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	issue := func(t *testing.T, svc *passwordResetService, userRepo *fakeUserRepo) string {
		t.Helper()
		userRepo.add(&domain.User{ID: "user-1", Email: "pat@example.com", PasswordHash: "hash-oldpassword", IsActive: true})
		svc.now = func() time.Time { return base }
		require.NoError(t, svc.Request(context.Background(), "pat@example.com"))
		for token := range svc.resetRepo.(*fakeResetRepo).byToken {
			return token
		}
		t.Fatal("no token issued")
		return ""
	}

	t.Run("succeeds within the window", func(t *testing.T) {
		svc, resetRepo, userRepo, _ := newTestPasswordResetService(t)
		token := issue(t, svc, userRepo)

		svc.now = func() time.Time { return base.Add(29 * time.Minute) }
		err := svc.Reset(context.Background(), token, "brand-new-password")

		require.NoError(t, err)
		require.Len(t, resetRepo.consumed, 1)
	})

	t.Run("expired after the window", func(t *testing.T) {
		svc, resetRepo, userRepo, _ := newTestPasswordResetService(t)
		token := issue(t, svc, userRepo)

		svc.now = func() time.Time { return base.Add(31 * time.Minute) }
		err := svc.Reset(context.Background(), token, "brand-new-password")

		assert.ErrorIs(t, err, domain.ErrResetTokenExpired)
		assert.Empty(t, resetRepo.consumed)
	})

	t.Run("second redemption is rejected", func(t *testing.T) {
		svc, _, userRepo, _ := newTestPasswordResetService(t)
		token := issue(t, svc, userRepo)
		svc.now = func() time.Time { return base.Add(time.Minute) }
		require.NoError(t, svc.Reset(context.Background(), token, "brand-new-password"))

		err := svc.Reset(context.Background(), token, "another-password")

		assert.ErrorIs(t, err, domain.ErrResetTokenUsed)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, _, _, _ := newTestPasswordResetService(t)
		err := svc.Reset(context.Background(), "never-issued", "brand-new-password")
		assert.ErrorIs(t, err, domain.ErrResetTokenInvalid)
	})

	t.Run("short password leaves token unredeemed", func(t *testing.T) {
		svc, resetRepo, userRepo, _ := newTestPasswordResetService(t)
		token := issue(t, svc, userRepo)
		svc.now = func() time.Time { return base.Add(time.Minute) }

		err := svc.Reset(context.Background(), token, "tiny")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
		assert.Empty(t, resetRepo.consumed)
		// Still redeemable with a valid password afterwards.
		assert.NoError(t, svc.Reset(context.Background(), token, "brand-new-password"))
	})
}
