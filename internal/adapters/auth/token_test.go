package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelcoach/internal/domain"
)

func TestJWTCodec_Issue(t *testing.T) {
	secret := "test-secret"
	codec := NewJWTCodec(secret)

	token, err := codec.Issue("user-123", "u@example.com", domain.RoleAdmin, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "u@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTCodec_Verify(t *testing.T) {
	codec := NewJWTCodec("test-secret")

	token, err := codec.Issue("user-123", "u@example.com", domain.RoleTrainer, time.Hour)
	require.NoError(t, err)

	claim, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claim.UserID)
	assert.Equal(t, domain.RoleTrainer, claim.Role)
}

func TestJWTCodec_Verify_wrong_secret(t *testing.T) {
	token, err := NewJWTCodec("secret-a").Issue("user-123", "u@example.com", domain.RoleStudent, time.Hour)
	require.NoError(t, err)

	_, err = NewJWTCodec("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestJWTCodec_Verify_expired(t *testing.T) {
	codec := NewJWTCodec("test-secret")
	token, err := codec.Issue("user-123", "u@example.com", domain.RoleStudent, -time.Minute)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.Error(t, err)
}

func TestJWTCodec_Verify_unknown_role(t *testing.T) {
	// A structurally valid token whose role claim is outside the closed set
	// must be rejected.
	secret := "test-secret"
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "u@example.com",
		Role:  "superuser",
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewJWTCodec(secret).Verify(raw)
	assert.Error(t, err)
}
