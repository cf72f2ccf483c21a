package middleware

import (
	"context"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/domain"
)

type contextKey string

const claimKey contextKey = "claim"

// SetClaim returns a context carrying the authenticated claim.
func SetClaim(ctx context.Context, claim *domain.Claim) context.Context {
	return context.WithValue(ctx, claimKey, claim)
}

// ClaimFromContext returns the authenticated claim from the context, if present.
func ClaimFromContext(ctx context.Context) (*domain.Claim, bool) {
	claim, ok := ctx.Value(claimKey).(*domain.Claim)
	return claim, ok && claim != nil
}

func bearerToken(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", "invalid authorization format"
	}
	token := strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// claim in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, reason := bearerToken(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, reason)
				return
			}
			claim, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetClaim(r.Context(), claim)))
		}
	}
}

// OptionalAuth sets the claim when a valid Bearer token is present and calls
// next either way. Used by the admin-bootstrap endpoint, which is open until
// the first admin exists and claim-gated afterwards.
func OptionalAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if token, _ := bearerToken(r); token != "" {
				if claim, err := verifier.Verify(token); err == nil {
					r = r.WithContext(SetClaim(r.Context(), claim))
				}
			}
			next(w, r)
		}
	}
}
