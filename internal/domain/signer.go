package domain

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned when a signed link token fails signature
// verification or cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")

// LinkTokenSigner issues and verifies the opaque signed tokens embedded in
// invitation and password-reset links. Tokens are tamper-evident and carry
// their payload and issue time; validity windows are nevertheless gated by
// the owning database record, not by the embedded timestamp.
type LinkTokenSigner interface {
	Issue(payload string) (string, error)
	// Verify checks the signature and returns the payload. A maxAge of zero
	// or less disables the age check.
	Verify(token string, maxAge time.Duration) (payload string, err error)
}
