package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"padelcoach/internal/domain"
)

// linkSigner produces opaque URL-safe tokens of the form
// payload.nonce.timestamp.signature (each part base64url-encoded except the
// timestamp), signed with HMAC-SHA256 over the first three parts. The salt
// namespaces tokens per purpose so an invitation token can never pass as a
// reset token even under the same secret.
type linkSigner struct {
	secret []byte
	salt   string
}

// NewLinkSigner returns a LinkTokenSigner for the given secret and purpose salt.
func NewLinkSigner(secret, salt string) domain.LinkTokenSigner {
	return &linkSigner{secret: []byte(secret), salt: salt}
}

func (s *linkSigner) Issue(payload string) (string, error) {
	nonce := uuid.NewString()
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	body := s.encode(payload) + "." + s.encode(nonce) + "." + ts
	return body + "." + s.sign(body), nil
}

func (s *linkSigner) Verify(token string, maxAge time.Duration) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", domain.ErrInvalidToken
	}
	body := strings.Join(parts[:3], ".")
	if !hmac.Equal([]byte(s.sign(body)), []byte(parts[3])) {
		return "", domain.ErrInvalidToken
	}
	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	issued, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	if maxAge > 0 && time.Since(time.Unix(issued, 0)) > maxAge {
		return "", fmt.Errorf("%w: token too old", domain.ErrInvalidToken)
	}
	return string(payloadBytes), nil
}

func (s *linkSigner) encode(v string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(v))
}

func (s *linkSigner) sign(body string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(s.salt))
	mac.Write([]byte("."))
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
