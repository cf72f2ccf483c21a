package controllers

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

type fakeEmailListParser struct {
	emails []string
	err    error
}

func (f *fakeEmailListParser) Parse(data []byte) ([]string, error) { return f.emails, f.err }

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(middleware.SetClaim(r.Context(), &domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}))
}

func asTrainer(r *http.Request) *http.Request {
	return r.WithContext(middleware.SetClaim(r.Context(), &domain.Claim{UserID: "trainer-1", Role: domain.RoleTrainer}))
}

func TestInvitationControllerCreate(t *testing.T) {
	t.Run("JSON body returns per-address results", func(t *testing.T) {
		svc := &fakeInvitationService{results: []domain.InvitationResult{
			{Email: "a@example.com", Status: domain.InvitationSent},
			{Email: "b@example.com", Status: domain.InvitationAlreadyValid},
			{Email: "c@example.com", Status: domain.InvitationMailError, Detail: "smtp refused"},
		}}
		c := NewInvitationController(slog.New(slog.DiscardHandler), svc, &fakeEmailListParser{})

		body := `{"emails":["a@example.com","b@example.com","c@example.com"],"role":"student"}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(body)))
		w := httptest.NewRecorder()
		c.Create(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		require.Nil(t, env.Error)
		items := env.Data.([]any)
		require.Len(t, items, 3)
		assert.Equal(t, "sent", items[0].(map[string]any)["status"])
		assert.Equal(t, "already_valid", items[1].(map[string]any)["status"])
		assert.Equal(t, "mail_error", items[2].(map[string]any)["status"])
		assert.Equal(t, domain.RoleStudent, svc.gotRole)
	})

	t.Run("multipart CSV upload", func(t *testing.T) {
		svc := &fakeInvitationService{}
		parser := &fakeEmailListParser{emails: []string{"a@example.com", "b@example.com"}}
		c := NewInvitationController(slog.New(slog.DiscardHandler), svc, parser)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "emails.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("a@example.com\nb@example.com\n"))
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("role", "trainer"))
		require.NoError(t, mw.Close())

		r := asAdmin(httptest.NewRequest(http.MethodPost, "/invitations", &buf))
		r.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		c.Create(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, svc.gotEmails)
		assert.Equal(t, domain.RoleTrainer, svc.gotRole)
	})

	t.Run("multipart without file part", func(t *testing.T) {
		c := NewInvitationController(slog.New(slog.DiscardHandler), &fakeInvitationService{}, &fakeEmailListParser{})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("role", "student"))
		require.NoError(t, mw.Close())

		r := asAdmin(httptest.NewRequest(http.MethodPost, "/invitations", &buf))
		r.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		c.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty email list", func(t *testing.T) {
		c := NewInvitationController(slog.New(slog.DiscardHandler), &fakeInvitationService{}, &fakeEmailListParser{})
		body := `{"emails":[],"role":"student"}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(body)))
		w := httptest.NewRecorder()
		c.Create(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		svc := &fakeInvitationService{}
		c := NewInvitationController(slog.New(slog.DiscardHandler), svc, &fakeEmailListParser{})
		body := `{"emails":["a@example.com"],"role":"student"}`
		r := asTrainer(httptest.NewRequest(http.MethodPost, "/invitations", strings.NewReader(body)))
		w := httptest.NewRecorder()
		c.Create(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, svc.gotEmails)
	})
}

func TestInvitationControllerList(t *testing.T) {
	svc := &fakeInvitationService{listItems: []*domain.Invitation{
		{ID: "inv-1", Email: "a@example.com", Role: domain.RoleStudent},
	}}
	c := NewInvitationController(slog.New(slog.DiscardHandler), svc, &fakeEmailListParser{})

	t.Run("admin lists", func(t *testing.T) {
		r := asAdmin(httptest.NewRequest(http.MethodGet, "/invitations", nil))
		w := httptest.NewRecorder()
		c.List(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		data := env.Data.(map[string]any)
		assert.Len(t, data["items"], 1)
		meta := data["meta"].(map[string]any)
		assert.Equal(t, float64(1), meta["total"])
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c.List(w, httptest.NewRequest(http.MethodGet, "/invitations", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestInvitationControllerResend(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"unknown email", domain.ErrInvitationNotFound, http.StatusNotFound, h.ErrCodeNotFound},
		{"still valid", domain.ErrInvitationStillValid, http.StatusBadRequest, h.ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeInvitationService{
				resend:    domain.InvitationResult{Email: "a@example.com", Status: domain.InvitationSent},
				resendErr: tt.err,
			}
			c := NewInvitationController(slog.New(slog.DiscardHandler), svc, &fakeEmailListParser{})
			r := asAdmin(httptest.NewRequest(http.MethodPost, "/invitations/resend",
				strings.NewReader(`{"email":"a@example.com"}`)))
			w := httptest.NewRecorder()
			c.Resend(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			env := decodeEnvelope(t, w)
			if tt.wantCode == "" {
				require.Nil(t, env.Error)
			} else {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
		})
	}
}
