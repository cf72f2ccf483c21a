package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

type fakeUserService struct {
	users     []*domain.User
	user      *domain.User
	err       error
	gotClaim  *domain.Claim
	gotActive *bool
	gotRole   domain.Role
}

func (f *fakeUserService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.User, int, error) {
	return f.users, len(f.users), f.err
}

func (f *fakeUserService) Create(ctx context.Context, email, password, name, lastName, phone string, role domain.Role) (*domain.User, error) {
	f.gotRole = role
	return f.user, f.err
}

func (f *fakeUserService) CreateAdmin(ctx context.Context, claim *domain.Claim, email, password, name, lastName, phone string) (*domain.User, error) {
	f.gotClaim = claim
	return f.user, f.err
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserService) Update(ctx context.Context, claim *domain.Claim, user *domain.User, setActive *bool) (*domain.User, error) {
	f.gotClaim = claim
	f.gotActive = setActive
	f.gotRole = user.Role
	return f.user, f.err
}

func (f *fakeUserService) Deactivate(ctx context.Context, id string) error { return f.err }

func newUserRequest(method, path, body string, claim *domain.Claim) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if claim != nil {
		r = r.WithContext(middleware.SetClaim(r.Context(), claim))
	}
	return r
}

func TestUserControllerList(t *testing.T) {
	svc := &fakeUserService{users: []*domain.User{{ID: "user-1", Email: "a@example.com"}}}
	c := NewUserController(slog.New(slog.DiscardHandler), svc)

	t.Run("admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		c.List(w, newUserRequest(http.MethodGet, "/users", "", &domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("trainer is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c.List(w, newUserRequest(http.MethodGet, "/users", "", &domain.Claim{UserID: "trainer-1", Role: domain.RoleTrainer}))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserControllerGet(t *testing.T) {
	svc := &fakeUserService{user: &domain.User{ID: "student-1", Email: "s@example.com"}}
	c := NewUserController(slog.New(slog.DiscardHandler), svc)

	get := func(claim *domain.Claim, id string) *httptest.ResponseRecorder {
		r := newUserRequest(http.MethodGet, "/users/"+id, "", claim)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()
		c.Get(w, r)
		return w
	}

	assert.Equal(t, http.StatusOK, get(&domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}, "student-1").Code)
	assert.Equal(t, http.StatusOK, get(&domain.Claim{UserID: "student-1", Role: domain.RoleStudent}, "student-1").Code)
	assert.Equal(t, http.StatusForbidden, get(&domain.Claim{UserID: "student-2", Role: domain.RoleStudent}, "student-1").Code)
}

func TestUserControllerCreateAdmin(t *testing.T) {
	body := `{"email":"root@example.com","password":"longenough","name":"Root"}`

	t.Run("passes the claim through, nil when absent", func(t *testing.T) {
		svc := &fakeUserService{user: &domain.User{ID: "user-1", Role: domain.RoleAdmin}}
		c := NewUserController(slog.New(slog.DiscardHandler), svc)
		w := httptest.NewRecorder()
		c.CreateAdmin(w, newUserRequest(http.MethodPost, "/users-admin", body, nil))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Nil(t, svc.gotClaim)
	})

	t.Run("forbidden bubbles up as 403", func(t *testing.T) {
		svc := &fakeUserService{err: domain.ErrForbidden}
		c := NewUserController(slog.New(slog.DiscardHandler), svc)
		w := httptest.NewRecorder()
		c.CreateAdmin(w, newUserRequest(http.MethodPost, "/users-admin", body, &domain.Claim{UserID: "trainer-1", Role: domain.RoleTrainer}))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserControllerUpdate(t *testing.T) {
	admin := &domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}

	update := func(svc *fakeUserService, claim *domain.Claim, body string) *httptest.ResponseRecorder {
		c := NewUserController(slog.New(slog.DiscardHandler), svc)
		r := newUserRequest(http.MethodPut, "/users/user-1", body, claim)
		r.SetPathValue("id", "user-1")
		w := httptest.NewRecorder()
		c.Update(w, r)
		return w
	}

	t.Run("admin updates profile fields", func(t *testing.T) {
		svc := &fakeUserService{user: &domain.User{ID: "user-1"}}
		w := update(svc, admin, `{"name":"Anabel"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, svc.gotActive)
	})

	t.Run("admin changes role", func(t *testing.T) {
		svc := &fakeUserService{user: &domain.User{ID: "user-1"}}
		w := update(svc, admin, `{"role":"trainer"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.RoleTrainer, svc.gotRole)
	})

	t.Run("non-admin cannot update", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleTrainer, domain.RoleStudent} {
			svc := &fakeUserService{user: &domain.User{ID: "user-1"}}
			w := update(svc, &domain.Claim{UserID: "x", Role: role}, `{"role":"admin"}`)
			assert.Equal(t, http.StatusForbidden, w.Code, "role %s", role)
		}
	})

	t.Run("unknown role in body", func(t *testing.T) {
		svc := &fakeUserService{user: &domain.User{ID: "user-1"}}
		w := update(svc, admin, `{"role":"superuser"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("is_active flag forwarded", func(t *testing.T) {
		svc := &fakeUserService{user: &domain.User{ID: "user-1"}}
		w := update(svc, admin, `{"is_active":false}`)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.gotActive)
		assert.False(t, *svc.gotActive)
	})
}

func TestUserControllerDelete(t *testing.T) {
	del := func(svc *fakeUserService, claim *domain.Claim, id string) *httptest.ResponseRecorder {
		c := NewUserController(slog.New(slog.DiscardHandler), svc)
		r := newUserRequest(http.MethodDelete, "/users/"+id, "", claim)
		r.SetPathValue("id", id)
		w := httptest.NewRecorder()
		c.Delete(w, r)
		return w
	}

	t.Run("admin deactivates another user", func(t *testing.T) {
		w := del(&fakeUserService{}, &domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}, "user-2")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("self-deactivation is denied even for admins", func(t *testing.T) {
		w := del(&fakeUserService{}, &domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}, "admin-1")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := del(&fakeUserService{err: domain.ErrUserNotFound}, &domain.Claim{UserID: "admin-1", Role: domain.RoleAdmin}, "ghost")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
