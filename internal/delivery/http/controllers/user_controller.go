package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// CreateUserRequest is the request body for POST /users and POST /users-admin.
// Role is ignored on the admin endpoint, which always creates an admin.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role,omitempty"`
}

// Validate implements Validator.
func (c CreateUserRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if c.Password == "" {
		errs = append(errs, "password is required")
	} else if len(c.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if c.Role != "" {
		if _, err := domain.ParseRole(c.Role); err != nil {
			errs = append(errs, "role must be \"admin\", \"trainer\", or \"student\"")
		}
	}
	return errs
}

// UpdateUserRequest is the request body for PUT /users/{id}. All fields are
// optional; empty fields keep their current values.
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	LastName string `json:"last_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// Validate implements Validator.
func (u UpdateUserRequest) Validate() []string {
	if u.Role != "" {
		if _, err := domain.ParseRole(u.Role); err != nil {
			return []string{"role must be \"admin\", \"trainer\", or \"student\""}
		}
	}
	return nil
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionListUsers, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	p := h.ParsePagination(r)
	users, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, users, p, total)
}

// Create godoc
// @Summary Create a user
// @Description Admin-only direct user creation, bypassing the invitation flow.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateUserRequest true "User data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionCreateUser, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req CreateUserRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	role := domain.RoleStudent
	if req.Role != "" {
		role, _ = domain.ParseRole(req.Role)
	}
	user, err := c.Service.Create(r.Context(), req.Email, req.Password, req.Name, req.LastName, req.Phone, role)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// CreateAdmin godoc
// @Summary Create an admin user
// @Description Open bootstrap endpoint: unauthenticated while no admin exists, then restricted to admins.
// @Tags users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "Admin user data (role field ignored)"
// @Success 201 {object} helpers.APIResponse "data contains the created admin"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /users-admin [post]
func (c *UserController) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	claim, _ := middleware.ClaimFromContext(r.Context())
	user, err := c.Service.CreateAdmin(r.Context(), claim, req.Email, req.Password, req.Name, req.LastName, req.Phone)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Get godoc
// @Summary Get a user
// @Description Admins may read any user; other roles only their own record.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [get]
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionReadUser, id); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, user)
}

// Update godoc
// @Summary Update a user
// @Description Admin-only. Role changes are additionally gated; the is_active flag is ignored on the caller's own account.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param body body UpdateUserRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [put]
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionUpdateUser, id); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req UpdateUserRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	var role domain.Role
	if req.Role != "" {
		if err := domain.Authorize(claim, domain.ActionChangeUserRole, id); err != nil {
			h.WriteDomainError(w, r, c.Logger, err)
			return
		}
		role, _ = domain.ParseRole(req.Role)
	}
	user, err := c.Service.Update(r.Context(), claim, &domain.User{
		ID:       id,
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
		Role:     role,
	}, req.IsActive)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, user)
}

// Delete godoc
// @Summary Deactivate a user
// @Description Soft-delete: the record stays, is_active flips to false. Self-deactivation is always denied.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /users/{id} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionDeactivateUser, id); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.Deactivate(r.Context(), id); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "user deactivated"})
}
