package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// SignupRequest is the request body for POST /auth/signup. The token and
// email must match a pending invitation.
type SignupRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	Level    string `json:"level"`
	Age      int    `json:"age"`
}

// Validate implements Validator.
func (s SignupRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(s.Token) == "" {
		errs = append(errs, "token is required")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	} else if len(s.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	return errs
}

// RequestPasswordResetRequest is the request body for POST /auth/request-password-reset
type RequestPasswordResetRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r RequestPasswordResetRequest) Validate() []string {
	if strings.TrimSpace(r.Email) == "" {
		return []string{"email is required"}
	}
	return nil
}

// ResetPasswordRequest is the request body for POST /auth/reset-password
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Validate implements Validator.
func (r ResetPasswordRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Token) == "" {
		errs = append(errs, "token is required")
	}
	if r.NewPassword == "" {
		errs = append(errs, "new_password is required")
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, "new_password must be at least 8 characters")
	}
	return errs
}

type AuthController struct {
	Logger        *slog.Logger
	AuthService   domain.AuthService
	Invitations   domain.InvitationService
	PasswordReset domain.PasswordResetService
}

func NewAuthController(logger *slog.Logger, auth domain.AuthService, invitations domain.InvitationService, reset domain.PasswordResetService) *AuthController {
	return &AuthController{
		Logger:        logger,
		AuthService:   auth,
		Invitations:   invitations,
		PasswordReset: reset,
	}
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns a JWT carrying user id and role, plus the user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (inactive account)"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}

// Signup godoc
// @Summary Complete signup via invitation
// @Description Redeem a pending invitation token to create an account with the invited role.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid or expired invitation)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Router /auth/signup [post]
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profile := domain.SignupProfile{
		Name:     strings.TrimSpace(req.Name),
		LastName: strings.TrimSpace(req.LastName),
		Phone:    strings.TrimSpace(req.Phone),
		Level:    strings.TrimSpace(req.Level),
		Age:      req.Age,
	}
	user, err := c.Invitations.CompleteSignup(r.Context(), req.Email, req.Token, req.Password, profile)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// RequestPasswordReset godoc
// @Summary Request a password reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RequestPasswordResetRequest true "Account email"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no user with that email)"
// @Router /auth/request-password-reset [post]
func (c *AuthController) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req RequestPasswordResetRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.PasswordReset.Request(r.Context(), req.Email); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "reset link sent"})
}

// ResetPassword godoc
// @Summary Reset password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid, used, or expired token)"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.PasswordReset.Reset(r.Context(), req.Token, req.NewPassword); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// Protected godoc
// @Summary Check the current token
// @Description Returns the claim carried by the Bearer token. Useful as a smoke check for clients.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains user_id and role"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/protected [get]
func (c *AuthController) Protected(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.ClaimFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing claim")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{
		"user_id": claim.UserID,
		"role":    string(claim.Role),
	})
}
