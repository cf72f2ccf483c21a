package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

const sessionDateLayout = "2006-01-02"

var timeOfDayRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// SessionRequest is the request body for session create and update. On
// update, empty fields keep their current values.
type SessionRequest struct {
	TrainerID string `json:"trainer_id"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	Time      string `json:"time"` // "HH:MM"
	CourtID   string `json:"court_id"`
	Notes     string `json:"notes"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if s.Date != "" {
		if _, err := time.Parse(sessionDateLayout, s.Date); err != nil {
			errs = append(errs, "date must be YYYY-MM-DD")
		}
	}
	if s.Time != "" && !timeOfDayRegexp.MatchString(s.Time) {
		errs = append(errs, "time must be HH:MM")
	}
	return errs
}

func (s SessionRequest) toDomain(id string) *domain.Session {
	session := &domain.Session{
		ID:        id,
		TrainerID: strings.TrimSpace(s.TrainerID),
		Time:      s.Time,
		CourtID:   strings.TrimSpace(s.CourtID),
		Notes:     s.Notes,
	}
	if s.Date != "" {
		session.Date, _ = time.Parse(sessionDateLayout, s.Date)
	}
	return session
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{Logger: logger, Service: svc}
}

func (c *SessionController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateSession, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return true
}

// List godoc
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /sessions [get]
func (c *SessionController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	sessions, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, sessions, p, total)
}

// Get godoc
// @Summary Get a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{id} [get]
func (c *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, session)
}

// Create godoc
// @Summary Schedule a session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /sessions [post]
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Create(r.Context(), req.toDomain(""))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, session)
}

// Update godoc
// @Summary Update a session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param body body SessionRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{id} [put]
func (c *SessionController) Update(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.Update(r.Context(), req.toDomain(r.PathValue("id")))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, session)
}

// Delete godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{id} [delete]
func (c *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "session deleted"})
}
