package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// SessionStudentRequest is the request body for assigning a student to a
// session and for rewriting an existing assignment.
type SessionStudentRequest struct {
	SessionID string `json:"session_id"`
	StudentID string `json:"student_id"`
}

// Validate implements Validator.
func (s SessionStudentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.SessionID) == "" {
		errs = append(errs, "session_id is required")
	}
	if strings.TrimSpace(s.StudentID) == "" {
		errs = append(errs, "student_id is required")
	}
	return errs
}

type SessionStudentController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionStudentController(logger *slog.Logger, svc domain.SessionService) *SessionStudentController {
	return &SessionStudentController{Logger: logger, Service: svc}
}

func (c *SessionStudentController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateSession, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return true
}

// List godoc
// @Summary List session-student assignments
// @Tags session-students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /session-students [get]
func (c *SessionStudentController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	links, total, err := c.Service.ListStudentLinks(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, links, p, total)
}

// Get godoc
// @Summary Get a session-student assignment
// @Tags session-students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /session-students/{id} [get]
func (c *SessionStudentController) Get(w http.ResponseWriter, r *http.Request) {
	link, err := c.Service.GetStudentLink(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, link)
}

// Create godoc
// @Summary Assign a student to a session
// @Tags session-students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SessionStudentRequest true "Assignment data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown session or student)"
// @Router /session-students [post]
func (c *SessionStudentController) Create(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req SessionStudentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	link, err := c.Service.AddStudent(r.Context(), req.SessionID, req.StudentID)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, link)
}

// Update godoc
// @Summary Rewrite a session-student assignment
// @Tags session-students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param body body SessionStudentRequest true "New assignment"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /session-students/{id} [put]
func (c *SessionStudentController) Update(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req SessionStudentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	link, err := c.Service.UpdateStudentLink(r.Context(), &domain.SessionStudent{
		ID:        r.PathValue("id"),
		SessionID: req.SessionID,
		StudentID: req.StudentID,
	})
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, link)
}

// Delete godoc
// @Summary Remove a student from a session
// @Tags session-students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /session-students/{id} [delete]
func (c *SessionStudentController) Delete(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	if err := c.Service.RemoveStudentLink(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "assignment removed"})
}
