package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// CreateStudentRequest is the request body for POST /students.
type CreateStudentRequest struct {
	UserID string `json:"user_id"`
	Level  string `json:"level"`
	Age    int    `json:"age"`
}

// Validate implements Validator.
func (c CreateStudentRequest) Validate() []string {
	if strings.TrimSpace(c.UserID) == "" {
		return []string{"user_id is required"}
	}
	return nil
}

// UpdateStudentRequest is the request body for PUT /students/{id}.
type UpdateStudentRequest struct {
	Level    string `json:"level,omitempty"`
	Age      int    `json:"age,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService) *StudentController {
	return &StudentController{Logger: logger, Service: svc}
}

func (c *StudentController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateProfile, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return true
}

// List godoc
// @Summary List student profiles
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /students [get]
func (c *StudentController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	students, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, students, p, total)
}

// Get godoc
// @Summary Get a student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{id} [get]
func (c *StudentController) Get(w http.ResponseWriter, r *http.Request) {
	student, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, student)
}

// Create godoc
// @Summary Create a student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateStudentRequest true "Student data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /students [post]
func (c *StudentController) Create(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req CreateStudentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.Create(r.Context(), req.UserID, req.Level, req.Age)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, student)
}

// Update godoc
// @Summary Update a student profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param body body UpdateStudentRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{id} [put]
func (c *StudentController) Update(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req UpdateStudentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	student, err := c.Service.Update(r.Context(), &domain.Student{
		ID:    r.PathValue("id"),
		Level: req.Level,
		Age:   req.Age,
	}, req.IsActive)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, student)
}

// Delete godoc
// @Summary Deactivate a student profile
// @Description Soft-delete: the profile row stays, is_active flips to false.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{id} [delete]
func (c *StudentController) Delete(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	if err := c.Service.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "student deactivated"})
}
