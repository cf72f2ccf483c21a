package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// CreateTrainerRequest is the request body for POST /trainers.
type CreateTrainerRequest struct {
	UserID string `json:"user_id"`
}

// Validate implements Validator.
func (c CreateTrainerRequest) Validate() []string {
	if strings.TrimSpace(c.UserID) == "" {
		return []string{"user_id is required"}
	}
	return nil
}

// UpdateTrainerRequest is the request body for PUT /trainers/{id}.
type UpdateTrainerRequest struct {
	IsActive *bool `json:"is_active"`
}

// Validate implements Validator.
func (u UpdateTrainerRequest) Validate() []string {
	if u.IsActive == nil {
		return []string{"is_active is required"}
	}
	return nil
}

type TrainerController struct {
	Logger  *slog.Logger
	Service domain.TrainerService
}

func NewTrainerController(logger *slog.Logger, svc domain.TrainerService) *TrainerController {
	return &TrainerController{Logger: logger, Service: svc}
}

func (c *TrainerController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateProfile, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return true
}

// List godoc
// @Summary List trainer profiles
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /trainers [get]
func (c *TrainerController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	trainers, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, trainers, p, total)
}

// Get godoc
// @Summary Get a trainer profile
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trainers/{id} [get]
func (c *TrainerController) Get(w http.ResponseWriter, r *http.Request) {
	trainer, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, trainer)
}

// Create godoc
// @Summary Create a trainer profile
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTrainerRequest true "Trainer data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /trainers [post]
func (c *TrainerController) Create(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req CreateTrainerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	trainer, err := c.Service.Create(r.Context(), req.UserID)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, trainer)
}

// Update godoc
// @Summary Update a trainer profile's active flag
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Param body body UpdateTrainerRequest true "Active flag"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trainers/{id} [put]
func (c *TrainerController) Update(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req UpdateTrainerRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	trainer, err := c.Service.SetActive(r.Context(), r.PathValue("id"), *req.IsActive)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, trainer)
}

// Delete godoc
// @Summary Deactivate a trainer profile
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trainers/{id} [delete]
func (c *TrainerController) Delete(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	if err := c.Service.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "trainer deactivated"})
}
