package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// TrainingPlanRequest is the request body for training plan create and
// update. On update, empty fields keep their current values.
type TrainingPlanRequest struct {
	TrainerID   string `json:"trainer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
}

type TrainingPlanController struct {
	Logger  *slog.Logger
	Service domain.TrainingPlanService
}

func NewTrainingPlanController(logger *slog.Logger, svc domain.TrainingPlanService) *TrainingPlanController {
	return &TrainingPlanController{Logger: logger, Service: svc}
}

func (c *TrainingPlanController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutatePlan, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return true
}

// List godoc
// @Summary List training plans
// @Tags training-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /training-plans [get]
func (c *TrainingPlanController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	plans, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, plans, p, total)
}

// Get godoc
// @Summary Get a training plan
// @Tags training-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training plan ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /training-plans/{id} [get]
func (c *TrainingPlanController) Get(w http.ResponseWriter, r *http.Request) {
	plan, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, plan)
}

// Create godoc
// @Summary Create a training plan
// @Tags training-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TrainingPlanRequest true "Training plan data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /training-plans [post]
func (c *TrainingPlanController) Create(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req TrainingPlanRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "title is required")
		return
	}
	plan, err := c.Service.Create(r.Context(), req.TrainerID, req.Title, req.Description, req.FileURL)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, plan)
}

// Update godoc
// @Summary Update a training plan
// @Tags training-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training plan ID"
// @Param body body TrainingPlanRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /training-plans/{id} [put]
func (c *TrainingPlanController) Update(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req TrainingPlanRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	plan, err := c.Service.Update(r.Context(), &domain.TrainingPlan{
		ID:          r.PathValue("id"),
		TrainerID:   req.TrainerID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	})
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, plan)
}

// Delete godoc
// @Summary Delete a training plan
// @Tags training-plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Training plan ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /training-plans/{id} [delete]
func (c *TrainingPlanController) Delete(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "training plan deleted"})
}
