package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// CourtRequest is the request body for court create and update.
type CourtRequest struct {
	Name      string `json:"name"`
	CourtType string `json:"court_type"`
	Location  string `json:"location"`
}

// Validate implements Validator.
func (c CourtRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

type CourtController struct {
	Logger  *slog.Logger
	Service domain.CourtService
}

func NewCourtController(logger *slog.Logger, svc domain.CourtService) *CourtController {
	return &CourtController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List courts
// @Description Public: no authentication required.
// @Tags courts
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /courts [get]
func (c *CourtController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	courts, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, courts, p, total)
}

// Get godoc
// @Summary Get a court
// @Tags courts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courts/{id} [get]
func (c *CourtController) Get(w http.ResponseWriter, r *http.Request) {
	court, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, court)
}

// Create godoc
// @Summary Create a court
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CourtRequest true "Court data"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /courts [post]
func (c *CourtController) Create(w http.ResponseWriter, r *http.Request) {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateCourt, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req CourtRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	court, err := c.Service.Create(r.Context(), req.Name, req.CourtType, req.Location)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, court)
}

// Update godoc
// @Summary Update a court
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param body body CourtRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courts/{id} [put]
func (c *CourtController) Update(w http.ResponseWriter, r *http.Request) {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateCourt, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	var req CourtRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	court, err := c.Service.Update(r.Context(), &domain.Court{
		ID:        r.PathValue("id"),
		Name:      req.Name,
		CourtType: req.CourtType,
		Location:  req.Location,
	})
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, court)
}

// Delete godoc
// @Summary Delete a court
// @Tags courts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courts/{id} [delete]
func (c *CourtController) Delete(w http.ResponseWriter, r *http.Request) {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionMutateCourt, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "court deleted"})
}
