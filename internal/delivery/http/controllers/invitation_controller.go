package controllers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	h "padelcoach/internal/delivery/http/helpers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// maxUploadBytes bounds the bulk email file size.
const maxUploadBytes = 1 << 20

// CreateInvitationsRequest is the JSON request body for POST /invitations.
// The endpoint alternatively accepts a multipart form with a "file" part
// holding a CSV of addresses and a "role" field.
type CreateInvitationsRequest struct {
	Emails []string `json:"emails"`
	Role   string   `json:"role"`
}

// Validate implements Validator.
func (c CreateInvitationsRequest) Validate() []string {
	var errs []string
	if len(c.Emails) == 0 {
		errs = append(errs, "emails is required")
	}
	if _, err := domain.ParseRole(c.Role); err != nil {
		errs = append(errs, "role must be \"admin\", \"trainer\", or \"student\"")
	}
	return errs
}

// ResendInvitationRequest is the request body for POST /invitations/resend
type ResendInvitationRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r ResendInvitationRequest) Validate() []string {
	if strings.TrimSpace(r.Email) == "" {
		return []string{"email is required"}
	}
	return nil
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
	Parser  domain.EmailListParser
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService, parser domain.EmailListParser) *InvitationController {
	return &InvitationController{Logger: logger, Service: svc, Parser: parser}
}

func (c *InvitationController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claim, _ := middleware.ClaimFromContext(r.Context())
	if err := domain.Authorize(claim, domain.ActionManageInvites, ""); err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return false
	}
	return true
}

// Create godoc
// @Summary Create invitations
// @Description Invite one or more email addresses with a target role. Accepts JSON {emails, role} or a multipart form with a CSV "file" and a "role" field. Returns a per-address result; delivery failures are reported per entry and never abort the batch.
// @Tags invitations
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param body body CreateInvitationsRequest false "Addresses and role (JSON variant)"
// @Success 200 {object} helpers.APIResponse "data contains the per-address results"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (bad file or no addresses)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /invitations [post]
func (c *InvitationController) Create(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}

	var emails []string
	var role domain.Role

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid multipart form")
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "file is required")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "failed to read file")
			return
		}
		emails, err = c.Parser.Parse(data)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "could not parse email list: "+err.Error())
			return
		}
		role, err = domain.ParseRole(r.FormValue("role"))
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "role must be \"admin\", \"trainer\", or \"student\"")
			return
		}
	} else {
		var req CreateInvitationsRequest
		if !h.DecodeAndValidate(w, r, &req) {
			return
		}
		emails = req.Emails
		role, _ = domain.ParseRole(req.Role)
	}

	if len(emails) == 0 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "no email addresses found")
		return
	}

	results := c.Service.CreateBulk(r.Context(), emails, role)
	h.WriteJSONSuccess(w, http.StatusOK, results)
}

// List godoc
// @Summary List invitations
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /invitations [get]
func (c *InvitationController) List(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	p := h.ParsePagination(r)
	items, total, err := c.Service.List(r.Context(), p)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WritePaginated(w, items, p, total)
}

// Resend godoc
// @Summary Resend an expired invitation
// @Description Replaces an expired invitation with a fresh token and resends the link. A still-valid invitation is rejected.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ResendInvitationRequest true "Invited email"
// @Success 200 {object} helpers.APIResponse "data contains the resend result"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invitation still valid)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /invitations/resend [post]
func (c *InvitationController) Resend(w http.ResponseWriter, r *http.Request) {
	if !c.authorize(w, r) {
		return
	}
	var req ResendInvitationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Resend(r.Context(), req.Email)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}
