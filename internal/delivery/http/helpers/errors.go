package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"padelcoach/internal/domain"
)

// WriteDomainError maps a domain error onto the HTTP error taxonomy and
// writes the envelope. Unrecognized errors become a logged 500.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrUserInactive):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "account is inactive")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrTrainerNotFound),
		errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionStudentNotFound),
		errors.Is(err, domain.ErrTrainingPlanNotFound),
		errors.Is(err, domain.ErrInvitationNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, "email already registered")
	case errors.Is(err, domain.ErrInvitationInvalid),
		errors.Is(err, domain.ErrInvitationExpired),
		errors.Is(err, domain.ErrInvitationStillValid),
		errors.Is(err, domain.ErrResetTokenInvalid),
		errors.Is(err, domain.ErrResetTokenUsed),
		errors.Is(err, domain.ErrResetTokenExpired):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
