package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"moto-rental-backend/internal/domain"
	"moto-rental-backend/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// writeDomainError maps the domain error taxonomy to 4xx responses.
// Everything in the taxonomy is caller-recoverable; only unknown errors
// become a 500 and get logged as server errors.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDriverNotFound),
		errors.Is(err, domain.ErrMotoNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadySettled),
		errors.Is(err, domain.ErrNotYetSettled),
		errors.Is(err, domain.ErrDuplicateLicensePlate),
		errors.Is(err, domain.ErrDuplicateCNPJ),
		errors.Is(err, domain.ErrDuplicateCNH):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidPlan),
		errors.Is(err, domain.ErrInvalidDriver),
		errors.Is(err, domain.ErrIneligibleLicense),
		errors.Is(err, domain.ErrReturnBeforeStart),
		errors.Is(err, domain.ErrMissingExpectedReturnDate):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
