package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuitiontrust/treasury/internal/adapter/http/dto"
	"github.com/tuitiontrust/treasury/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrDonationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSchoolNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
