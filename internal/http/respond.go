package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/saikrishna1605/foliofinds/internal/payment"
	"github.com/saikrishna1605/foliofinds/internal/repository"
	"github.com/saikrishna1605/foliofinds/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps domain failures onto HTTP statuses. Anything not
// recognized is an internal error with a short message only; store and
// provider internals never reach the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrBookNotFound),
		errors.Is(err, repository.ErrPostNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrNotOwner):
		respondError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, service.ErrInvalidListing),
		errors.Is(err, service.ErrInvalidPost),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, repository.ErrMissingItemID):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, payment.ErrProvider):
		respondError(w, http.StatusBadGateway, "payment_failed", err.Error())
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
