package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhishekode/aakash-sweets-restaurant/internal/cart"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/repository"
	"github.com/abhishekode/aakash-sweets-restaurant/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError converts service and repository errors to HTTP status
// codes, the single place that mapping lives.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
	case errors.Is(err, service.ErrInvalidPromoCode):
		respondError(w, http.StatusUnprocessableEntity, "invalid_promo_code", "that promo code is not valid")
	case errors.Is(err, service.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", "cart is empty")
	case errors.Is(err, service.ErrUnpricedVariant):
		respondError(w, http.StatusUnprocessableEntity, "unpriced_variant", err.Error())
	case errors.Is(err, service.ErrFoodUnavailable):
		respondError(w, http.StatusUnprocessableEntity, "unavailable", err.Error())
	case errors.Is(err, repository.ErrFoodNotFound),
		errors.Is(err, repository.ErrCategoryNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrTeamMemberNotFound),
		errors.Is(err, repository.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, repository.ErrSlugTaken):
		respondError(w, http.StatusConflict, "slug_taken", err.Error())
	default:
		slog.Error("unhandled service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
