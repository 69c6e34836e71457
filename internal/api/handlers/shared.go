package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service layer errors onto HTTP status codes and
// sends a structured error body. Unknown errors become 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError

	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrHoldingNotFound),
		errors.Is(err, apperrors.ErrCryptoHoldingNotFound),
		errors.Is(err, apperrors.ErrSnapshotNotFound),
		errors.Is(err, apperrors.ErrSnapshotItemNotFound),
		errors.Is(err, apperrors.ErrLabelNotFound),
		errors.Is(err, apperrors.ErrRateProviderNotConfigured):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrLabelInUse),
		errors.Is(err, apperrors.ErrDuplicateLabel):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidLabelKind),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrEmptySnapshot):
		status = http.StatusBadRequest
	}

	errorResponse := map[string]string{
		"error":  message,
		"detail": err.Error(),
	}
	respondJSON(w, status, errorResponse)
}

// decodeJSON parses a request body into dst, rejecting malformed JSON with a
// 400 response. Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errorResponse := map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return false
	}
	return true
}
