package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// HoldingHandler handles holding-related HTTP requests
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// Holdings handles GET requests for the holding list, optionally filtered by
// the category query parameter.
//
// Endpoint: GET /api/holdings?category=
func (h *HoldingHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.holdingService.GetHoldings(r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(w, "failed to retrieve holdings", err)
		return
	}

	respondJSON(w, http.StatusOK, holdings)
}

// Holding handles GET requests for a single holding.
//
// Endpoint: GET /api/holdings/{uuid}
func (h *HoldingHandler) Holding(w http.ResponseWriter, r *http.Request) {
	holding, err := h.holdingService.GetHolding(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "failed to retrieve holding", err)
		return
	}

	respondJSON(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests creating a new holding.
//
// Endpoint: POST /api/holdings
// Response: 201 Created with the stored holding, total already derived
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHoldingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	holding, err := h.holdingService.CreateHolding(r.Context(), req)
	if err != nil {
		respondServiceError(w, "failed to create holding", err)
		return
	}

	respondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests applying a partial holding edit.
//
// Endpoint: PUT /api/holdings/{uuid}
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateHoldingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	holding, err := h.holdingService.UpdateHolding(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, "failed to update holding", err)
		return
	}

	respondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests removing a holding.
//
// Endpoint: DELETE /api/holdings/{uuid}
// Response: 204 No Content
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	if err := h.holdingService.DeleteHolding(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "failed to delete holding", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
