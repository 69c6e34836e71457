package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// CryptoHandler handles crypto holding HTTP requests
type CryptoHandler struct {
	cryptoService *service.CryptoService
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(cryptoService *service.CryptoService) *CryptoHandler {
	return &CryptoHandler{
		cryptoService: cryptoService,
	}
}

// CryptoHoldings handles GET requests for the crypto holding list.
//
// Endpoint: GET /api/crypto
func (h *CryptoHandler) CryptoHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.cryptoService.GetCryptoHoldings()
	if err != nil {
		respondServiceError(w, "failed to retrieve crypto holdings", err)
		return
	}

	respondJSON(w, http.StatusOK, holdings)
}

// CryptoHolding handles GET requests for a single crypto holding.
//
// Endpoint: GET /api/crypto/{uuid}
func (h *CryptoHandler) CryptoHolding(w http.ResponseWriter, r *http.Request) {
	holding, err := h.cryptoService.GetCryptoHolding(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "failed to retrieve crypto holding", err)
		return
	}

	respondJSON(w, http.StatusOK, holding)
}

// CreateCryptoHolding handles POST requests creating a new crypto holding.
// The BRL total is filled with the live USD-BRL rate.
//
// Endpoint: POST /api/crypto
func (h *CryptoHandler) CreateCryptoHolding(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCryptoHoldingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	holding, err := h.cryptoService.CreateCryptoHolding(r.Context(), req)
	if err != nil {
		respondServiceError(w, "failed to create crypto holding", err)
		return
	}

	respondJSON(w, http.StatusCreated, holding)
}

// UpdateCryptoHolding handles PUT requests applying a partial edit.
//
// Endpoint: PUT /api/crypto/{uuid}
func (h *CryptoHandler) UpdateCryptoHolding(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCryptoHoldingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	holding, err := h.cryptoService.UpdateCryptoHolding(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, "failed to update crypto holding", err)
		return
	}

	respondJSON(w, http.StatusOK, holding)
}

// DeleteCryptoHolding handles DELETE requests removing a crypto holding.
//
// Endpoint: DELETE /api/crypto/{uuid}
func (h *CryptoHandler) DeleteCryptoHolding(w http.ResponseWriter, r *http.Request) {
	if err := h.cryptoService.DeleteCryptoHolding(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "failed to delete crypto holding", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// RefreshRatesResponse reports the rate applied by a refresh.
type RefreshRatesResponse struct {
	Rate float64 `json:"rate"`
}

// RefreshRates handles POST requests recomputing all BRL totals with the
// current USD-BRL rate.
//
// Endpoint: POST /api/crypto/refresh-rates
func (h *CryptoHandler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	rate, err := h.cryptoService.RefreshBRLTotals(r.Context())
	if err != nil {
		respondServiceError(w, "failed to refresh crypto rates", err)
		return
	}

	respondJSON(w, http.StatusOK, RefreshRatesResponse{Rate: rate})
}
