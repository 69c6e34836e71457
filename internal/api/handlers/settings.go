package handlers

import (
	"net/http"
	"time"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// RateProviderResponse never echoes the stored token back; only its
// presence is reported.
type RateProviderResponse struct {
	Enabled   bool   `json:"enabled"`
	HasToken  bool   `json:"hasToken"`
	UpdatedAt string `json:"updatedAt"`
}

// RateProvider handles GET requests for the exchange-rate provider settings.
//
// Endpoint: GET /api/settings/rate-provider
func (h *SettingsHandler) RateProvider(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.GetRateProviderConfig()
	if err != nil {
		respondServiceError(w, "failed to retrieve rate provider settings", err)
		return
	}

	respondJSON(w, http.StatusOK, RateProviderResponse{
		Enabled:   cfg.Enabled,
		HasToken:  cfg.Token != "",
		UpdatedAt: cfg.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// UpdateRateProvider handles PUT requests replacing the provider settings.
//
// Endpoint: PUT /api/settings/rate-provider
func (h *SettingsHandler) UpdateRateProvider(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRateProviderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cfg, err := h.settingsService.UpdateRateProviderConfig(r.Context(), req)
	if err != nil {
		respondServiceError(w, "failed to update rate provider settings", err)
		return
	}

	respondJSON(w, http.StatusOK, RateProviderResponse{
		Enabled:   cfg.Enabled,
		HasToken:  cfg.Token != "",
		UpdatedAt: cfg.UpdatedAt.UTC().Format(time.RFC3339),
	})
}
