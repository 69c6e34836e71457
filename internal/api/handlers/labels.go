package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// LabelHandler handles vocabulary label HTTP requests
type LabelHandler struct {
	labelService *service.LabelService
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelService *service.LabelService) *LabelHandler {
	return &LabelHandler{
		labelService: labelService,
	}
}

// Labels handles GET requests listing a vocabulary.
//
// Endpoint: GET /api/labels/{kind} with kind in category, sector, custody
func (h *LabelHandler) Labels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.labelService.GetLabels(chi.URLParam(r, "kind"))
	if err != nil {
		respondServiceError(w, "failed to retrieve labels", err)
		return
	}

	respondJSON(w, http.StatusOK, labels)
}

// CreateLabel handles POST requests adding a label to a vocabulary.
// Duplicate names, compared case-insensitively, yield 409 Conflict.
//
// Endpoint: POST /api/labels/{kind}
func (h *LabelHandler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLabelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	label, err := h.labelService.CreateLabel(r.Context(), chi.URLParam(r, "kind"), req)
	if err != nil {
		respondServiceError(w, "failed to create label", err)
		return
	}

	respondJSON(w, http.StatusCreated, label)
}

// DeleteLabel handles DELETE requests removing a label. Labels still carried
// by a holding yield 409 Conflict and nothing is removed.
//
// Endpoint: DELETE /api/labels/{kind}/{uuid}
func (h *LabelHandler) DeleteLabel(w http.ResponseWriter, r *http.Request) {
	if err := h.labelService.DeleteLabel(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "failed to delete label", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
