package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// SnapshotHandler handles snapshot HTTP requests
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
	}
}

// SnapshotGroupResponse is one snapshot group with its derived total.
type SnapshotGroupResponse struct {
	model.SnapshotGroup
	Total float64 `json:"total"`
}

func toGroupResponse(g model.SnapshotGroup) SnapshotGroupResponse {
	return SnapshotGroupResponse{
		SnapshotGroup: g,
		Total:         g.Total(),
	}
}

// Snapshots handles GET requests listing all snapshot groups, oldest first.
//
// Endpoint: GET /api/snapshots
func (h *SnapshotHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	groups, err := h.snapshotService.GetSnapshots()
	if err != nil {
		respondServiceError(w, "failed to retrieve snapshots", err)
		return
	}

	response := make([]SnapshotGroupResponse, len(groups))
	for i, g := range groups {
		response[i] = toGroupResponse(g)
	}

	respondJSON(w, http.StatusOK, response)
}

// Snapshot handles GET requests for a single snapshot group.
//
// Endpoint: GET /api/snapshots/{uuid}
func (h *SnapshotHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	g, err := h.snapshotService.GetSnapshot(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "failed to retrieve snapshot", err)
		return
	}

	respondJSON(w, http.StatusOK, toGroupResponse(g))
}

// RegisterSnapshot handles POST requests capturing a new snapshot group.
// Group and items are stored atomically.
//
// Endpoint: POST /api/snapshots
func (h *SnapshotHandler) RegisterSnapshot(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterSnapshotRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	g, err := h.snapshotService.RegisterSnapshot(r.Context(), req)
	if err != nil {
		respondServiceError(w, "failed to register snapshot", err)
		return
	}

	respondJSON(w, http.StatusCreated, toGroupResponse(g))
}

// DuplicateSnapshot handles POST requests copying an existing group into a
// new one stamped with the current time.
//
// Endpoint: POST /api/snapshots/{uuid}/duplicate
func (h *SnapshotHandler) DuplicateSnapshot(w http.ResponseWriter, r *http.Request) {
	g, err := h.snapshotService.DuplicateSnapshot(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "failed to duplicate snapshot", err)
		return
	}

	respondJSON(w, http.StatusCreated, toGroupResponse(g))
}

// DeleteSnapshot handles DELETE requests removing a group and its items.
//
// Endpoint: DELETE /api/snapshots/{uuid}
func (h *SnapshotHandler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.snapshotService.DeleteSnapshot(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "failed to delete snapshot", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// UpdateSnapshotItem handles PUT requests correcting a captured item value.
//
// Endpoint: PUT /api/snapshots/items/{uuid}
func (h *SnapshotHandler) UpdateSnapshotItem(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSnapshotItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.snapshotService.UpdateItemValue(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, "failed to update snapshot item", err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// PivotAssets handles GET requests for the asset-by-date pivot table.
// Missing cells are null, and the TOTAL row comes last.
//
// Endpoint: GET /api/snapshots/pivot/assets
func (h *SnapshotHandler) PivotAssets(w http.ResponseWriter, r *http.Request) {
	pivot, err := h.snapshotService.PivotAssets()
	if err != nil {
		respondServiceError(w, "failed to pivot snapshots", err)
		return
	}

	respondJSON(w, http.StatusOK, pivot)
}

// PivotDates handles GET requests for the dense date-keyed series. The
// groupBy query parameter selects asset or category keys; category is the
// default.
//
// Endpoint: GET /api/snapshots/pivot/dates?groupBy=
func (h *SnapshotHandler) PivotDates(w http.ResponseWriter, r *http.Request) {
	grouping := service.GroupByCategory
	if r.URL.Query().Get("groupBy") == "asset" {
		grouping = service.GroupByAsset
	}

	points, err := h.snapshotService.PivotDates(grouping)
	if err != nil {
		respondServiceError(w, "failed to pivot snapshots", err)
		return
	}

	respondJSON(w, http.StatusOK, points)
}
