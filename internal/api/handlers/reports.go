package handlers

import (
	"net/http"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/validation"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Summary handles GET requests deriving the period P&L summary. Both date
// bounds are optional; from is inclusive from start of day, to through end
// of day.
//
// Endpoint: GET /api/reports/summary?from=2024-01-01&to=2024-12-31
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var dateRange service.DateRange

	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := validation.ParseDate(from)
		if err != nil {
			errorResponse := map[string]string{
				"error":  "invalid from date",
				"detail": err.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
		dateRange.From = &parsed
	}

	if to := r.URL.Query().Get("to"); to != "" {
		parsed, err := validation.ParseDate(to)
		if err != nil {
			errorResponse := map[string]string{
				"error":  "invalid to date",
				"detail": err.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}
		dateRange.To = &parsed
	}

	summary, err := h.reportService.Summary(dateRange)
	if err != nil {
		respondServiceError(w, "failed to derive summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
