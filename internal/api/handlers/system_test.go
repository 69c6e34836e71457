package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/handlers"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/testutil"
)

// TestSystemHandler_Health tests the health endpoint.
//
// WHY: Deployments probe this endpoint; it must distinguish a live database
// from a broken one with the right status codes.
func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy database yields 200", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}

		var body handlers.HealthResponse
		testutil.DecodeJSONResponse(t, rec, &body)
		if body.Status != "healthy" || body.Database != "connected" {
			t.Errorf("Unexpected body %+v", body)
		}
	})

	t.Run("closed database yields 503", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSystemHandler(service.NewSystemService(db))
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		rec := httptest.NewRecorder()

		handler.Health(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", rec.Code)
		}
	})
}
