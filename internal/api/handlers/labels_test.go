package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/handlers"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/testutil"
)

// TestLabelHandler_CreateLabel tests the vocabulary add endpoint.
//
// WHY: Duplicates must surface as 409 so the frontend can tell the user the
// name is taken instead of showing a generic failure.
func TestLabelHandler_CreateLabel(t *testing.T) {
	t.Run("new label yields 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/labels/category",
			request.CreateLabelRequest{Name: "Renda Fixa"},
			map[string]string{"kind": "category"},
		)
		rec := httptest.NewRecorder()

		handler.CreateLabel(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		var label model.Label
		testutil.DecodeJSONResponse(t, rec, &label)
		if label.Name != "Renda Fixa" || label.Kind != model.LabelKindCategory {
			t.Errorf("Unexpected label %+v", label)
		}
	})

	t.Run("case-insensitive duplicate yields 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))
		testutil.CreateLabel(t, db, model.LabelKindCategory, "Fundos")

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/labels/category",
			request.CreateLabelRequest{Name: "FUNDOS"},
			map[string]string{"kind": "category"},
		)
		rec := httptest.NewRecorder()

		handler.CreateLabel(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d", rec.Code)
		}
	})

	t.Run("unknown vocabulary yields 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/labels/flavor",
			request.CreateLabelRequest{Name: "Salty"},
			map[string]string{"kind": "flavor"},
		)
		rec := httptest.NewRecorder()

		handler.CreateLabel(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})
}

// TestLabelHandler_DeleteLabel tests the vocabulary delete endpoint.
func TestLabelHandler_DeleteLabel(t *testing.T) {
	t.Run("unreferenced label yields 204", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))
		label := testutil.CreateLabel(t, db, model.LabelKindSector, "DeFi")

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/labels/sector/"+label.ID,
			map[string]string{"kind": "sector", "uuid": label.ID},
		)
		rec := httptest.NewRecorder()

		handler.DeleteLabel(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", rec.Code)
		}
	})

	t.Run("label carried by a holding yields 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))
		label := testutil.CreateLabel(t, db, model.LabelKindCategory, "Fundos")
		testutil.NewHolding().WithCategory("Fundos").Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/labels/category/"+label.ID,
			map[string]string{"kind": "category", "uuid": label.ID},
		)
		rec := httptest.NewRecorder()

		handler.DeleteLabel(rec, req)

		if rec.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d", rec.Code)
		}
	})

	t.Run("unknown label yields 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/labels/category/unknown",
			map[string]string{"kind": "category", "uuid": testutil.MakeID()},
		)
		rec := httptest.NewRecorder()

		handler.DeleteLabel(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

// TestLabelHandler_Labels tests the vocabulary listing endpoint.
func TestLabelHandler_Labels(t *testing.T) {
	t.Run("lists only the requested vocabulary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewLabelHandler(testutil.NewTestLabelService(t, db))
		testutil.CreateLabel(t, db, model.LabelKindCategory, "Fundos")
		testutil.CreateLabel(t, db, model.LabelKindSector, "DeFi")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/labels/category",
			map[string]string{"kind": "category"},
		)
		rec := httptest.NewRecorder()

		handler.Labels(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}

		var labels []model.Label
		testutil.DecodeJSONResponse(t, rec, &labels)
		if len(labels) != 1 || labels[0].Name != "Fundos" {
			t.Errorf("Unexpected labels %+v", labels)
		}
	})
}
