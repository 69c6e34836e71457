package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/testutil"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// TestHoldingService_CreateHolding tests holding creation.
//
// WHY: The stored total must always equal price times quantity; callers can
// never set it directly, and a missing category must never produce an empty
// grouping key.
func TestHoldingService_CreateHolding(t *testing.T) {
	t.Run("derives total from price and quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			Name:     "PETR4",
			Ticker:   "PETR4",
			Category: "Ações",
			Price:    38.5,
			Quantity: 100,
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}

		if h.Total != 3850 {
			t.Errorf("Expected total 3850, got %f", h.Total)
		}
	})

	t.Run("missing category falls back to placeholder", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			Name:     "Tesouro Selic",
			Price:    100,
			Quantity: 1,
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}

		if h.Category != "Sem Categoria" {
			t.Errorf("Expected placeholder category, got %q", h.Category)
		}
	})

	t.Run("persists return figures from the statement", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			Name:             "PETR4",
			Category:         "Ações",
			Price:            38.5,
			Quantity:         100,
			Return:           -120.5,
			ReturnPercentage: -3.2,
		})
		if err != nil {
			t.Fatalf("CreateHolding() returned unexpected error: %v", err)
		}

		stored, err := svc.GetHolding(h.ID)
		if err != nil {
			t.Fatalf("GetHolding() returned unexpected error: %v", err)
		}
		if stored.Return != -120.5 || stored.ReturnPercentage != -3.2 {
			t.Errorf("Expected return -120.5 / -3.2%%, got %f / %f", stored.Return, stored.ReturnPercentage)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		_, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			Name:     "PETR4",
			Price:    -1,
			Quantity: 10,
		})
		if err == nil {
			t.Error("Expected validation error for negative price")
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		_, err := svc.CreateHolding(context.Background(), request.CreateHoldingRequest{
			Price:    1,
			Quantity: 1,
		})
		if err == nil {
			t.Error("Expected validation error for missing name")
		}
	})
}

// TestHoldingService_UpdateHolding tests partial edits.
//
// WHY: Edits to price or quantity must recompute the total, and untouched
// fields must survive a partial update.
func TestHoldingService_UpdateHolding(t *testing.T) {
	t.Run("recomputes total after quantity edit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h := testutil.NewHolding().WithPrice(10).WithQuantity(5).Build(t, db)

		updated, err := svc.UpdateHolding(context.Background(), h.ID, request.UpdateHoldingRequest{
			Quantity: floatPtr(8),
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}

		if updated.Total != 80 {
			t.Errorf("Expected total 80 after quantity edit, got %f", updated.Total)
		}
		if updated.Name != h.Name {
			t.Errorf("Expected untouched name %q, got %q", h.Name, updated.Name)
		}
	})

	t.Run("recomputes total after price edit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h := testutil.NewHolding().WithPrice(10).WithQuantity(5).Build(t, db)

		updated, err := svc.UpdateHolding(context.Background(), h.ID, request.UpdateHoldingRequest{
			Price: floatPtr(20),
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}

		if updated.Total != 100 {
			t.Errorf("Expected total 100 after price edit, got %f", updated.Total)
		}
	})

	t.Run("updates return figures and keeps them across other edits", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h := testutil.NewHolding().WithPrice(10).WithQuantity(5).Build(t, db)

		updated, err := svc.UpdateHolding(context.Background(), h.ID, request.UpdateHoldingRequest{
			Return:           floatPtr(250),
			ReturnPercentage: floatPtr(12.5),
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}
		if updated.Return != 250 || updated.ReturnPercentage != 12.5 {
			t.Errorf("Expected return 250 / 12.5%%, got %f / %f", updated.Return, updated.ReturnPercentage)
		}

		// A later price edit must not reset the stored returns.
		updated, err = svc.UpdateHolding(context.Background(), h.ID, request.UpdateHoldingRequest{
			Price: floatPtr(20),
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}
		if updated.Return != 250 || updated.ReturnPercentage != 12.5 {
			t.Errorf("Expected returns to survive a price edit, got %f / %f", updated.Return, updated.ReturnPercentage)
		}
	})

	t.Run("rejects non-finite return figures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h := testutil.NewHolding().Build(t, db)

		_, err := svc.UpdateHolding(context.Background(), h.ID, request.UpdateHoldingRequest{
			Return: floatPtr(math.Inf(1)),
		})
		if err == nil {
			t.Error("Expected validation error for infinite return")
		}
	})

	t.Run("category edit to empty string restores placeholder", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h := testutil.NewHolding().WithCategory("Ações").Build(t, db)

		updated, err := svc.UpdateHolding(context.Background(), h.ID, request.UpdateHoldingRequest{
			Category: strPtr(""),
		})
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}

		if updated.Category != "Sem Categoria" {
			t.Errorf("Expected placeholder category, got %q", updated.Category)
		}
	})

	t.Run("unknown holding yields not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		_, err := svc.UpdateHolding(context.Background(), testutil.MakeID(), request.UpdateHoldingRequest{})
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

// TestHoldingService_GetHoldings tests listing and category filtering.
func TestHoldingService_GetHoldings(t *testing.T) {
	t.Run("returns empty slice when no holdings exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		holdings, err := svc.GetHoldings("")
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 0 {
			t.Errorf("Expected empty slice, got %d holdings", len(holdings))
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		testutil.NewHolding().WithName("PETR4").WithCategory("Ações").Build(t, db)
		testutil.NewHolding().WithName("HGLG11").WithCategory("Fundos").Build(t, db)

		holdings, err := svc.GetHoldings("Ações")
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 1 || holdings[0].Name != "PETR4" {
			t.Errorf("Expected only PETR4, got %+v", holdings)
		}
	})
}

// TestHoldingService_DeleteHolding tests removal.
func TestHoldingService_DeleteHolding(t *testing.T) {
	t.Run("removes an existing holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		h := testutil.NewHolding().Build(t, db)

		if err := svc.DeleteHolding(context.Background(), h.ID); err != nil {
			t.Fatalf("DeleteHolding() returned unexpected error: %v", err)
		}

		_, err := svc.GetHolding(h.ID)
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown holding yields not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestHoldingService(t, db)

		err := svc.DeleteHolding(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}
