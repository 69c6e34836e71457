package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/testutil"
)

// TestCryptoService_CreateCryptoHolding tests crypto creation.
//
// WHY: Both totals are derived: USD from price times quantity, BRL from the
// USD total times the live conversion rate.
func TestCryptoService_CreateCryptoHolding(t *testing.T) {
	t.Run("derives USD and BRL totals with the live rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithRate(5.5)
		svc := testutil.NewTestCryptoService(t, db, mock)

		c, err := svc.CreateCryptoHolding(context.Background(), request.CreateCryptoHoldingRequest{
			Name:     "Bitcoin",
			Ticker:   "BTC",
			Sector:   "Store of Value",
			Custody:  "Hardware Wallet",
			PriceUSD: 50000,
			Quantity: 0.2,
		})
		if err != nil {
			t.Fatalf("CreateCryptoHolding() returned unexpected error: %v", err)
		}

		if c.TotalUSD != 10000 {
			t.Errorf("Expected total USD 10000, got %f", c.TotalUSD)
		}
		if c.TotalBRL != 55000 {
			t.Errorf("Expected total BRL 55000, got %f", c.TotalBRL)
		}
		if mock.CallCount != 1 {
			t.Errorf("Expected 1 rate fetch, got %d", mock.CallCount)
		}
	})

	t.Run("rate fetch failure aborts creation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithError(fmt.Errorf("provider down"))
		svc := testutil.NewTestCryptoService(t, db, mock)

		_, err := svc.CreateCryptoHolding(context.Background(), request.CreateCryptoHoldingRequest{
			Name:     "Bitcoin",
			PriceUSD: 50000,
			Quantity: 0.1,
		})
		if err == nil {
			t.Fatal("Expected error when rate fetch fails")
		}

		holdings, err := svc.GetCryptoHoldings()
		if err != nil {
			t.Fatalf("GetCryptoHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 0 {
			t.Errorf("Expected nothing persisted, got %d holdings", len(holdings))
		}
	})
}

// TestCryptoService_UpdateCryptoHolding tests partial edits.
func TestCryptoService_UpdateCryptoHolding(t *testing.T) {
	t.Run("recomputes both totals after quantity edit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithRate(6)
		svc := testutil.NewTestCryptoService(t, db, mock)

		c := testutil.NewCryptoHolding().WithPriceUSD(100).WithQuantity(10).WithRate(5).Build(t, db)

		updated, err := svc.UpdateCryptoHolding(context.Background(), c.ID, request.UpdateCryptoHoldingRequest{
			Quantity: floatPtr(20),
		})
		if err != nil {
			t.Fatalf("UpdateCryptoHolding() returned unexpected error: %v", err)
		}

		if updated.TotalUSD != 2000 {
			t.Errorf("Expected total USD 2000, got %f", updated.TotalUSD)
		}
		// Revalued with the mock's rate, not the stored one.
		if updated.TotalBRL != 12000 {
			t.Errorf("Expected total BRL 12000, got %f", updated.TotalBRL)
		}
	})

	t.Run("unknown holding yields not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestCryptoService(t, db, testutil.NewMockRateClient())

		_, err := svc.UpdateCryptoHolding(context.Background(), testutil.MakeID(), request.UpdateCryptoHoldingRequest{})
		if !errors.Is(err, apperrors.ErrCryptoHoldingNotFound) {
			t.Errorf("Expected ErrCryptoHoldingNotFound, got %v", err)
		}
	})
}

// TestCryptoService_RefreshBRLTotals tests the bulk revaluation.
//
// WHY: BRL totals drift as the rate moves; the refresh must rewrite every
// holding with one consistent rate.
func TestCryptoService_RefreshBRLTotals(t *testing.T) {
	t.Run("revalues all holdings with the current rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithRate(4)
		svc := testutil.NewTestCryptoService(t, db, mock)

		testutil.NewCryptoHolding().WithName("Bitcoin").WithPriceUSD(100).WithQuantity(1).WithRate(5).Build(t, db)
		testutil.NewCryptoHolding().WithName("Ether").WithPriceUSD(50).WithQuantity(2).WithRate(5).Build(t, db)

		rate, err := svc.RefreshBRLTotals(context.Background())
		if err != nil {
			t.Fatalf("RefreshBRLTotals() returned unexpected error: %v", err)
		}
		if rate != 4 {
			t.Errorf("Expected applied rate 4, got %f", rate)
		}

		holdings, err := svc.GetCryptoHoldings()
		if err != nil {
			t.Fatalf("GetCryptoHoldings() returned unexpected error: %v", err)
		}
		for _, c := range holdings {
			if c.TotalBRL != c.TotalUSD*4 {
				t.Errorf("Holding %s not revalued: USD %f BRL %f", c.Name, c.TotalUSD, c.TotalBRL)
			}
		}
	})

	t.Run("failed refresh leaves every holding at the old rate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithRate(4)
		svc := testutil.NewTestCryptoService(t, db, mock)

		testutil.NewCryptoHolding().WithName("Bitcoin").WithPriceUSD(100).WithQuantity(1).WithRate(5).Build(t, db)
		testutil.NewCryptoHolding().WithName("Ether").WithPriceUSD(50).WithQuantity(2).WithRate(5).Build(t, db)

		// Abort the revaluation partway through the row set.
		_, err := db.Exec(`
			CREATE TRIGGER fail_ether_update BEFORE UPDATE ON crypto_holding
			WHEN NEW.name = 'Ether'
			BEGIN SELECT RAISE(ABORT, 'forced failure'); END
		`)
		if err != nil {
			t.Fatalf("Failed to create trigger: %v", err)
		}

		if _, err := svc.RefreshBRLTotals(context.Background()); err == nil {
			t.Fatal("Expected error from forced failure")
		}

		holdings, err := svc.GetCryptoHoldings()
		if err != nil {
			t.Fatalf("GetCryptoHoldings() returned unexpected error: %v", err)
		}
		for _, c := range holdings {
			if c.TotalBRL != c.TotalUSD*5 {
				t.Errorf("Holding %s partially revalued: USD %f BRL %f", c.Name, c.TotalUSD, c.TotalBRL)
			}
		}
	})
}
