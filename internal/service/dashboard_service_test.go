package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/testutil"
)

// TestDashboardService_GetDashboard tests the combined live view.
//
// WHY: The dashboard ties everything together: category tabs, the crypto tab
// revalued with the live rate, and a portfolio total used as the shared
// percentage denominator.
func TestDashboardService_GetDashboard(t *testing.T) {
	t.Run("empty portfolio yields zero dashboard", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDashboardService(t, db, testutil.NewMockRateClient())

		dashboard, err := svc.GetDashboard(context.Background())
		if err != nil {
			t.Fatalf("GetDashboard() returned unexpected error: %v", err)
		}

		if dashboard.PortfolioTotalBRL != 0 {
			t.Errorf("Expected zero portfolio total, got %f", dashboard.PortfolioTotalBRL)
		}
		if len(dashboard.Tabs) != 0 {
			t.Errorf("Expected no tabs, got %d", len(dashboard.Tabs))
		}
		if dashboard.Crypto.AssetCount != 0 {
			t.Errorf("Expected no crypto assets, got %d", dashboard.Crypto.AssetCount)
		}
	})

	t.Run("combines tabs and crypto against one portfolio total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithRate(5)
		svc := testutil.NewTestDashboardService(t, db, mock)

		// 4000 in Ações, 1000 in Fundos, 100 USD of crypto at rate 5 = 500 BRL.
		testutil.NewHolding().WithName("PETR4").WithCategory("Ações").WithPrice(40).WithQuantity(100).Build(t, db)
		testutil.NewHolding().WithName("HGLG11").WithCategory("Fundos").WithPrice(100).WithQuantity(10).Build(t, db)
		testutil.NewCryptoHolding().WithPriceUSD(100).WithQuantity(1).WithRate(99).Build(t, db)

		dashboard, err := svc.GetDashboard(context.Background())
		if err != nil {
			t.Fatalf("GetDashboard() returned unexpected error: %v", err)
		}

		if !almostEqual(dashboard.PortfolioTotalBRL, 5500) {
			t.Errorf("Expected portfolio total 5500, got %f", dashboard.PortfolioTotalBRL)
		}
		if dashboard.USDBRLRate != 5 {
			t.Errorf("Expected rate 5, got %f", dashboard.USDBRLRate)
		}

		acoes, ok := dashboard.Tabs["Ações"]
		if !ok {
			t.Fatal("Expected Ações tab")
		}
		if !almostEqual(acoes.PercentOfPortfolio, 4000.0/5500.0*100) {
			t.Errorf("Unexpected Ações percent %f", acoes.PercentOfPortfolio)
		}

		// Stored BRL total (rate 99) must be ignored in favor of the live rate.
		if !almostEqual(dashboard.Crypto.TotalBRL, 500) {
			t.Errorf("Expected crypto BRL 500 at live rate, got %f", dashboard.Crypto.TotalBRL)
		}
		if !almostEqual(dashboard.Crypto.PercentOfPortfolio, 500.0/5500.0*100) {
			t.Errorf("Unexpected crypto percent %f", dashboard.Crypto.PercentOfPortfolio)
		}
	})

	t.Run("rate failure fails the dashboard", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockRateClient().WithError(fmt.Errorf("provider down"))
		svc := testutil.NewTestDashboardService(t, db, mock)

		if _, err := svc.GetDashboard(context.Background()); err == nil {
			t.Error("Expected error when the rate fetch fails")
		}
	})
}
