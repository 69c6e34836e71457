package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/rates"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
)

// DashboardService assembles the live portfolio view. Holdings, crypto
// holdings, and the conversion rate come from independent sources, so the
// three loads run concurrently before the aggregation functions combine them.
type DashboardService struct {
	holdingRepo *repository.HoldingRepository
	cryptoRepo  *repository.CryptoRepository
	rateClient  rates.Client
}

// NewDashboardService creates a new DashboardService with the provided
// repositories and exchange-rate client.
func NewDashboardService(
	holdingRepo *repository.HoldingRepository,
	cryptoRepo *repository.CryptoRepository,
	rateClient rates.Client,
) *DashboardService {
	return &DashboardService{
		holdingRepo: holdingRepo,
		cryptoRepo:  cryptoRepo,
		rateClient:  rateClient,
	}
}

// GetDashboard loads all holdings and the current USD to BRL rate, converts
// crypto totals with the live rate, and computes per-category tab metrics
// plus the crypto metrics against the full portfolio total.
func (s *DashboardService) GetDashboard(ctx context.Context) (model.Dashboard, error) {
	var (
		holdings []model.Holding
		cryptos  []model.CryptoHolding
		rate     float64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		holdings, err = s.holdingRepo.GetHoldings("")
		return err
	})
	g.Go(func() error {
		var err error
		cryptos, err = s.cryptoRepo.GetCryptoHoldings()
		return err
	})
	g.Go(func() error {
		var err error
		rate, err = s.rateClient.GetUSDBRL(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch USD-BRL rate: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	// Revalue crypto with the live rate; the persisted BRL totals may be
	// stale between refreshes.
	for i := range cryptos {
		cryptos[i].TotalBRL = cryptos[i].TotalUSD * rate
	}

	var portfolioTotal float64
	byCategory := make(map[string][]model.Holding)
	for _, h := range holdings {
		portfolioTotal += h.Total
		byCategory[h.Category] = append(byCategory[h.Category], h)
	}
	for _, c := range cryptos {
		portfolioTotal += c.TotalBRL
	}

	dashboard := model.Dashboard{
		PortfolioTotalBRL: portfolioTotal,
		USDBRLRate:        rate,
		Tabs:              make(map[string]model.TabMetrics, len(byCategory)),
		Crypto:            ComputeCryptoMetrics(cryptos, portfolioTotal),
	}

	for category, tab := range byCategory {
		dashboard.Tabs[category] = ComputeTabMetrics(tab, portfolioTotal)
	}

	return dashboard, nil
}
