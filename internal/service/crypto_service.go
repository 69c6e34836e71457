package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/rates"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/validation"
)

// CryptoService handles business logic for crypto positions. USD totals are
// derived from price and quantity; BRL totals are recomputed with the
// prevailing USD to BRL rate whenever the USD total or the rate changes.
type CryptoService struct {
	cryptoRepo *repository.CryptoRepository
	rateClient rates.Client
}

// NewCryptoService creates a new CryptoService with the provided repository
// and exchange-rate client.
func NewCryptoService(cryptoRepo *repository.CryptoRepository, rateClient rates.Client) *CryptoService {
	return &CryptoService{
		cryptoRepo: cryptoRepo,
		rateClient: rateClient,
	}
}

// GetCryptoHoldings retrieves all crypto holdings.
func (s *CryptoService) GetCryptoHoldings() ([]model.CryptoHolding, error) {
	return s.cryptoRepo.GetCryptoHoldings()
}

// GetCryptoHolding retrieves a single crypto holding by ID.
func (s *CryptoService) GetCryptoHolding(holdingID string) (model.CryptoHolding, error) {
	return s.cryptoRepo.GetCryptoHoldingOnID(holdingID)
}

// CreateCryptoHolding validates and persists a new crypto holding, fetching
// the current USD to BRL rate to fill the local-currency total.
func (s *CryptoService) CreateCryptoHolding(ctx context.Context, req request.CreateCryptoHoldingRequest) (model.CryptoHolding, error) {
	if err := validation.ValidateCreateCryptoHolding(req); err != nil {
		return model.CryptoHolding{}, err
	}

	rate, err := s.rateClient.GetUSDBRL(ctx)
	if err != nil {
		return model.CryptoHolding{}, fmt.Errorf("failed to fetch USD-BRL rate: %w", err)
	}

	c := model.CryptoHolding{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Ticker:   req.Ticker,
		Sector:   req.Sector,
		Custody:  req.Custody,
		PriceUSD: req.PriceUSD,
		Quantity: req.Quantity,
	}
	c.TotalUSD = c.PriceUSD * c.Quantity
	c.TotalBRL = c.TotalUSD * rate

	if err := s.cryptoRepo.InsertCryptoHolding(ctx, c); err != nil {
		return model.CryptoHolding{}, err
	}

	return c, nil
}

// UpdateCryptoHolding applies a partial edit to a crypto holding. Both totals
// are recomputed: USD from price and quantity, BRL from the current rate.
func (s *CryptoService) UpdateCryptoHolding(ctx context.Context, holdingID string, req request.UpdateCryptoHoldingRequest) (model.CryptoHolding, error) {
	if err := validation.ValidateUpdateCryptoHolding(req); err != nil {
		return model.CryptoHolding{}, err
	}

	c, err := s.cryptoRepo.GetCryptoHoldingOnID(holdingID)
	if err != nil {
		return model.CryptoHolding{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Ticker != nil {
		c.Ticker = *req.Ticker
	}
	if req.Sector != nil {
		c.Sector = *req.Sector
	}
	if req.Custody != nil {
		c.Custody = *req.Custody
	}
	if req.PriceUSD != nil {
		c.PriceUSD = *req.PriceUSD
	}
	if req.Quantity != nil {
		c.Quantity = *req.Quantity
	}

	rate, err := s.rateClient.GetUSDBRL(ctx)
	if err != nil {
		return model.CryptoHolding{}, fmt.Errorf("failed to fetch USD-BRL rate: %w", err)
	}

	c.TotalUSD = c.PriceUSD * c.Quantity
	c.TotalBRL = c.TotalUSD * rate

	if err := s.cryptoRepo.UpdateCryptoHolding(ctx, c); err != nil {
		return model.CryptoHolding{}, err
	}

	return c, nil
}

// DeleteCryptoHolding removes a crypto holding by ID.
func (s *CryptoService) DeleteCryptoHolding(ctx context.Context, holdingID string) error {
	return s.cryptoRepo.DeleteCryptoHolding(ctx, holdingID)
}

// RefreshBRLTotals recomputes the BRL total of every crypto holding with the
// current USD to BRL rate. Returns the rate used.
func (s *CryptoService) RefreshBRLTotals(ctx context.Context) (float64, error) {
	rate, err := s.rateClient.GetUSDBRL(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch USD-BRL rate: %w", err)
	}

	if err := s.cryptoRepo.RevalueBRLTotals(ctx, rate); err != nil {
		return 0, err
	}

	return rate, nil
}
