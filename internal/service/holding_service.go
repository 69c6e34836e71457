package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/validation"
)

// HoldingService handles business logic for traditional asset positions.
// The stored total is always derived from price and quantity here; callers
// can never set it directly.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService with the provided repository.
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{holdingRepo: holdingRepo}
}

// GetHoldings retrieves all holdings, optionally filtered by category.
func (s *HoldingService) GetHoldings(category string) ([]model.Holding, error) {
	return s.holdingRepo.GetHoldings(category)
}

// GetHolding retrieves a single holding by ID.
func (s *HoldingService) GetHolding(holdingID string) (model.Holding, error) {
	return s.holdingRepo.GetHoldingOnID(holdingID)
}

// CreateHolding validates and persists a new holding. A missing category
// falls back to the default placeholder so grouping keys are never empty.
func (s *HoldingService) CreateHolding(ctx context.Context, req request.CreateHoldingRequest) (model.Holding, error) {
	if err := validation.ValidateCreateHolding(req); err != nil {
		return model.Holding{}, err
	}

	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}

	h := model.Holding{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Ticker:           req.Ticker,
		Category:         category,
		Price:            req.Price,
		Quantity:         req.Quantity,
		Total:            req.Price * req.Quantity,
		Return:           req.Return,
		ReturnPercentage: req.ReturnPercentage,
	}

	if err := s.holdingRepo.InsertHolding(ctx, h); err != nil {
		return model.Holding{}, err
	}

	return h, nil
}

// UpdateHolding applies a partial edit to a holding. Price or quantity
// changes always recompute the stored total, never the reverse.
func (s *HoldingService) UpdateHolding(ctx context.Context, holdingID string, req request.UpdateHoldingRequest) (model.Holding, error) {
	if err := validation.ValidateUpdateHolding(req); err != nil {
		return model.Holding{}, err
	}

	h, err := s.holdingRepo.GetHoldingOnID(holdingID)
	if err != nil {
		return model.Holding{}, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Ticker != nil {
		h.Ticker = *req.Ticker
	}
	if req.Category != nil {
		h.Category = *req.Category
		if h.Category == "" {
			h.Category = model.DefaultCategory
		}
	}
	if req.Price != nil {
		h.Price = *req.Price
	}
	if req.Quantity != nil {
		h.Quantity = *req.Quantity
	}
	if req.Return != nil {
		h.Return = *req.Return
	}
	if req.ReturnPercentage != nil {
		h.ReturnPercentage = *req.ReturnPercentage
	}

	h.Total = h.Price * h.Quantity

	if err := s.holdingRepo.UpdateHolding(ctx, h); err != nil {
		return model.Holding{}, err
	}

	return h, nil
}

// DeleteHolding removes a holding by ID.
func (s *HoldingService) DeleteHolding(ctx context.Context, holdingID string) error {
	return s.holdingRepo.DeleteHolding(ctx, holdingID)
}
