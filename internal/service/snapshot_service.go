package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/validation"
)

// duplicateNotesPrefix marks a duplicated group's provenance in its notes.
const duplicateNotesPrefix = "Cópia de"

// SnapshotService handles snapshot registration, duplication, deletion, and
// the pivoted views over the snapshot history.
type SnapshotService struct {
	db           *sql.DB
	snapshotRepo *repository.SnapshotRepository
	holdingRepo  *repository.HoldingRepository
	cryptoRepo   *repository.CryptoRepository
}

// NewSnapshotService creates a new SnapshotService. The database handle is
// used to open the transaction wrapping snapshot registration.
func NewSnapshotService(
	db *sql.DB,
	snapshotRepo *repository.SnapshotRepository,
	holdingRepo *repository.HoldingRepository,
	cryptoRepo *repository.CryptoRepository,
) *SnapshotService {
	return &SnapshotService{
		db:           db,
		snapshotRepo: snapshotRepo,
		holdingRepo:  holdingRepo,
		cryptoRepo:   cryptoRepo,
	}
}

// GetSnapshots retrieves all snapshot groups with their items, oldest first.
func (s *SnapshotService) GetSnapshots() ([]model.SnapshotGroup, error) {
	return s.snapshotRepo.GetGroups()
}

// GetSnapshot retrieves a single snapshot group with its items.
func (s *SnapshotService) GetSnapshot(groupID string) (model.SnapshotGroup, error) {
	return s.snapshotRepo.GetGroupOnID(groupID)
}

// RegisterSnapshot captures a new snapshot group atomically: the group row
// and all item rows are inserted in one transaction so a failed item insert
// never leaves a partial group behind.
func (s *SnapshotService) RegisterSnapshot(ctx context.Context, req request.RegisterSnapshotRequest) (model.SnapshotGroup, error) {
	if err := validation.ValidateRegisterSnapshot(req); err != nil {
		return model.SnapshotGroup{}, err
	}

	g := model.SnapshotGroup{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Notes:     req.Notes,
		Items:     make([]model.SnapshotItem, len(req.Items)),
	}

	for i, item := range req.Items {
		category := item.CategoryName
		if category == "" {
			category = model.DefaultCategory
		}
		g.Items[i] = model.SnapshotItem{
			ID:            uuid.NewString(),
			GroupID:       g.ID,
			AssetID:       item.AssetID,
			AssetName:     item.AssetName,
			CategoryName:  category,
			TotalValueBRL: item.TotalValueBRL,
			IsCryptoTotal: item.IsCryptoTotal,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.SnapshotGroup{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	txRepo := s.snapshotRepo.WithTx(tx)

	if err := txRepo.InsertGroup(ctx, g); err != nil {
		return model.SnapshotGroup{}, err
	}
	if err := txRepo.InsertItems(ctx, g.Items); err != nil {
		return model.SnapshotGroup{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.SnapshotGroup{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return g, nil
}

// CaptureCurrent registers a snapshot of the present portfolio state: one
// item per holding valued at its stored total, plus a single synthetic item
// for the combined crypto BRL total when any crypto holdings exist.
func (s *SnapshotService) CaptureCurrent(ctx context.Context, notes string) (model.SnapshotGroup, error) {
	holdings, err := s.holdingRepo.GetHoldings("")
	if err != nil {
		return model.SnapshotGroup{}, err
	}
	cryptos, err := s.cryptoRepo.GetCryptoHoldings()
	if err != nil {
		return model.SnapshotGroup{}, err
	}

	req := request.RegisterSnapshotRequest{Notes: notes}

	for _, h := range holdings {
		id := h.ID
		req.Items = append(req.Items, request.SnapshotItemRequest{
			AssetID:       &id,
			AssetName:     h.Name,
			CategoryName:  h.Category,
			TotalValueBRL: h.Total,
		})
	}

	if len(cryptos) > 0 {
		var cryptoTotalBRL float64
		for _, c := range cryptos {
			cryptoTotalBRL += c.TotalBRL
		}
		req.Items = append(req.Items, request.SnapshotItemRequest{
			AssetName:     "Cripto",
			CategoryName:  "Cripto",
			TotalValueBRL: cryptoTotalBRL,
			IsCryptoTotal: true,
		})
	}

	if len(req.Items) == 0 {
		return model.SnapshotGroup{}, apperrors.ErrEmptySnapshot
	}

	return s.RegisterSnapshot(ctx, req)
}

// DuplicateSnapshot copies a snapshot group and its items into a new group
// stamped with the current time. The copy runs as an explicit two-step with
// compensation: the new group row is inserted first, then the copied items;
// if the item insert fails the group row is deleted again so no orphaned
// group survives, and the whole operation is reported as failed.
func (s *SnapshotService) DuplicateSnapshot(ctx context.Context, groupID string) (model.SnapshotGroup, error) {
	source, err := s.snapshotRepo.GetGroupOnID(groupID)
	if err != nil {
		return model.SnapshotGroup{}, err
	}

	notes := fmt.Sprintf("%s %s", duplicateNotesPrefix, source.CreatedAt.UTC().Format("2006-01-02"))
	if source.Notes != "" {
		notes = fmt.Sprintf("%s: %s", notes, source.Notes)
	}

	copied := model.SnapshotGroup{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Notes:     notes,
		Items:     make([]model.SnapshotItem, len(source.Items)),
	}

	for i, item := range source.Items {
		item.ID = uuid.NewString()
		item.GroupID = copied.ID
		copied.Items[i] = item
	}

	if err := s.snapshotRepo.InsertGroup(ctx, copied); err != nil {
		return model.SnapshotGroup{}, err
	}

	if err := s.snapshotRepo.InsertItems(ctx, copied.Items); err != nil {
		if delErr := s.snapshotRepo.DeleteGroup(ctx, copied.ID); delErr != nil {
			return model.SnapshotGroup{}, fmt.Errorf("%w: %v (compensation delete also failed: %v)",
				apperrors.ErrDuplicationFailed, err, delErr)
		}
		return model.SnapshotGroup{}, fmt.Errorf("%w: %v", apperrors.ErrDuplicationFailed, err)
	}

	return copied, nil
}

// DeleteSnapshot removes a snapshot group and all its items.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, groupID string) error {
	return s.snapshotRepo.DeleteGroup(ctx, groupID)
}

// UpdateItemValue corrects the captured value of a single snapshot item.
func (s *SnapshotService) UpdateItemValue(ctx context.Context, itemID string, req request.UpdateSnapshotItemRequest) (model.SnapshotItem, error) {
	if err := validation.ValidateUpdateSnapshotItem(req); err != nil {
		return model.SnapshotItem{}, err
	}

	if err := s.snapshotRepo.UpdateItemValue(ctx, itemID, req.TotalValueBRL); err != nil {
		return model.SnapshotItem{}, err
	}

	return s.snapshotRepo.GetItemOnID(itemID)
}

// PivotAssets returns the asset-by-date pivot over the full snapshot history.
func (s *SnapshotService) PivotAssets() (model.AssetPivot, error) {
	groups, err := s.snapshotRepo.GetGroups()
	if err != nil {
		return model.AssetPivot{}, err
	}
	return PivotByAsset(groups), nil
}

// PivotDates returns the dense date-keyed series over the full snapshot
// history, grouped by asset or by category.
func (s *SnapshotService) PivotDates(grouping DateGrouping) ([]model.DatePoint, error) {
	groups, err := s.snapshotRepo.GetGroups()
	if err != nil {
		return nil, err
	}
	return PivotByDate(groups, grouping), nil
}
