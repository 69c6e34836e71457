package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/validation"
)

// LabelService manages the category, sector, and custody vocabularies.
// Names are deduplicated case-insensitively on add, and a label can only be
// removed when no holding currently references it.
type LabelService struct {
	labelRepo   *repository.LabelRepository
	holdingRepo *repository.HoldingRepository
	cryptoRepo  *repository.CryptoRepository
}

// NewLabelService creates a new LabelService with the provided repositories.
// The holding repositories back the referential guard on removal.
func NewLabelService(
	labelRepo *repository.LabelRepository,
	holdingRepo *repository.HoldingRepository,
	cryptoRepo *repository.CryptoRepository,
) *LabelService {
	return &LabelService{
		labelRepo:   labelRepo,
		holdingRepo: holdingRepo,
		cryptoRepo:  cryptoRepo,
	}
}

// GetLabels retrieves all labels of a vocabulary.
func (s *LabelService) GetLabels(kind string) ([]model.Label, error) {
	if !model.ValidLabelKind(kind) {
		return nil, apperrors.ErrInvalidLabelKind
	}
	return s.labelRepo.GetLabels(model.LabelKind(kind))
}

// CreateLabel adds a label to a vocabulary. Adding a name that already
// exists in the vocabulary, compared case-insensitively, is rejected.
func (s *LabelService) CreateLabel(ctx context.Context, kind string, req request.CreateLabelRequest) (model.Label, error) {
	if err := validation.ValidateCreateLabel(kind, req); err != nil {
		return model.Label{}, err
	}

	exists, err := s.labelRepo.ExistsByName(model.LabelKind(kind), req.Name)
	if err != nil {
		return model.Label{}, err
	}
	if exists {
		return model.Label{}, apperrors.ErrDuplicateLabel
	}

	l := model.Label{
		ID:   uuid.NewString(),
		Kind: model.LabelKind(kind),
		Name: req.Name,
	}

	if err := s.labelRepo.InsertLabel(ctx, l); err != nil {
		return model.Label{}, err
	}

	return l, nil
}

// DeleteLabel removes a label from its vocabulary. Removal is rejected with
// ErrLabelInUse while any holding still carries the label.
func (s *LabelService) DeleteLabel(ctx context.Context, labelID string) error {
	l, err := s.labelRepo.GetLabelOnID(labelID)
	if err != nil {
		return err
	}

	count, err := s.countReferences(l)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrLabelInUse
	}

	return s.labelRepo.DeleteLabel(ctx, labelID)
}

// countReferences returns how many holdings currently carry the label,
// consulting the table matching the label's vocabulary.
func (s *LabelService) countReferences(l model.Label) (int, error) {
	switch l.Kind {
	case model.LabelKindCategory:
		return s.holdingRepo.CountByCategory(l.Name)
	case model.LabelKindSector:
		return s.cryptoRepo.CountBySector(l.Name)
	case model.LabelKindCustody:
		return s.cryptoRepo.CountByCustody(l.Name)
	}
	return 0, apperrors.ErrInvalidLabelKind
}
