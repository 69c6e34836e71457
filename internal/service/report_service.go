package service

import (
	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
)

// ReportService derives period summaries from the snapshot history.
type ReportService struct {
	snapshotRepo *repository.SnapshotRepository
}

// NewReportService creates a new ReportService with the provided repository.
func NewReportService(snapshotRepo *repository.SnapshotRepository) *ReportService {
	return &ReportService{snapshotRepo: snapshotRepo}
}

// Summary computes the period P&L and latest-snapshot category allocation
// for the given date range. Either bound may be nil; a range with from after
// to is rejected.
func (s *ReportService) Summary(dateRange DateRange) (model.ReportSummary, error) {
	if dateRange.From != nil && dateRange.To != nil && dateRange.From.After(endOfDay(*dateRange.To)) {
		return model.ReportSummary{}, apperrors.ErrInvalidDateRange
	}

	groups, err := s.snapshotRepo.GetGroups()
	if err != nil {
		return model.ReportSummary{}, err
	}

	return DeriveSummary(groups, dateRange), nil
}
