package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/rates"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// MakeID generates a fresh UUID string for test fixtures.
func MakeID() string {
	return uuid.NewString()
}

// Date parses a yyyy-mm-dd string into a UTC time, failing the build on
// malformed input. Test fixture dates are always well-formed literals.
func Date(t *testing.T, str string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		t.Fatalf("Failed to parse test date %q: %v", str, err)
	}
	return parsed.UTC()
}

func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(repository.NewHoldingRepository(db))
}

func NewTestCryptoService(t *testing.T, db *sql.DB, rateClient rates.Client) *service.CryptoService {
	t.Helper()

	return service.NewCryptoService(repository.NewCryptoRepository(db), rateClient)
}

func NewTestLabelService(t *testing.T, db *sql.DB) *service.LabelService {
	t.Helper()

	return service.NewLabelService(
		repository.NewLabelRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewCryptoRepository(db),
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		db,
		repository.NewSnapshotRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewCryptoRepository(db),
	)
}

func NewTestReportService(t *testing.T, db *sql.DB) *service.ReportService {
	t.Helper()

	return service.NewReportService(repository.NewSnapshotRepository(db))
}

func NewTestDashboardService(t *testing.T, db *sql.DB, rateClient rates.Client) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewHoldingRepository(db),
		repository.NewCryptoRepository(db),
		rateClient,
	)
}

func NewTestSettingsService(t *testing.T, db *sql.DB, fernetKey string) *service.SettingsService {
	t.Helper()

	s, err := service.NewSettingsService(repository.NewSettingsRepository(db), fernetKey)
	if err != nil {
		t.Fatalf("Failed to create settings service: %v", err)
	}
	return s
}
