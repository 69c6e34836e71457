package service

import (
	"database/sql"
	"fmt"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/database"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/version"
)

// SystemService exposes health and version information.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService with the provided database connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// HealthCheck verifies the database connection is alive.
func (s *SystemService) HealthCheck() error {
	return database.HealthCheck(s.db)
}

// Version returns the application version and the current database
// migration version.
func (s *SystemService) Version() (model.VersionInfo, error) {
	dbVersion, err := database.DbVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}

	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  fmt.Sprintf("%d", dbVersion),
	}, nil
}
