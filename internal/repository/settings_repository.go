package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// SettingsRepository provides data access methods for the
// rate_provider_config table. The token column always holds ciphertext; the
// service layer is responsible for encryption and decryption.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetRateProviderConfig retrieves the stored provider settings. The single
// row semantics mirror a key/value settings table: at most one config exists.
func (r *SettingsRepository) GetRateProviderConfig() (model.RateProviderConfig, error) {
	query := `
          SELECT id, token, enabled, updated_at
          FROM rate_provider_config
          LIMIT 1
      `
	var cfg model.RateProviderConfig
	var updatedAtStr string

	err := r.db.QueryRow(query).Scan(
		&cfg.ID,
		&cfg.Token,
		&cfg.Enabled,
		&updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return model.RateProviderConfig{}, apperrors.ErrRateProviderNotConfigured
	}
	if err != nil {
		return model.RateProviderConfig{}, fmt.Errorf("failed to query rate_provider_config: %w", err)
	}

	cfg.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil || cfg.UpdatedAt.IsZero() {
		return model.RateProviderConfig{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return cfg, nil
}

// UpsertRateProviderConfig replaces the stored provider settings.
func (r *SettingsRepository) UpsertRateProviderConfig(ctx context.Context, cfg model.RateProviderConfig) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rate_provider_config`); err != nil {
		return fmt.Errorf("failed to clear rate_provider_config: %w", err)
	}

	query := `
        INSERT INTO rate_provider_config (id, token, enabled, updated_at)
        VALUES (?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		cfg.ID,
		cfg.Token,
		cfg.Enabled,
		cfg.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate_provider_config: %w", err)
	}

	return nil
}
