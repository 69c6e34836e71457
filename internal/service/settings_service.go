package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
)

// SettingsService stores the exchange-rate provider settings. The provider
// token is fernet-encrypted before it reaches the database and decrypted on
// read, so plaintext tokens never touch disk.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	key          *fernet.Key
}

// NewSettingsService creates a new SettingsService. fernetKey must be a
// base64-encoded 32-byte key; an empty key disables encryption and tokens
// are stored as-is.
func NewSettingsService(settingsRepo *repository.SettingsRepository, fernetKey string) (*SettingsService, error) {
	s := &SettingsService{settingsRepo: settingsRepo}

	if fernetKey != "" {
		keys, err := fernet.DecodeKeys(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		s.key = keys[0]
	}

	return s, nil
}

// GetRateProviderConfig retrieves the stored provider settings with the
// token decrypted.
func (s *SettingsService) GetRateProviderConfig() (model.RateProviderConfig, error) {
	cfg, err := s.settingsRepo.GetRateProviderConfig()
	if err != nil {
		return model.RateProviderConfig{}, err
	}

	if s.key != nil && cfg.Token != "" {
		plaintext := fernet.VerifyAndDecrypt([]byte(cfg.Token), 0, []*fernet.Key{s.key})
		if plaintext == nil {
			return model.RateProviderConfig{}, fmt.Errorf("failed to decrypt rate provider token")
		}
		cfg.Token = string(plaintext)
	}

	return cfg, nil
}

// UpdateRateProviderConfig replaces the stored provider settings,
// encrypting the token when a key is configured.
func (s *SettingsService) UpdateRateProviderConfig(ctx context.Context, req request.UpdateRateProviderRequest) (model.RateProviderConfig, error) {
	cfg := model.RateProviderConfig{
		ID:        uuid.NewString(),
		Token:     req.Token,
		Enabled:   req.Enabled,
		UpdatedAt: time.Now().UTC(),
	}

	stored := cfg
	if s.key != nil && cfg.Token != "" {
		ciphertext, err := fernet.EncryptAndSign([]byte(cfg.Token), s.key)
		if err != nil {
			return model.RateProviderConfig{}, fmt.Errorf("failed to encrypt rate provider token: %w", err)
		}
		stored.Token = string(ciphertext)
	}

	if err := s.settingsRepo.UpsertRateProviderConfig(ctx, stored); err != nil {
		return model.RateProviderConfig{}, err
	}

	return cfg, nil
}
