package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/request"
	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/testutil"
)

// testFernetKey is a base64-encoded 32-byte key used only in tests.
const testFernetKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// TestSettingsService_RateProviderConfig tests the provider settings store.
//
// WHY: The provider token must round-trip through encryption: plaintext in
// and out of the service, ciphertext in the database.
func TestSettingsService_RateProviderConfig(t *testing.T) {
	t.Run("unconfigured store yields sentinel", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db, testFernetKey)

		_, err := svc.GetRateProviderConfig()
		if !errors.Is(err, apperrors.ErrRateProviderNotConfigured) {
			t.Errorf("Expected ErrRateProviderNotConfigured, got %v", err)
		}
	})

	t.Run("token round-trips through encryption", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db, testFernetKey)

		stored, err := svc.UpdateRateProviderConfig(context.Background(), request.UpdateRateProviderRequest{
			Token:   "secret-token",
			Enabled: true,
		})
		if err != nil {
			t.Fatalf("UpdateRateProviderConfig() returned unexpected error: %v", err)
		}
		if stored.Token != "secret-token" {
			t.Errorf("Expected plaintext token back, got %q", stored.Token)
		}

		cfg, err := svc.GetRateProviderConfig()
		if err != nil {
			t.Fatalf("GetRateProviderConfig() returned unexpected error: %v", err)
		}
		if cfg.Token != "secret-token" {
			t.Errorf("Expected decrypted token, got %q", cfg.Token)
		}
		if !cfg.Enabled {
			t.Error("Expected enabled flag to persist")
		}

		// The database row must not hold the plaintext.
		var raw string
		if err := db.QueryRow(`SELECT token FROM rate_provider_config`).Scan(&raw); err != nil {
			t.Fatalf("Failed to read stored token: %v", err)
		}
		if raw == "secret-token" {
			t.Error("Expected ciphertext at rest, found plaintext")
		}
	})

	t.Run("update replaces the previous settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db, testFernetKey)

		if _, err := svc.UpdateRateProviderConfig(context.Background(), request.UpdateRateProviderRequest{Token: "old"}); err != nil {
			t.Fatalf("First update returned unexpected error: %v", err)
		}
		if _, err := svc.UpdateRateProviderConfig(context.Background(), request.UpdateRateProviderRequest{Token: "new"}); err != nil {
			t.Fatalf("Second update returned unexpected error: %v", err)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM rate_provider_config`).Scan(&count); err != nil {
			t.Fatalf("Failed to count settings rows: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected a single settings row, got %d", count)
		}

		cfg, err := svc.GetRateProviderConfig()
		if err != nil {
			t.Fatalf("GetRateProviderConfig() returned unexpected error: %v", err)
		}
		if cfg.Token != "new" {
			t.Errorf("Expected latest token, got %q", cfg.Token)
		}
	})

	t.Run("empty key stores the token as-is", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db, "")

		if _, err := svc.UpdateRateProviderConfig(context.Background(), request.UpdateRateProviderRequest{Token: "plain"}); err != nil {
			t.Fatalf("UpdateRateProviderConfig() returned unexpected error: %v", err)
		}

		var raw string
		if err := db.QueryRow(`SELECT token FROM rate_provider_config`).Scan(&raw); err != nil {
			t.Fatalf("Failed to read stored token: %v", err)
		}
		if raw != "plain" {
			t.Errorf("Expected plaintext without a key, got %q", raw)
		}
	})
}
