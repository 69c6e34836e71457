package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Traditional asset positions
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			ticker VARCHAR(20) NOT NULL,
			category VARCHAR(100) NOT NULL,
			price FLOAT NOT NULL,
			quantity FLOAT NOT NULL,
			total FLOAT NOT NULL,
			return_value FLOAT NOT NULL DEFAULT 0,
			return_percentage FLOAT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Crypto positions, priced in USD with a BRL conversion
		CREATE TABLE crypto_holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			ticker VARCHAR(20) NOT NULL,
			sector VARCHAR(100) NOT NULL,
			custody VARCHAR(100) NOT NULL,
			price_usd FLOAT NOT NULL,
			quantity FLOAT NOT NULL,
			total_usd FLOAT NOT NULL,
			total_brl FLOAT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Open label vocabularies (category / sector / custody)
		CREATE TABLE label (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			kind VARCHAR(10) NOT NULL,
			name VARCHAR(100) NOT NULL,
			CONSTRAINT unique_label_kind_name UNIQUE (kind, name COLLATE NOCASE)
		);

		-- Snapshot groups and their valuation items
		CREATE TABLE snapshot_group (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			created_at DATETIME NOT NULL,
			notes TEXT
		);

		CREATE TABLE snapshot_item (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			group_id VARCHAR(36) NOT NULL,
			asset_id VARCHAR(36),
			asset_name VARCHAR(100) NOT NULL,
			asset_category_name VARCHAR(100) NOT NULL,
			total_value_brl FLOAT NOT NULL,
			is_crypto_total BOOLEAN NOT NULL DEFAULT FALSE,
			FOREIGN KEY(group_id) REFERENCES snapshot_group(id) ON DELETE CASCADE
		);

		-- Exchange-rate provider settings
		CREATE TABLE rate_provider_config (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			token VARCHAR(500) NOT NULL,
			enabled BOOLEAN NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := db.Exec(schema)
	return err
}
