package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// CryptoRepository provides data access methods for the crypto_holding table.
type CryptoRepository struct {
	db *sql.DB
}

// NewCryptoRepository creates a new CryptoRepository with the provided database connection.
func NewCryptoRepository(db *sql.DB) *CryptoRepository {
	return &CryptoRepository{db: db}
}

// GetCryptoHoldings retrieves all crypto holdings in insertion order.
// Returns an empty slice when the table is empty.
func (r *CryptoRepository) GetCryptoHoldings() ([]model.CryptoHolding, error) {
	query := `
          SELECT id, name, ticker, sector, custody, price_usd, quantity, total_usd, total_brl
          FROM crypto_holding
          ORDER BY created_at ASC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crypto_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.CryptoHolding{}

	for rows.Next() {
		var c model.CryptoHolding

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Ticker,
			&c.Sector,
			&c.Custody,
			&c.PriceUSD,
			&c.Quantity,
			&c.TotalUSD,
			&c.TotalBRL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crypto_holding table results: %w", err)
		}

		holdings = append(holdings, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crypto_holding table: %w", err)
	}

	return holdings, nil
}

// GetCryptoHoldingOnID retrieves a single crypto holding by its ID.
func (r *CryptoRepository) GetCryptoHoldingOnID(holdingID string) (model.CryptoHolding, error) {
	query := `
          SELECT id, name, ticker, sector, custody, price_usd, quantity, total_usd, total_brl
          FROM crypto_holding
          WHERE id = ?
      `
	var c model.CryptoHolding

	err := r.db.QueryRow(query, holdingID).Scan(
		&c.ID,
		&c.Name,
		&c.Ticker,
		&c.Sector,
		&c.Custody,
		&c.PriceUSD,
		&c.Quantity,
		&c.TotalUSD,
		&c.TotalBRL,
	)
	if err == sql.ErrNoRows {
		return model.CryptoHolding{}, apperrors.ErrCryptoHoldingNotFound
	}
	if err != nil {
		return model.CryptoHolding{}, fmt.Errorf("failed to query crypto_holding: %w", err)
	}

	return c, nil
}

// InsertCryptoHolding persists a new crypto holding.
func (r *CryptoRepository) InsertCryptoHolding(ctx context.Context, c model.CryptoHolding) error {
	query := `
        INSERT INTO crypto_holding (id, name, ticker, sector, custody, price_usd, quantity, total_usd, total_brl)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Ticker,
		c.Sector,
		c.Custody,
		c.PriceUSD,
		c.Quantity,
		c.TotalUSD,
		c.TotalBRL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert crypto_holding: %w", err)
	}

	return nil
}

// UpdateCryptoHolding overwrites all mutable fields of a crypto holding.
func (r *CryptoRepository) UpdateCryptoHolding(ctx context.Context, c model.CryptoHolding) error {
	query := `
        UPDATE crypto_holding
        SET name = ?, ticker = ?, sector = ?, custody = ?, price_usd = ?, quantity = ?, total_usd = ?, total_brl = ?
        WHERE id = ?
    `

	result, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Ticker,
		c.Sector,
		c.Custody,
		c.PriceUSD,
		c.Quantity,
		c.TotalUSD,
		c.TotalBRL,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update crypto_holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrCryptoHoldingNotFound
	}

	return nil
}

// RevalueBRLTotals rewrites every holding's BRL total from its USD total and
// the given rate in one statement, so a failure leaves no partial revaluation.
func (r *CryptoRepository) RevalueBRLTotals(ctx context.Context, rate float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE crypto_holding SET total_brl = total_usd * ?`, rate)
	if err != nil {
		return fmt.Errorf("failed to revalue crypto_holding totals: %w", err)
	}
	return nil
}

// DeleteCryptoHolding removes a crypto holding by ID.
func (r *CryptoRepository) DeleteCryptoHolding(ctx context.Context, holdingID string) error {
	query := `DELETE FROM crypto_holding WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete crypto_holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrCryptoHoldingNotFound
	}

	return nil
}

// CountBySector returns how many crypto holdings currently carry the given
// sector label. Used for the label removal referential guard.
func (r *CryptoRepository) CountBySector(sector string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM crypto_holding WHERE sector = ? COLLATE NOCASE`, sector).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count crypto holdings by sector: %w", err)
	}
	return count, nil
}

// CountByCustody returns how many crypto holdings currently carry the given
// custody label.
func (r *CryptoRepository) CountByCustody(custody string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM crypto_holding WHERE custody = ? COLLATE NOCASE`, custody).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count crypto holdings by custody: %w", err)
	}
	return count, nil
}
