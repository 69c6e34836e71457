package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// It handles retrieving and mutating traditional asset positions.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings, optionally filtered by category label.
// Rows are returned in insertion order. Returns an empty slice when no
// holdings match.
func (r *HoldingRepository) GetHoldings(category string) ([]model.Holding, error) {
	query := `
          SELECT id, name, ticker, category, price, quantity, total, return_value, return_percentage
          FROM holding
          WHERE 1=1
      `
	var args []any

	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding

		err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Ticker,
			&h.Category,
			&h.Price,
			&h.Quantity,
			&h.Total,
			&h.Return,
			&h.ReturnPercentage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by its ID.
func (r *HoldingRepository) GetHoldingOnID(holdingID string) (model.Holding, error) {
	query := `
          SELECT id, name, ticker, category, price, quantity, total, return_value, return_percentage
          FROM holding
          WHERE id = ?
      `
	var h model.Holding

	err := r.db.QueryRow(query, holdingID).Scan(
		&h.ID,
		&h.Name,
		&h.Ticker,
		&h.Category,
		&h.Price,
		&h.Quantity,
		&h.Total,
		&h.Return,
		&h.ReturnPercentage,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}

	return h, nil
}

// InsertHolding persists a new holding.
func (r *HoldingRepository) InsertHolding(ctx context.Context, h model.Holding) error {
	query := `
        INSERT INTO holding (id, name, ticker, category, price, quantity, total, return_value, return_percentage)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.Ticker,
		h.Category,
		h.Price,
		h.Quantity,
		h.Total,
		h.Return,
		h.ReturnPercentage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// UpdateHolding overwrites all mutable fields of a holding.
func (r *HoldingRepository) UpdateHolding(ctx context.Context, h model.Holding) error {
	query := `
        UPDATE holding
        SET name = ?, ticker = ?, category = ?, price = ?, quantity = ?, total = ?, return_value = ?, return_percentage = ?
        WHERE id = ?
    `

	result, err := r.db.ExecContext(ctx, query,
		h.Name,
		h.Ticker,
		h.Category,
		h.Price,
		h.Quantity,
		h.Total,
		h.Return,
		h.ReturnPercentage,
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// DeleteHolding removes a holding by ID.
func (r *HoldingRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	query := `DELETE FROM holding WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// CountByCategory returns how many holdings currently carry the given
// category label. Used for the label removal referential guard.
func (r *HoldingRepository) CountByCategory(category string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM holding WHERE category = ? COLLATE NOCASE`, category).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count holdings by category: %w", err)
	}
	return count, nil
}
