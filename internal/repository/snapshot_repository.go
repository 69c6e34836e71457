package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the snapshot_group and
// snapshot_item tables.
type SnapshotRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// WithTx returns a new SnapshotRepository scoped to the provided transaction.
func (r *SnapshotRepository) WithTx(tx *sql.Tx) *SnapshotRepository {
	return &SnapshotRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *SnapshotRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetGroups retrieves all snapshot groups with their items, sorted ascending
// by capture timestamp. Returns an empty slice when no snapshots exist.
func (r *SnapshotRepository) GetGroups() ([]model.SnapshotGroup, error) {
	query := `
          SELECT id, created_at, notes
          FROM snapshot_group
          ORDER BY created_at ASC
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot_group table: %w", err)
	}
	defer rows.Close()

	groups := []model.SnapshotGroup{}

	for rows.Next() {
		var g model.SnapshotGroup
		var createdAtStr string
		var notes sql.NullString

		err := rows.Scan(
			&g.ID,
			&createdAtStr,
			&notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot_group table results: %w", err)
		}

		g.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || g.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		if notes.Valid {
			g.Notes = notes.String
		}

		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot_group table: %w", err)
	}

	if err := r.attachItems(groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// attachItems loads the items of the given groups in one query and attaches
// them to their parents, preserving insertion order within each group.
func (r *SnapshotRepository) attachItems(groups []model.SnapshotGroup) error {
	if len(groups) == 0 {
		return nil
	}

	itemPlaceholders := make([]string, len(groups))
	for i := range itemPlaceholders {
		itemPlaceholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	itemQuery := `
		SELECT id, group_id, asset_id, asset_name, asset_category_name, total_value_brl, is_crypto_total
		FROM snapshot_item
		WHERE group_id IN (` + strings.Join(itemPlaceholders, ",") + `)
		ORDER BY rowid ASC
	`

	itemArgs := make([]any, len(groups))
	for i, g := range groups {
		itemArgs[i] = g.ID
	}

	rows, err := r.db.Query(itemQuery, itemArgs...)
	if err != nil {
		return fmt.Errorf("failed to query snapshot_item table: %w", err)
	}
	defer rows.Close()

	itemsByGroup := make(map[string][]model.SnapshotItem)

	for rows.Next() {
		var item model.SnapshotItem
		var assetID sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.GroupID,
			&assetID,
			&item.AssetName,
			&item.CategoryName,
			&item.TotalValueBRL,
			&item.IsCryptoTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to scan snapshot_item table results: %w", err)
		}

		if assetID.Valid {
			item.AssetID = &assetID.String
		}

		itemsByGroup[item.GroupID] = append(itemsByGroup[item.GroupID], item)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating snapshot_item table: %w", err)
	}

	for i := range groups {
		groups[i].Items = itemsByGroup[groups[i].ID]
	}

	return nil
}

// GetGroupOnID retrieves a single snapshot group with its items.
func (r *SnapshotRepository) GetGroupOnID(groupID string) (model.SnapshotGroup, error) {
	query := `
          SELECT id, created_at, notes
          FROM snapshot_group
          WHERE id = ?
      `
	var g model.SnapshotGroup
	var createdAtStr string
	var notes sql.NullString

	err := r.db.QueryRow(query, groupID).Scan(
		&g.ID,
		&createdAtStr,
		&notes,
	)
	if err == sql.ErrNoRows {
		return model.SnapshotGroup{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.SnapshotGroup{}, fmt.Errorf("failed to query snapshot_group: %w", err)
	}

	g.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || g.CreatedAt.IsZero() {
		return model.SnapshotGroup{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if notes.Valid {
		g.Notes = notes.String
	}

	groups := []model.SnapshotGroup{g}
	if err := r.attachItems(groups); err != nil {
		return model.SnapshotGroup{}, err
	}

	return groups[0], nil
}

// InsertGroup persists a snapshot group row. Items are inserted separately
// via InsertItems.
func (r *SnapshotRepository) InsertGroup(ctx context.Context, g model.SnapshotGroup) error {
	query := `
        INSERT INTO snapshot_group (id, created_at, notes)
        VALUES (?, ?, ?)
    `

	var notes any
	if g.Notes != "" {
		notes = g.Notes
	}

	_, err := r.getQuerier().ExecContext(ctx, query,
		g.ID,
		g.CreatedAt.UTC().Format(time.RFC3339),
		notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot_group: %w", err)
	}

	return nil
}

// InsertItems persists the given snapshot items. All items must carry their
// group ID.
func (r *SnapshotRepository) InsertItems(ctx context.Context, items []model.SnapshotItem) error {
	query := `
        INSERT INTO snapshot_item (id, group_id, asset_id, asset_name, asset_category_name, total_value_brl, is_crypto_total)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	for _, item := range items {
		var assetID any
		if item.AssetID != nil {
			assetID = *item.AssetID
		}

		_, err := r.getQuerier().ExecContext(ctx, query,
			item.ID,
			item.GroupID,
			assetID,
			item.AssetName,
			item.CategoryName,
			item.TotalValueBRL,
			item.IsCryptoTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot_item: %w", err)
		}
	}

	return nil
}

// DeleteGroup removes a snapshot group and its items. Items are deleted
// explicitly before the group row.
func (r *SnapshotRepository) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := r.getQuerier().ExecContext(ctx, `DELETE FROM snapshot_item WHERE group_id = ?`, groupID); err != nil {
		return fmt.Errorf("failed to delete snapshot items: %w", err)
	}

	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM snapshot_group WHERE id = ?`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot_group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrSnapshotNotFound
	}

	return nil
}

// GetItemOnID retrieves a single snapshot item by its ID.
func (r *SnapshotRepository) GetItemOnID(itemID string) (model.SnapshotItem, error) {
	query := `
		SELECT id, group_id, asset_id, asset_name, asset_category_name, total_value_brl, is_crypto_total
		FROM snapshot_item
		WHERE id = ?
	`
	var item model.SnapshotItem
	var assetID sql.NullString

	err := r.db.QueryRow(query, itemID).Scan(
		&item.ID,
		&item.GroupID,
		&assetID,
		&item.AssetName,
		&item.CategoryName,
		&item.TotalValueBRL,
		&item.IsCryptoTotal,
	)
	if err == sql.ErrNoRows {
		return model.SnapshotItem{}, apperrors.ErrSnapshotItemNotFound
	}
	if err != nil {
		return model.SnapshotItem{}, fmt.Errorf("failed to query snapshot_item: %w", err)
	}

	if assetID.Valid {
		item.AssetID = &assetID.String
	}

	return item, nil
}

// UpdateItemValue corrects the captured value of a snapshot item. This is
// the only permitted mutation of a snapshot item.
func (r *SnapshotRepository) UpdateItemValue(ctx context.Context, itemID string, value float64) error {
	query := `UPDATE snapshot_item SET total_value_brl = ? WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, value, itemID)
	if err != nil {
		return fmt.Errorf("failed to update snapshot_item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrSnapshotItemNotFound
	}

	return nil
}
