package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/errors"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/model"
)

// LabelRepository provides data access methods for the label table holding
// the category, sector, and custody vocabularies.
type LabelRepository struct {
	db *sql.DB
}

// NewLabelRepository creates a new LabelRepository with the provided database connection.
func NewLabelRepository(db *sql.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// GetLabels retrieves all labels of a vocabulary, sorted by name.
func (r *LabelRepository) GetLabels(kind model.LabelKind) ([]model.Label, error) {
	query := `
          SELECT id, kind, name
          FROM label
          WHERE kind = ?
          ORDER BY name COLLATE NOCASE ASC
      `

	rows, err := r.db.Query(query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query label table: %w", err)
	}
	defer rows.Close()

	labels := []model.Label{}

	for rows.Next() {
		var l model.Label

		err := rows.Scan(
			&l.ID,
			&l.Kind,
			&l.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan label table results: %w", err)
		}

		labels = append(labels, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating label table: %w", err)
	}

	return labels, nil
}

// GetLabelOnID retrieves a single label by its ID.
func (r *LabelRepository) GetLabelOnID(labelID string) (model.Label, error) {
	query := `
          SELECT id, kind, name
          FROM label
          WHERE id = ?
      `
	var l model.Label

	err := r.db.QueryRow(query, labelID).Scan(
		&l.ID,
		&l.Kind,
		&l.Name,
	)
	if err == sql.ErrNoRows {
		return model.Label{}, apperrors.ErrLabelNotFound
	}
	if err != nil {
		return model.Label{}, fmt.Errorf("failed to query label: %w", err)
	}

	return l, nil
}

// ExistsByName reports whether a label with the given name already exists in
// the vocabulary, compared case-insensitively.
func (r *LabelRepository) ExistsByName(kind model.LabelKind, name string) (bool, error) {
	query := `SELECT COUNT(*) FROM label WHERE kind = ? AND name = ? COLLATE NOCASE`

	var count int
	err := r.db.QueryRow(query, string(kind), name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query label table: %w", err)
	}

	return count > 0, nil
}

// InsertLabel persists a new vocabulary label.
func (r *LabelRepository) InsertLabel(ctx context.Context, l model.Label) error {
	query := `
        INSERT INTO label (id, kind, name)
        VALUES (?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query, l.ID, string(l.Kind), l.Name)
	if err != nil {
		return fmt.Errorf("failed to insert label: %w", err)
	}

	return nil
}

// DeleteLabel removes a label by ID. Callers are responsible for the
// referential guard before deleting.
func (r *LabelRepository) DeleteLabel(ctx context.Context, labelID string) error {
	query := `DELETE FROM label WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, labelID)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrLabelNotFound
	}

	return nil
}
