// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// CropRepository implements secondary.CropRepository with SQLite.
type CropRepository struct {
	db *sql.DB
}

// NewCropRepository creates a new SQLite crop repository.
func NewCropRepository(db *sql.DB) *CropRepository {
	return &CropRepository{db: db}
}

// EnsurePlaceholder returns the crop_id of the named placeholder crop,
// creating it on first use. The placeholder carries is_food_crop = 0 so it
// never shows up in consumption queries.
func (r *CropRepository) EnsurePlaceholder(ctx context.Context, name, notes string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT crop_id FROM crops WHERE common_name_en = ?", name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up placeholder crop: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO crops (common_name_en, scientific_name, is_food_crop, notes) VALUES (?, NULL, 0, ?)",
		name, notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create placeholder crop: %w", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read placeholder crop id: %w", err)
	}
	return id, nil
}

// Ensure CropRepository implements the interface
var _ secondary.CropRepository = (*CropRepository)(nil)
