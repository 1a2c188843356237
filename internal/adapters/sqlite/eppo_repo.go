package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// EppoCodeRepository implements secondary.EppoCodeRepository with SQLite.
type EppoCodeRepository struct {
	db *sql.DB
}

// NewEppoCodeRepository creates a new SQLite EPPO code repository.
func NewEppoCodeRepository(db *sql.DB) *EppoCodeRepository {
	return &EppoCodeRepository{db: db}
}

// ListWithCrops retrieves all EPPO codes joined to their crops, ordered by code.
func (r *EppoCodeRepository) ListWithCrops(ctx context.Context) ([]*secondary.EppoCodeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.eppo_code_id, e.eppo_code, e.eppo_name, e.taxon_level,
		       c.crop_id, c.common_name_en, c.scientific_name
		FROM eppo_codes e
		JOIN crops c ON e.crop_id = c.crop_id
		ORDER BY e.eppo_code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list eppo codes: %w", err)
	}
	defer rows.Close()

	var records []*secondary.EppoCodeRecord
	for rows.Next() {
		var taxonLevel, scientificName sql.NullString
		record := &secondary.EppoCodeRecord{}
		if err := rows.Scan(
			&record.EppoCodeID, &record.EppoCode, &record.EppoName, &taxonLevel,
			&record.CropID, &record.CommonNameEn, &scientificName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan eppo code: %w", err)
		}
		record.TaxonLevel = taxonLevel.String
		record.ScientificName = scientificName.String
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate eppo codes: %w", err)
	}

	return records, nil
}

// UpdateName replaces the stored EPPO preferred name.
func (r *EppoCodeRepository) UpdateName(ctx context.Context, eppoCodeID int64, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE eppo_codes SET eppo_name = ?, updated_at = CURRENT_TIMESTAMP WHERE eppo_code_id = ?",
		name, eppoCodeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update eppo name: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("eppo code %d not found", eppoCodeID)
	}

	return nil
}

// UpdateCropScientificNameIfEmpty sets the owning crop's scientific name only
// when none is stored yet.
func (r *EppoCodeRepository) UpdateCropScientificNameIfEmpty(ctx context.Context, eppoCodeID int64, scientificName string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE crops SET scientific_name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE crop_id = (SELECT crop_id FROM eppo_codes WHERE eppo_code_id = ?)
		  AND (scientific_name IS NULL OR scientific_name = '')
	`, scientificName, eppoCodeID)
	if err != nil {
		return fmt.Errorf("failed to update crop scientific name: %w", err)
	}
	return nil
}

// Ensure EppoCodeRepository implements the interface
var _ secondary.EppoCodeRepository = (*EppoCodeRepository)(nil)
