package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// CommodityRepository implements secondary.CommodityRepository with SQLite.
type CommodityRepository struct {
	db *sql.DB
}

// NewCommodityRepository creates a new SQLite commodity repository.
func NewCommodityRepository(db *sql.DB) *CommodityRepository {
	return &CommodityRepository{db: db}
}

// InsertReg396 adds an Annex I commodity, ignoring duplicates.
func (r *CommodityRepository) InsertReg396(ctx context.Context, rec *secondary.Reg396Record) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO reg396_commodities
			(crop_id, annex1_code, annex1_name, hierarchy_level, parent_annex1_code, regulation_version)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.CropID,
		rec.Annex1Code,
		rec.Annex1Name,
		rec.HierarchyLevel,
		nullString(rec.ParentAnnex1Code),
		nullString(rec.RegulationVersion),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert reg396 commodity: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// InsertPrimo adds a PRIMo commodity, ignoring duplicates.
func (r *CommodityRepository) InsertPrimo(ctx context.Context, rec *secondary.PrimoRecord) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO primo_commodities
			(crop_id, primo_version, primo_code, primo_name, unit_weight_g)
		VALUES (?, ?, ?, ?, ?)
	`,
		rec.CropID,
		rec.PrimoVersion,
		rec.PrimoCode,
		rec.PrimoName,
		rec.UnitWeightG,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert primo commodity: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// Ensure CommodityRepository implements the interface
var _ secondary.CommodityRepository = (*CommodityRepository)(nil)
