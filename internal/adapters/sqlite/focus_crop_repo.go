package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/cropdb/internal/ports/secondary"
)

// FocusCropRepository implements secondary.FocusCropRepository with SQLite.
type FocusCropRepository struct {
	db *sql.DB
}

// NewFocusCropRepository creates a new SQLite focus crop repository.
func NewFocusCropRepository(db *sql.DB) *FocusCropRepository {
	return &FocusCropRepository{db: db}
}

// FindByName resolves a SWASH crop name to its focus_crop_id.
func (r *FocusCropRepository) FindByName(ctx context.Context, swashCropName string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT focus_crop_id FROM focus_crops WHERE swash_crop_name = ?", swashCropName,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find focus crop: %w", err)
	}
	return id, true, nil
}

// UpdateParams updates only the agronomic parameters that are set. A request
// with no parameters set is a no-op.
func (r *FocusCropRepository) UpdateParams(ctx context.Context, focusCropID int64, params secondary.FocusCropParams) error {
	set := []string{}
	args := []any{}

	if params.BBCHSowingMin != nil {
		set = append(set, "bbch_sowing_min = ?")
		args = append(args, *params.BBCHSowingMin)
	}
	if params.BBCHSowingMax != nil {
		set = append(set, "bbch_sowing_max = ?")
		args = append(args, *params.BBCHSowingMax)
	}
	if params.BBCHHarvestMin != nil {
		set = append(set, "bbch_harvest_min = ?")
		args = append(args, *params.BBCHHarvestMin)
	}
	if params.BBCHHarvestMax != nil {
		set = append(set, "bbch_harvest_max = ?")
		args = append(args, *params.BBCHHarvestMax)
	}
	if params.CanopyType != nil {
		set = append(set, "canopy_type = ?")
		args = append(args, *params.CanopyType)
	}
	if params.RootDepthM != nil {
		set = append(set, "root_depth_m = ?")
		args = append(args, *params.RootDepthM)
	}
	if params.LAIMax != nil {
		set = append(set, "lai_max = ?")
		args = append(args, *params.LAIMax)
	}

	if len(set) == 0 {
		return nil
	}

	query := "UPDATE focus_crops SET " + strings.Join(set, ", ") + " WHERE focus_crop_id = ?"
	args = append(args, focusCropID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update focus crop parameters: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("focus crop %d not found", focusCropID)
	}

	return nil
}

// InsertLink adds a crop x scenario combination, ignoring duplicates.
func (r *FocusCropRepository) InsertLink(ctx context.Context, rec *secondary.LinkRecord) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO focus_crop_scenario_links
			(focus_crop_id, scenario_id, waterbody_type, is_default_run)
		VALUES (?, ?, ?, ?)
	`, rec.FocusCropID, rec.ScenarioID, nullString(rec.WaterbodyType), rec.IsDefaultRun)
	if err != nil {
		return false, fmt.Errorf("failed to insert crop-scenario link: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// UpsertInterception writes one interception step.
func (r *FocusCropRepository) UpsertInterception(ctx context.Context, rec *secondary.InterceptionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO focus_crop_interception
			(focus_crop_id, bbch_stage, interception_pct, interception_source)
		VALUES (?, ?, ?, ?)
	`, rec.FocusCropID, rec.BBCHStage, rec.InterceptionPct, nullString(rec.InterceptionSource))
	if err != nil {
		return fmt.Errorf("failed to upsert interception: %w", err)
	}
	return nil
}

// UpsertIrrigation writes one crop x scenario irrigation value.
func (r *FocusCropRepository) UpsertIrrigation(ctx context.Context, rec *secondary.IrrigationRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO focus_crop_scenario_irrigation
			(focus_crop_id, scenario_id, irrigation_mm_annual, source_reference)
		VALUES (?, ?, ?, ?)
	`, rec.FocusCropID, rec.ScenarioID, rec.IrrigationMMAnnual, nullString(rec.SourceReference))
	if err != nil {
		return fmt.Errorf("failed to upsert irrigation: %w", err)
	}
	return nil
}

// Ensure FocusCropRepository implements the interface
var _ secondary.FocusCropRepository = (*FocusCropRepository)(nil)
