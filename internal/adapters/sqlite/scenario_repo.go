package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/cropdb/internal/ports/secondary"
)

// ScenarioRepository implements secondary.ScenarioRepository with SQLite.
type ScenarioRepository struct {
	db *sql.DB
}

// NewScenarioRepository creates a new SQLite scenario repository.
func NewScenarioRepository(db *sql.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// surfaceWaterTypeID is the fixed focus_scenario_types row for surface water.
const surfaceWaterTypeID = 1

// FindSurfaceWaterByCode resolves a scenario code within the surface-water type.
func (r *ScenarioRepository) FindSurfaceWaterByCode(ctx context.Context, code string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT scenario_id FROM focus_scenarios WHERE scenario_code = ? AND scenario_type_id = ?",
		code, surfaceWaterTypeID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find surface-water scenario: %w", err)
	}
	return id, true, nil
}

// FindByCode resolves a scenario code across all scenario types.
func (r *ScenarioRepository) FindByCode(ctx context.Context, code string) (int64, bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT scenario_id FROM focus_scenarios WHERE scenario_code = ?", code,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find scenario: %w", err)
	}
	return id, true, nil
}

// UpsertCharacteristics writes the per-scenario weather/location block.
func (r *ScenarioRepository) UpsertCharacteristics(ctx context.Context, rec *secondary.ScenarioCharacteristicsRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO focus_sw_scenario_characteristics
			(scenario_id, scenario_code, weather_dataset_name, latitude_deg, longitude_deg,
			 mean_annual_temp_c, annual_rainfall_mm, topsoil_texture, topsoil_organic_carbon_pct,
			 slope_pct, water_bodies, source_reference)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ScenarioID,
		rec.ScenarioCode,
		nullString(rec.WeatherDatasetName),
		rec.LatitudeDeg,
		rec.LongitudeDeg,
		rec.MeanAnnualTempC,
		rec.AnnualRainfallMM,
		nullString(rec.TopsoilTexture),
		rec.TopsoilOrganicCarbonPct,
		nullString(rec.SlopePct),
		nullString(rec.WaterBodies),
		rec.SourceReference,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert scenario characteristics: %w", err)
	}
	return nil
}

// nullString maps the empty string to NULL for nullable text columns.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure ScenarioRepository implements the interface
var _ secondary.ScenarioRepository = (*ScenarioRepository)(nil)
