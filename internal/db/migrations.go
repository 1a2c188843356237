package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_sw_characteristics_and_irrigation_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_import_runs_table",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(database *sql.DB) error {
	// Create schema_version table if it doesn't exist
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		if err := migration.Up(database); err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = database.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 adds the surface-water scenario characteristics and the
// crop x scenario irrigation tables (Generic FOCUS SWS v1.4 data)
func migrationV1(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS focus_sw_scenario_characteristics (
			scenario_id INTEGER PRIMARY KEY,
			scenario_code TEXT NOT NULL,
			weather_dataset_name TEXT,
			latitude_deg REAL,
			longitude_deg REAL,
			mean_annual_temp_c REAL,
			annual_rainfall_mm REAL,
			topsoil_texture TEXT,
			topsoil_organic_carbon_pct REAL,
			slope_pct TEXT,
			water_bodies TEXT,
			source_reference TEXT,
			FOREIGN KEY (scenario_id) REFERENCES focus_scenarios(scenario_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create focus_sw_scenario_characteristics: %w", err)
	}

	_, err = database.Exec(`
		CREATE TABLE IF NOT EXISTS focus_crop_scenario_irrigation (
			focus_crop_id INTEGER NOT NULL,
			scenario_id INTEGER NOT NULL,
			irrigation_mm_annual REAL NOT NULL,
			source_reference TEXT,
			PRIMARY KEY (focus_crop_id, scenario_id),
			FOREIGN KEY (focus_crop_id) REFERENCES focus_crops(focus_crop_id),
			FOREIGN KEY (scenario_id) REFERENCES focus_scenarios(scenario_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create focus_crop_scenario_irrigation: %w", err)
	}

	return nil
}

// migrationV2 adds the import_runs audit table
func migrationV2(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS import_runs (
			run_id TEXT PRIMARY KEY,
			tool TEXT NOT NULL,
			source TEXT,
			upserted INTEGER NOT NULL DEFAULT 0,
			updated INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			issues INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME NOT NULL,
			finished_at DATETIME
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create import_runs: %w", err)
	}

	_, err = database.Exec("CREATE INDEX IF NOT EXISTS idx_import_runs_started ON import_runs(started_at)")
	if err != nil {
		return fmt.Errorf("failed to create import_runs index: %w", err)
	}

	return nil
}
