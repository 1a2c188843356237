package db

import "database/sql"

// SchemaSQL is the complete schema for fresh cropdb installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests build
// their in-memory databases from GetSchemaSQL() so that repository code
// referencing a column that does not exist here fails immediately with
// "no such column" instead of drifting until production.
//
// When adding columns or tables: add a migration in migrations.go, then
// update SchemaSQL to match the post-migration state.
const SchemaSQL = `
-- Crops (central registry; every commodity and scenario table hangs off this)
CREATE TABLE IF NOT EXISTS crops (
	crop_id INTEGER PRIMARY KEY AUTOINCREMENT,
	common_name_en TEXT NOT NULL UNIQUE,
	scientific_name TEXT,
	is_food_crop INTEGER NOT NULL DEFAULT 1,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- EPPO taxonomy codes (one crop can carry several codes, e.g. species + variety)
CREATE TABLE IF NOT EXISTS eppo_codes (
	eppo_code_id INTEGER PRIMARY KEY AUTOINCREMENT,
	crop_id INTEGER NOT NULL,
	eppo_code TEXT NOT NULL UNIQUE,
	eppo_name TEXT NOT NULL,
	taxon_level TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (crop_id) REFERENCES crops(crop_id)
);

CREATE INDEX IF NOT EXISTS idx_eppo_codes_crop ON eppo_codes(crop_id);

-- FOCUS scenario types (1 = surface water, 2 = groundwater)
CREATE TABLE IF NOT EXISTS focus_scenario_types (
	scenario_type_id INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

-- FOCUS scenarios (D1-D6/R1-R4 for surface water, named locations for groundwater)
CREATE TABLE IF NOT EXISTS focus_scenarios (
	scenario_id INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario_code TEXT NOT NULL,
	scenario_type_id INTEGER NOT NULL,
	description TEXT,
	UNIQUE (scenario_code, scenario_type_id),
	FOREIGN KEY (scenario_type_id) REFERENCES focus_scenario_types(scenario_type_id)
);

CREATE INDEX IF NOT EXISTS idx_focus_scenarios_type ON focus_scenarios(scenario_type_id);

-- FOCUS crops (the SWASH crop catalogue; swash_crop_name is the natural key
-- every importer matches against)
CREATE TABLE IF NOT EXISTS focus_crops (
	focus_crop_id INTEGER PRIMARY KEY AUTOINCREMENT,
	crop_id INTEGER,
	swash_crop_name TEXT NOT NULL UNIQUE,
	bbch_sowing_min INTEGER,
	bbch_sowing_max INTEGER,
	bbch_harvest_min INTEGER,
	bbch_harvest_max INTEGER,
	canopy_type TEXT,
	root_depth_m REAL,
	lai_max REAL,
	FOREIGN KEY (crop_id) REFERENCES crops(crop_id)
);

CREATE INDEX IF NOT EXISTS idx_focus_crops_crop ON focus_crops(crop_id);

-- Valid crop x scenario combinations (the SWASH wizard matrix)
CREATE TABLE IF NOT EXISTS focus_crop_scenario_links (
	link_id INTEGER PRIMARY KEY AUTOINCREMENT,
	focus_crop_id INTEGER NOT NULL,
	scenario_id INTEGER NOT NULL,
	waterbody_type TEXT,
	is_default_run INTEGER NOT NULL DEFAULT 1,
	UNIQUE (focus_crop_id, scenario_id),
	FOREIGN KEY (focus_crop_id) REFERENCES focus_crops(focus_crop_id),
	FOREIGN KEY (scenario_id) REFERENCES focus_scenarios(scenario_id)
);

CREATE INDEX IF NOT EXISTS idx_links_scenario ON focus_crop_scenario_links(scenario_id);

-- Crop interception by BBCH stage (EFSA 2020 repair action step function)
CREATE TABLE IF NOT EXISTS focus_crop_interception (
	focus_crop_id INTEGER NOT NULL,
	bbch_stage INTEGER NOT NULL,
	interception_pct REAL NOT NULL,
	interception_source TEXT,
	PRIMARY KEY (focus_crop_id, bbch_stage),
	FOREIGN KEY (focus_crop_id) REFERENCES focus_crops(focus_crop_id)
);

-- Weather/location/climate per surface-water scenario
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
);

-- Average irrigation per crop x scenario (mm/year)
CREATE TABLE IF NOT EXISTS focus_crop_scenario_irrigation (
	focus_crop_id INTEGER NOT NULL,
	scenario_id INTEGER NOT NULL,
	irrigation_mm_annual REAL NOT NULL,
	source_reference TEXT,
	PRIMARY KEY (focus_crop_id, scenario_id),
	FOREIGN KEY (focus_crop_id) REFERENCES focus_crops(focus_crop_id),
	FOREIGN KEY (scenario_id) REFERENCES focus_scenarios(scenario_id)
);

-- Reg (EC) No 396/2005 Annex I commodity classification
CREATE TABLE IF NOT EXISTS reg396_commodities (
	reg396_id INTEGER PRIMARY KEY AUTOINCREMENT,
	crop_id INTEGER NOT NULL,
	annex1_code TEXT NOT NULL UNIQUE,
	annex1_name TEXT NOT NULL,
	hierarchy_level INTEGER NOT NULL DEFAULT 3,
	parent_annex1_code TEXT,
	regulation_version TEXT,
	FOREIGN KEY (crop_id) REFERENCES crops(crop_id)
);

CREATE INDEX IF NOT EXISTS idx_reg396_parent ON reg396_commodities(parent_annex1_code);

-- PRIMo commodity list (display names and unit weights per model revision)
CREATE TABLE IF NOT EXISTS primo_commodities (
	primo_id INTEGER PRIMARY KEY AUTOINCREMENT,
	crop_id INTEGER NOT NULL,
	primo_version TEXT NOT NULL,
	primo_code TEXT NOT NULL,
	primo_name TEXT NOT NULL,
	unit_weight_g REAL,
	UNIQUE (primo_version, primo_code),
	FOREIGN KEY (crop_id) REFERENCES crops(crop_id)
);

CREATE INDEX IF NOT EXISTS idx_primo_code ON primo_commodities(primo_code);

-- Import runs (audit trail; one row per applied importer invocation)
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
);

CREATE INDEX IF NOT EXISTS idx_import_runs_started ON import_runs(started_at);
`

// InitSchema creates the database schema or migrates an existing one
func InitSchema(database *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// No version bookkeeping yet - check for core tables from installs that
		// predate the migration system
		var coreTableCount int
		err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('crops', 'focus_crops', 'focus_scenarios')").Scan(&coreTableCount)
		if err != nil {
			return err
		}

		if coreTableCount > 0 {
			// Pre-versioning database - run migrations to add the newer tables
			return RunMigrations(database)
		}

		// Completely fresh install - create the current schema directly and
		// mark all migrations as applied so they never run against it
		if _, err := database.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err := database.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations(database)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
